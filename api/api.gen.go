//go:build go1.22

// Package api provides primitives to interact with the openapi HTTP API.
//
// Code generated by github.com/oapi-codegen/oapi-codegen/v2 version v2.5.0 DO NOT EDIT.
package api

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/oapi-codegen/runtime"
	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for AttemptState.
const (
	AttemptStateCAPTURING     AttemptState = "CAPTURING"
	AttemptStateCHARGECREATED AttemptState = "CHARGE_CREATED"
	AttemptStateFAILED        AttemptState = "FAILED"
	AttemptStateINIT          AttemptState = "INIT"
	AttemptStatePAID          AttemptState = "PAID"
)

// Defines values for ErrorCode.
const (
	AmountMismatch       ErrorCode = "AmountMismatch"
	InputValidationError ErrorCode = "InputValidationError"
	InternalError        ErrorCode = "InternalError"
	InvalidAmount        ErrorCode = "InvalidAmount"
	InvalidApplicant     ErrorCode = "InvalidApplicant"
	InvalidCursor        ErrorCode = "InvalidCursor"
	LedgerUnavailable    ErrorCode = "LedgerUnavailable"
	MethodNotAllowed     ErrorCode = "MethodNotAllowed"
	NotFound             ErrorCode = "NotFound"
	ProviderError        ErrorCode = "ProviderError"
)

// Defines values for FailureReason.
const (
	CaptureFailed        FailureReason = "capture-failed"
	ChargeCreationFailed FailureReason = "charge-creation-failed"
	UserCancelled        FailureReason = "user-cancelled"
)

// Defines values for PaymentMethod.
const (
	CARD   PaymentMethod = "CARD"
	WALLET PaymentMethod = "WALLET"
)

// Defines values for PaymentState.
const (
	PaymentStateFAILED  PaymentState = "FAILED"
	PaymentStatePAID    PaymentState = "PAID"
	PaymentStatePENDING PaymentState = "PENDING"
)

// Defines values for Warning.
const (
	LedgerWriteFailed Warning = "ledger-write-failed"
)

// Applicant defines model for Applicant.
type Applicant struct {
	Address       *string             `json:"address,omitempty"`
	Document      string              `json:"document"`
	Email         openapi_types.Email `json:"email"`
	FullName      string              `json:"fullName"`
	Locality      *string             `json:"locality,omitempty"`
	PaymentMethod PaymentMethod       `json:"paymentMethod"`
	Phone         *string             `json:"phone,omitempty"`
	PostalCode    *string             `json:"postalCode,omitempty"`
	Region        *string             `json:"region,omitempty"`
}

// Attempt defines model for Attempt.
type Attempt struct {
	Amount         *string        `json:"amount,omitempty"`
	CaptureId      *string        `json:"captureId,omitempty"`
	ChargeId       string         `json:"chargeId"`
	Currency       *string        `json:"currency,omitempty"`
	Email          string         `json:"email"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	ProviderStatus *string        `json:"providerStatus,omitempty"`
	Reason         *FailureReason `json:"reason,omitempty"`
	State          AttemptState   `json:"state"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// AttemptPage defines model for AttemptPage.
type AttemptPage struct {
	Cursor      *string   `json:"cursor,omitempty"`
	Data        []Attempt `json:"data"`
	HasNextPage bool      `json:"hasNextPage"`
}

// AttemptState defines model for AttemptState.
type AttemptState string

// CreateChargeRequest defines model for CreateChargeRequest.
type CreateChargeRequest struct {
	Amount    *string   `json:"amount,omitempty"`
	Applicant Applicant `json:"applicant"`
	Currency  *string   `json:"currency,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorCode defines model for ErrorCode.
type ErrorCode string

// FailureReason defines model for FailureReason.
type FailureReason string

// Health defines model for Health.
type Health struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// MemberList defines model for MemberList.
type MemberList struct {
	Data []map[string]string `json:"data"`
}

// Outcome defines model for Outcome.
type Outcome struct {
	AlreadyPaid    bool           `json:"alreadyPaid"`
	CaptureId      *string        `json:"captureId,omitempty"`
	ChargeId       string         `json:"chargeId"`
	ClientSecret   *string        `json:"clientSecret,omitempty"`
	ProviderStatus *string        `json:"providerStatus,omitempty"`
	Reason         *FailureReason `json:"reason,omitempty"`
	State          AttemptState   `json:"state"`
	Warnings       []Warning      `json:"warnings"`
}

// PaymentMethod defines model for PaymentMethod.
type PaymentMethod string

// PaymentState defines model for PaymentState.
type PaymentState string

// SaveMemberRequest defines model for SaveMemberRequest.
type SaveMemberRequest struct {
	Amount    *string       `json:"amount,omitempty"`
	Applicant Applicant     `json:"applicant"`
	ChargeId  *string       `json:"chargeId,omitempty"`
	Currency  *string       `json:"currency,omitempty"`
	PaidAt    *time.Time    `json:"paidAt,omitempty"`
	State     *PaymentState `json:"state,omitempty"`
}

// UpdatePaymentStateRequest defines model for UpdatePaymentStateRequest.
type UpdatePaymentStateRequest struct {
	PaidAt *time.Time   `json:"paidAt,omitempty"`
	State  PaymentState `json:"state"`
}

// Verification defines model for Verification.
type Verification struct {
	ChargeId string `json:"chargeId"`
	Paid     bool   `json:"paid"`
	Status   string `json:"status"`
}

// Warning defines model for Warning.
type Warning string

// GetChargesParams defines parameters for GetCharges.
type GetChargesParams struct {
	State  AttemptState `form:"state" json:"state"`
	Limit  *int         `form:"limit,omitempty" json:"limit,omitempty"`
	Cursor *string      `form:"cursor,omitempty" json:"cursor,omitempty"`
}

// PostChargesJSONRequestBody defines body for PostCharges for application/json ContentType.
type PostChargesJSONRequestBody = CreateChargeRequest

// PostMembersJSONRequestBody defines body for PostMembers for application/json ContentType.
type PostMembersJSONRequestBody = SaveMemberRequest

// PutMembersEmailPaymentStateJSONRequestBody defines body for PutMembersEmailPaymentState for application/json ContentType.
type PutMembersEmailPaymentStateJSONRequestBody = UpdatePaymentStateRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /v1/charges)
	GetCharges(w http.ResponseWriter, r *http.Request, params GetChargesParams)

	// (POST /v1/charges)
	PostCharges(w http.ResponseWriter, r *http.Request)

	// (GET /v1/charges/{chargeId})
	GetChargesChargeId(w http.ResponseWriter, r *http.Request, chargeId string)

	// (POST /v1/charges/{chargeId}/cancel)
	PostChargesChargeIdCancel(w http.ResponseWriter, r *http.Request, chargeId string)

	// (POST /v1/charges/{chargeId}/capture)
	PostChargesChargeIdCapture(w http.ResponseWriter, r *http.Request, chargeId string)

	// (GET /v1/health)
	GetHealth(w http.ResponseWriter, r *http.Request)

	// (GET /v1/members)
	GetMembers(w http.ResponseWriter, r *http.Request)

	// (POST /v1/members)
	PostMembers(w http.ResponseWriter, r *http.Request)

	// (PUT /v1/members/{email}/payment-state)
	PutMembersEmailPaymentState(w http.ResponseWriter, r *http.Request, email openapi_types.Email)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// GetCharges operation middleware
func (siw *ServerInterfaceWrapper) GetCharges(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetChargesParams

	// ------------- Required query parameter "state" -------------

	if paramValue := r.URL.Query().Get("state"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "state"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "state", r.URL.Query(), &params.State)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "state", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "cursor" -------------

	err = runtime.BindQueryParameter("form", true, false, "cursor", r.URL.Query(), &params.Cursor)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "cursor", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCharges(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PostCharges operation middleware
func (siw *ServerInterfaceWrapper) PostCharges(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostCharges(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetChargesChargeId operation middleware
func (siw *ServerInterfaceWrapper) GetChargesChargeId(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "chargeId" -------------
	var chargeId string

	err = runtime.BindStyledParameterWithOptions("simple", "chargeId", r.PathValue("chargeId"), &chargeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "chargeId", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetChargesChargeId(w, r, chargeId)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PostChargesChargeIdCancel operation middleware
func (siw *ServerInterfaceWrapper) PostChargesChargeIdCancel(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "chargeId" -------------
	var chargeId string

	err = runtime.BindStyledParameterWithOptions("simple", "chargeId", r.PathValue("chargeId"), &chargeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "chargeId", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostChargesChargeIdCancel(w, r, chargeId)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PostChargesChargeIdCapture operation middleware
func (siw *ServerInterfaceWrapper) PostChargesChargeIdCapture(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "chargeId" -------------
	var chargeId string

	err = runtime.BindStyledParameterWithOptions("simple", "chargeId", r.PathValue("chargeId"), &chargeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "chargeId", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostChargesChargeIdCapture(w, r, chargeId)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealth(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetMembers operation middleware
func (siw *ServerInterfaceWrapper) GetMembers(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetMembers(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PostMembers operation middleware
func (siw *ServerInterfaceWrapper) PostMembers(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostMembers(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PutMembersEmailPaymentState operation middleware
func (siw *ServerInterfaceWrapper) PutMembersEmailPaymentState(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "email" -------------
	var email openapi_types.Email

	err = runtime.BindStyledParameterWithOptions("simple", "email", r.PathValue("email"), &email, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "email", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PutMembersEmailPaymentState(w, r, email)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

type UnescapedCookieParamError struct {
	ParamName string
	Err       error
}

func (e *UnescapedCookieParamError) Error() string {
	return fmt.Sprintf("error unescaping cookie parameter '%s'", e.ParamName)
}

func (e *UnescapedCookieParamError) Unwrap() error {
	return e.Err
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type RequiredHeaderError struct {
	ParamName string
	Err       error
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("Header parameter %s is required, but not found", e.ParamName)
}

func (e *RequiredHeaderError) Unwrap() error {
	return e.Err
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("Expected one value for %s, got %d", e.ParamName, e.Count)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{})
}

// ServeMux is an abstraction of http.ServeMux.
type ServeMux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type StdHTTPServerOptions struct {
	BaseURL          string
	BaseRouter       ServeMux
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, m ServeMux) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseRouter: m,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, m ServeMux, baseURL string) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseURL:    baseURL,
		BaseRouter: m,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options StdHTTPServerOptions) http.Handler {
	m := options.BaseRouter

	if m == nil {
		m = http.NewServeMux()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	m.HandleFunc("GET "+options.BaseURL+"/v1/charges", wrapper.GetCharges)
	m.HandleFunc("POST "+options.BaseURL+"/v1/charges", wrapper.PostCharges)
	m.HandleFunc("GET "+options.BaseURL+"/v1/charges/{chargeId}", wrapper.GetChargesChargeId)
	m.HandleFunc("POST "+options.BaseURL+"/v1/charges/{chargeId}/cancel", wrapper.PostChargesChargeIdCancel)
	m.HandleFunc("POST "+options.BaseURL+"/v1/charges/{chargeId}/capture", wrapper.PostChargesChargeIdCapture)
	m.HandleFunc("GET "+options.BaseURL+"/v1/health", wrapper.GetHealth)
	m.HandleFunc("GET "+options.BaseURL+"/v1/members", wrapper.GetMembers)
	m.HandleFunc("POST "+options.BaseURL+"/v1/members", wrapper.PostMembers)
	m.HandleFunc("PUT "+options.BaseURL+"/v1/members/{email}/payment-state", wrapper.PutMembersEmailPaymentState)

	return m
}

type GetChargesRequestObject struct {
	Params GetChargesParams
}

type GetChargesResponseObject interface {
	VisitGetChargesResponse(w http.ResponseWriter) error
}

type GetCharges200JSONResponse AttemptPage

func (response GetCharges200JSONResponse) VisitGetChargesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetCharges400JSONResponse Error

func (response GetCharges400JSONResponse) VisitGetChargesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type GetCharges500JSONResponse Error

func (response GetCharges500JSONResponse) VisitGetChargesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesRequestObject struct {
	Body *PostChargesJSONRequestBody
}

type PostChargesResponseObject interface {
	VisitPostChargesResponse(w http.ResponseWriter) error
}

type PostCharges200JSONResponse Outcome

func (response PostCharges200JSONResponse) VisitPostChargesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PostCharges400JSONResponse Error

func (response PostCharges400JSONResponse) VisitPostChargesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type PostCharges500JSONResponse Error

func (response PostCharges500JSONResponse) VisitPostChargesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type PostCharges502JSONResponse Outcome

func (response PostCharges502JSONResponse) VisitPostChargesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(502)

	return json.NewEncoder(w).Encode(response)
}

type GetChargesChargeIdRequestObject struct {
	ChargeId string `json:"chargeId"`
}

type GetChargesChargeIdResponseObject interface {
	VisitGetChargesChargeIdResponse(w http.ResponseWriter) error
}

type GetChargesChargeId200JSONResponse Verification

func (response GetChargesChargeId200JSONResponse) VisitGetChargesChargeIdResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetChargesChargeId404JSONResponse Error

func (response GetChargesChargeId404JSONResponse) VisitGetChargesChargeIdResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type GetChargesChargeId500JSONResponse Error

func (response GetChargesChargeId500JSONResponse) VisitGetChargesChargeIdResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type GetChargesChargeId502JSONResponse Error

func (response GetChargesChargeId502JSONResponse) VisitGetChargesChargeIdResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(502)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCancelRequestObject struct {
	ChargeId string `json:"chargeId"`
}

type PostChargesChargeIdCancelResponseObject interface {
	VisitPostChargesChargeIdCancelResponse(w http.ResponseWriter) error
}

type PostChargesChargeIdCancel200JSONResponse Outcome

func (response PostChargesChargeIdCancel200JSONResponse) VisitPostChargesChargeIdCancelResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCancel202JSONResponse Outcome

func (response PostChargesChargeIdCancel202JSONResponse) VisitPostChargesChargeIdCancelResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(202)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCancel402JSONResponse Outcome

func (response PostChargesChargeIdCancel402JSONResponse) VisitPostChargesChargeIdCancelResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(402)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCancel500JSONResponse Error

func (response PostChargesChargeIdCancel500JSONResponse) VisitPostChargesChargeIdCancelResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCaptureRequestObject struct {
	ChargeId string `json:"chargeId"`
}

type PostChargesChargeIdCaptureResponseObject interface {
	VisitPostChargesChargeIdCaptureResponse(w http.ResponseWriter) error
}

type PostChargesChargeIdCapture200JSONResponse Outcome

func (response PostChargesChargeIdCapture200JSONResponse) VisitPostChargesChargeIdCaptureResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCapture202JSONResponse Outcome

func (response PostChargesChargeIdCapture202JSONResponse) VisitPostChargesChargeIdCaptureResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(202)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCapture402JSONResponse Outcome

func (response PostChargesChargeIdCapture402JSONResponse) VisitPostChargesChargeIdCaptureResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(402)

	return json.NewEncoder(w).Encode(response)
}

type PostChargesChargeIdCapture500JSONResponse Error

func (response PostChargesChargeIdCapture500JSONResponse) VisitPostChargesChargeIdCaptureResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type GetHealthRequestObject struct {
}

type GetHealthResponseObject interface {
	VisitGetHealthResponse(w http.ResponseWriter) error
}

type GetHealth200JSONResponse Health

func (response GetHealth200JSONResponse) VisitGetHealthResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetMembersRequestObject struct {
}

type GetMembersResponseObject interface {
	VisitGetMembersResponse(w http.ResponseWriter) error
}

type GetMembers200JSONResponse MemberList

func (response GetMembers200JSONResponse) VisitGetMembersResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetMembers500JSONResponse Error

func (response GetMembers500JSONResponse) VisitGetMembersResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type GetMembers503JSONResponse Error

func (response GetMembers503JSONResponse) VisitGetMembersResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(503)

	return json.NewEncoder(w).Encode(response)
}

type PostMembersRequestObject struct {
	Body *PostMembersJSONRequestBody
}

type PostMembersResponseObject interface {
	VisitPostMembersResponse(w http.ResponseWriter) error
}

type PostMembers201Response struct {
}

func (response PostMembers201Response) VisitPostMembersResponse(w http.ResponseWriter) error {
	w.WriteHeader(201)
	return nil
}

type PostMembers400JSONResponse Error

func (response PostMembers400JSONResponse) VisitPostMembersResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type PostMembers500JSONResponse Error

func (response PostMembers500JSONResponse) VisitPostMembersResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type PostMembers503JSONResponse Error

func (response PostMembers503JSONResponse) VisitPostMembersResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(503)

	return json.NewEncoder(w).Encode(response)
}

type PutMembersEmailPaymentStateRequestObject struct {
	Email openapi_types.Email `json:"email"`
	Body  *PutMembersEmailPaymentStateJSONRequestBody
}

type PutMembersEmailPaymentStateResponseObject interface {
	VisitPutMembersEmailPaymentStateResponse(w http.ResponseWriter) error
}

type PutMembersEmailPaymentState204Response struct {
}

func (response PutMembersEmailPaymentState204Response) VisitPutMembersEmailPaymentStateResponse(w http.ResponseWriter) error {
	w.WriteHeader(204)
	return nil
}

type PutMembersEmailPaymentState400JSONResponse Error

func (response PutMembersEmailPaymentState400JSONResponse) VisitPutMembersEmailPaymentStateResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type PutMembersEmailPaymentState404JSONResponse Error

func (response PutMembersEmailPaymentState404JSONResponse) VisitPutMembersEmailPaymentStateResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PutMembersEmailPaymentState500JSONResponse Error

func (response PutMembersEmailPaymentState500JSONResponse) VisitPutMembersEmailPaymentStateResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type PutMembersEmailPaymentState503JSONResponse Error

func (response PutMembersEmailPaymentState503JSONResponse) VisitPutMembersEmailPaymentStateResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(503)

	return json.NewEncoder(w).Encode(response)
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {

	// (GET /v1/charges)
	GetCharges(ctx context.Context, request GetChargesRequestObject) (GetChargesResponseObject, error)

	// (POST /v1/charges)
	PostCharges(ctx context.Context, request PostChargesRequestObject) (PostChargesResponseObject, error)

	// (GET /v1/charges/{chargeId})
	GetChargesChargeId(ctx context.Context, request GetChargesChargeIdRequestObject) (GetChargesChargeIdResponseObject, error)

	// (POST /v1/charges/{chargeId}/cancel)
	PostChargesChargeIdCancel(ctx context.Context, request PostChargesChargeIdCancelRequestObject) (PostChargesChargeIdCancelResponseObject, error)

	// (POST /v1/charges/{chargeId}/capture)
	PostChargesChargeIdCapture(ctx context.Context, request PostChargesChargeIdCaptureRequestObject) (PostChargesChargeIdCaptureResponseObject, error)

	// (GET /v1/health)
	GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error)

	// (GET /v1/members)
	GetMembers(ctx context.Context, request GetMembersRequestObject) (GetMembersResponseObject, error)

	// (POST /v1/members)
	PostMembers(ctx context.Context, request PostMembersRequestObject) (PostMembersResponseObject, error)

	// (PUT /v1/members/{email}/payment-state)
	PutMembersEmailPaymentState(ctx context.Context, request PutMembersEmailPaymentStateRequestObject) (PutMembersEmailPaymentStateResponseObject, error)
}

type StrictHandlerFunc = strictnethttp.StrictHTTPHandlerFunc
type StrictMiddlewareFunc = strictnethttp.StrictHTTPMiddlewareFunc

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		},
	}}
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// GetCharges operation middleware
func (sh *strictHandler) GetCharges(w http.ResponseWriter, r *http.Request, params GetChargesParams) {
	var request GetChargesRequestObject

	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetCharges(ctx, request.(GetChargesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetCharges")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetChargesResponseObject); ok {
		if err := validResponse.VisitGetChargesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostCharges operation middleware
func (sh *strictHandler) PostCharges(w http.ResponseWriter, r *http.Request) {
	var request PostChargesRequestObject

	var body PostChargesJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.PostCharges(ctx, request.(PostChargesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostCharges")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(PostChargesResponseObject); ok {
		if err := validResponse.VisitPostChargesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetChargesChargeId operation middleware
func (sh *strictHandler) GetChargesChargeId(w http.ResponseWriter, r *http.Request, chargeId string) {
	var request GetChargesChargeIdRequestObject

	request.ChargeId = chargeId

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetChargesChargeId(ctx, request.(GetChargesChargeIdRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetChargesChargeId")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetChargesChargeIdResponseObject); ok {
		if err := validResponse.VisitGetChargesChargeIdResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostChargesChargeIdCancel operation middleware
func (sh *strictHandler) PostChargesChargeIdCancel(w http.ResponseWriter, r *http.Request, chargeId string) {
	var request PostChargesChargeIdCancelRequestObject

	request.ChargeId = chargeId

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.PostChargesChargeIdCancel(ctx, request.(PostChargesChargeIdCancelRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostChargesChargeIdCancel")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(PostChargesChargeIdCancelResponseObject); ok {
		if err := validResponse.VisitPostChargesChargeIdCancelResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostChargesChargeIdCapture operation middleware
func (sh *strictHandler) PostChargesChargeIdCapture(w http.ResponseWriter, r *http.Request, chargeId string) {
	var request PostChargesChargeIdCaptureRequestObject

	request.ChargeId = chargeId

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.PostChargesChargeIdCapture(ctx, request.(PostChargesChargeIdCaptureRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostChargesChargeIdCapture")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(PostChargesChargeIdCaptureResponseObject); ok {
		if err := validResponse.VisitPostChargesChargeIdCaptureResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetHealth operation middleware
func (sh *strictHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	var request GetHealthRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetHealth(ctx, request.(GetHealthRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetHealth")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetHealthResponseObject); ok {
		if err := validResponse.VisitGetHealthResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetMembers operation middleware
func (sh *strictHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	var request GetMembersRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetMembers(ctx, request.(GetMembersRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetMembers")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetMembersResponseObject); ok {
		if err := validResponse.VisitGetMembersResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostMembers operation middleware
func (sh *strictHandler) PostMembers(w http.ResponseWriter, r *http.Request) {
	var request PostMembersRequestObject

	var body PostMembersJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.PostMembers(ctx, request.(PostMembersRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostMembers")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(PostMembersResponseObject); ok {
		if err := validResponse.VisitPostMembersResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// PutMembersEmailPaymentState operation middleware
func (sh *strictHandler) PutMembersEmailPaymentState(w http.ResponseWriter, r *http.Request, email openapi_types.Email) {
	var request PutMembersEmailPaymentStateRequestObject

	request.Email = email

	var body PutMembersEmailPaymentStateJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.PutMembersEmailPaymentState(ctx, request.(PutMembersEmailPaymentStateRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PutMembersEmailPaymentState")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(PutMembersEmailPaymentStateResponseObject); ok {
		if err := validResponse.VisitPutMembersEmailPaymentStateResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// Base64 encoded, gzipped, json marshaled Swagger object
var swaggerSpec = []string{

	"H4sIAAAAAAAC/+Ra3W/bNhD/VwiuDxumxE7TAp1fBs912wCpa+SjfWizgZHOFjuKVEnKiRH4fx/4oS+H",
	"duw2cbr2zaJI3vHud7+7o3yDY5HlggPXCvdusIpTyIj92c9zRmPCtXkgSUI1FZywsRQ5SE1B4d6EMAUR",
	"zhtDdqoEZX/qeQ64h5WWlE/xIsKJiIsM3JYZ5cfApzrFvYPo9lTICGVm3kTIjGjc8yOBqZOCsRHJYINd",
	"mYgJo3oe1C4nc6PcW9CpSMyMJxImuId/6dRG6ngLdcatyWZ1KjiE9xVKEzYQSfi1hCkVPPDKvvtSUAkJ",
	"7n2szl8dt2HPZeUvqrOLy88QayOnrzVkubX9kscyUTif5ERrkBz38N8fu3t/XPz+66dP++7Xb38+Cdk+",
	"JrkuJBwlwaPFKZHTlS8LKYHHYV9U7r9vL0kxownIU010oVb4gyjnj3U7vyKUFRJO3ORFhJUmGu5a5X1w",
	"aucuIlzkCdGQ9HUL6WZsT1Pr4vWYqAxcyo8qmLTt1BS1BhxjMoXbAIkLqYQMRzTRxLygGjK14enNOr8R",
	"kZLMzXNK1AiuK/n+9aUQDAi/dWwrtb1ozaFOS88ALzKz/Gh0dIYjPHjTP3k9/GdwMuyfDV+agf747Pzk",
	"aPQaR3jcPzJDr/pHx8OXjd3row8kEA0D64ET+FKA2poqvyHwSJOe1xq9mrgUcxm5LqnyMGoS5+FdqKtl",
	"h6w+lNKBZQlEnv/W6WqXWqJcRDgDpdpwWBUEZkE9f6VOJQNXMOB5od8TRhNiHOb0jvARn5mx2m71kPNX",
	"hN2Pt1RlRMdpPWHgAiXCI6FfiYKbuHMBOBK6z5i4AjN0DMkU5DknM0IZuWRG+7EnploLAwjC3HMIf20G",
	"apzLkcJebPBJBd+bEMqsXE/W9UChQO7FhMfAzEBIyhsgzIBi2Z1qNYFa5vo6PvO7+j1CnnwL2SXIY6oC",
	"iewWGYVjMaTyspg2P4XoJ6Tcu0LHIgswKGESSDIfE5qE6O3b8iijwPUpxBJ0OGN+XznvikhO+VRtnDY+",
	"uAV3uqXMgI2kWMmKWi4I+W68XFeU4TTon5hM8KF/fDw8C8aIX3orz4yHo5ebZpNTMgOH7f9NLtm0uNsi",
	"0ZiyhW5RDm0IwZaDtstm57Zsam7wdf7Z/bncDqEzvQdJJzS22SGQqNf5NV/JYCsTwvqS1bJ9viooy9Bv",
	"BBWzyXPvSlJdZbLbAWWkUj4RVh+qmXnnwkulNEeKTnmR4wjPQCprBXyw393vGpkiB05yinv4cL+7f2jV",
	"06k9WWd20HH628epI1xjPGtLYzP8GvTATzErJclAg1S49/EGUyPoSwFyjiPMbctasVZtIy0LiHwrvh25",
	"LqKwDEYzauqWes+MXNPMGPR514ake6hbZso1TEGu3jIuS516z2UXXJhDqVxw5cz1tNt1hSDX/g7Ah56x",
	"XeezT0BbnduW/tbZCahY0txBGr/jgHIyBSQm3teIuBXKuPjZPWriCrSADr4mRNb4SEjkTbaI8PNdyPcm",
	"UigWBUsQFxpdAmJUaUjc/FyoAIDHQjUQLB3b/SWS+b2pHOqcFm2eMDGweED8lJVawG5OL2TLZ0gi4zmd",
	"AqrSBEpJgnw1gSxz7RpRtSpCIp/4d4Wqcw7XOcQakjKwVFnYPe8+3YV/zlJAZUmLEuqQ7bxlHeUI2qxc",
	"RE3G7tyUqWexAXkP6jQVInGTEhpkWE9eTeNrryYflCxb+T6EeFus6dqqLjEb8mwa1KD82cMjbCSWKBtN",
	"fAjWiuySQNv8acL+vsG+UoMW1Gs1JORC6k3B3nENvi307iL8EvUDt+QHwP4aIukvcfjT3fBXH/lmH1GF",
	"KDcOnkpQKkJazhGZEspdrO1Em0F1+/PoGWQ9hq3JtgSxW/Njo3i8W/SOhEYKtGaQoDnoxwGt73uRa/9M",
	"FXRFFIq/Qyin1fXpqnrDX7A+IHi8hID+pyBnNLZEVOQNrTPXKa9T2zfTD6l346o3oPtwBnKO3G0AkuIK",
	"/QtzSNDlHKVAEpCPAQKvzcTdkzoNDh9eA/c9ARWNDwp39HdN791/f3f7LnOj7u7A3uG3TnYirky3AzyB",
	"n7bN+q5A1SaIzo392rzo+I/Ne9WtZV6EkFeUwBuaZa3by02SdPlpe3WGvuvPIi5J3z/iV98Sb4T8Z2Hk",
	"50TH6SMA33uz7ux31fc12Lzs+Zwjf/qwW0RYgZyVwVFIhns41TrvdTr2T02pULr3ovuiixcXi/8CAAD/",
	"/5BSHh/XJQAA",
}

// GetSwagger returns the content of the embedded swagger specification file
// or error if failed to decode
func decodeSpec() ([]byte, error) {
	zipped, err := base64.StdEncoding.DecodeString(strings.Join(swaggerSpec, ""))
	if err != nil {
		return nil, fmt.Errorf("error base64 decoding spec: %w", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(zipped))
	if err != nil {
		return nil, fmt.Errorf("error decompressing spec: %w", err)
	}
	var buf bytes.Buffer
	_, err = buf.ReadFrom(zr)
	if err != nil {
		return nil, fmt.Errorf("error decompressing spec: %w", err)
	}

	return buf.Bytes(), nil
}

var rawSpec = decodeSpecCached()

// a naive cached of a decoded swagger spec
func decodeSpecCached() func() ([]byte, error) {
	data, err := decodeSpec()
	return func() ([]byte, error) {
		return data, err
	}
}

// Constructs a synthetic filesystem for resolving external references when loading openapi specifications.
func PathToRawSpec(pathToFile string) map[string]func() ([]byte, error) {
	res := make(map[string]func() ([]byte, error))
	if len(pathToFile) > 0 {
		res[pathToFile] = rawSpec
	}

	return res
}

// GetSwagger returns the Swagger specification corresponding to the generated code
// in this file. The external references of Swagger specification are resolved.
// The logic of resolving external references is tightly connected to "import-mapping" feature.
// Externally referenced files must be embedded in the corresponding golang packages.
// Urls can be supported but this task was out of the scope.
func GetSwagger() (swagger *openapi3.T, err error) {
	resolvePath := PathToRawSpec("")

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.ReadFromURIFunc = func(loader *openapi3.Loader, url *url.URL) ([]byte, error) {
		pathToFile := url.String()
		pathToFile = path.Clean(pathToFile)
		getSpec, ok := resolvePath[pathToFile]
		if !ok {
			err1 := fmt.Errorf("path not found: %s", pathToFile)
			return nil, err1
		}
		return getSpec()
	}
	var specData []byte
	specData, err = rawSpec()
	if err != nil {
		return
	}
	swagger, err = loader.LoadFromData(specData)
	if err != nil {
		return
	}
	return
}
