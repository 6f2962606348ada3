package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/amounts"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/payments"
	"github.com/ShunTr-dev/socios-ajerga/signup"
	"github.com/ShunTr-dev/socios-ajerga/slices"
)

const (
	defaultAttemptPageSize = 10
	maxAttemptPageSize     = 50
)

func (a *API) PostCharges(ctx context.Context, request PostChargesRequestObject) (PostChargesResponseObject, error) {
	if request.Body == nil {
		return PostCharges400JSONResponse{
			Code:    InputValidationError,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	applicant, err := applicantFromApi(request.Body.Applicant)
	if err != nil {
		return PostCharges400JSONResponse{
			Code:    InvalidApplicant,
			Message: err.Error(),
		}, nil
	}

	amount, code, err := a.chargeAmount(request.Body.Amount, request.Body.Currency)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Warn("Rejected charge amount", slog.String("error", err.Error()))
		return PostCharges400JSONResponse{
			Code:    code,
			Message: err.Error(),
		}, nil
	}

	outcome := a.workflow.Start(ctx, signup.Submission{Applicant: applicant, Amount: amount})
	a.logOutcome(ctx, outcome)

	switch outcomeStatus(outcome) {
	case http.StatusOK:
		return PostCharges200JSONResponse(outcomeToApiOutcome(outcome)), nil
	case http.StatusBadGateway:
		return PostCharges502JSONResponse(outcomeToApiOutcome(outcome)), nil
	default:
		return PostCharges500JSONResponse(unexpectedOutcomeError(outcome)), nil
	}
}

func (a *API) PostChargesChargeIdCapture(ctx context.Context, request PostChargesChargeIdCaptureRequestObject) (PostChargesChargeIdCaptureResponseObject, error) {
	outcome := a.workflow.Confirm(ctx, request.ChargeId)
	a.logOutcome(ctx, outcome)

	switch outcomeStatus(outcome) {
	case http.StatusOK:
		return PostChargesChargeIdCapture200JSONResponse(outcomeToApiOutcome(outcome)), nil
	case http.StatusAccepted:
		return PostChargesChargeIdCapture202JSONResponse(outcomeToApiOutcome(outcome)), nil
	case http.StatusPaymentRequired:
		return PostChargesChargeIdCapture402JSONResponse(outcomeToApiOutcome(outcome)), nil
	default:
		return PostChargesChargeIdCapture500JSONResponse(unexpectedOutcomeError(outcome)), nil
	}
}

func (a *API) PostChargesChargeIdCancel(ctx context.Context, request PostChargesChargeIdCancelRequestObject) (PostChargesChargeIdCancelResponseObject, error) {
	outcome := a.workflow.Cancel(ctx, request.ChargeId)
	a.logOutcome(ctx, outcome)

	switch outcomeStatus(outcome) {
	case http.StatusOK:
		return PostChargesChargeIdCancel200JSONResponse(outcomeToApiOutcome(outcome)), nil
	case http.StatusAccepted:
		return PostChargesChargeIdCancel202JSONResponse(outcomeToApiOutcome(outcome)), nil
	case http.StatusPaymentRequired:
		return PostChargesChargeIdCancel402JSONResponse(outcomeToApiOutcome(outcome)), nil
	default:
		return PostChargesChargeIdCancel500JSONResponse(unexpectedOutcomeError(outcome)), nil
	}
}

func (a *API) GetChargesChargeId(ctx context.Context, request GetChargesChargeIdRequestObject) (GetChargesChargeIdResponseObject, error) {
	v, err := a.workflow.Verify(ctx, request.ChargeId)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Failed to verify charge", slog.String("error", err.Error()), slog.String("chargeId", request.ChargeId))

		var signupErr *signup.Error
		if errors.As(err, &signupErr) && signupErr.Reason == signup.REASON_ATTEMPT_DOES_NOT_EXIST {
			return GetChargesChargeId404JSONResponse{
				Code:    NotFound,
				Message: "No signup attempt for this charge",
			}, nil
		}
		var payErr *payments.Error
		if errors.As(err, &payErr) {
			return GetChargesChargeId502JSONResponse{
				Code:    ProviderError,
				Message: "Payment provider could not report the charge status",
			}, nil
		}
		return GetChargesChargeId500JSONResponse{
			Code:    InternalError,
			Message: "Internal server error",
		}, nil
	}

	return GetChargesChargeId200JSONResponse{
		ChargeId: request.ChargeId,
		Status:   v.Status,
		Paid:     v.Paid,
	}, nil
}

func (a *API) GetCharges(ctx context.Context, request GetChargesRequestObject) (GetChargesResponseObject, error) {
	state, err := signup.ParseState(string(request.Params.State))
	if err != nil {
		return GetCharges400JSONResponse{
			Code:    InputValidationError,
			Message: err.Error(),
		}, nil
	}

	limit := defaultAttemptPageSize
	if request.Params.Limit != nil {
		limit = *request.Params.Limit
		if limit < 1 || limit > maxAttemptPageSize {
			return GetCharges400JSONResponse{
				Code:    InputValidationError,
				Message: "Limit must be between 1 and 50",
			}, nil
		}
	}

	result, err := a.attempts.ListAttemptsByState(ctx, state, int32(limit), request.Params.Cursor)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Failed to list signup attempts", slog.String("error", err.Error()))

		var signupErr *signup.Error
		if errors.As(err, &signupErr) && signupErr.Reason == signup.REASON_INVALID_CURSOR {
			return GetCharges400JSONResponse{
				Code:    InvalidCursor,
				Message: "Passed in cursor is invalid",
			}, nil
		}
		return GetCharges500JSONResponse{
			Code:    InternalError,
			Message: "Internal server error",
		}, nil
	}

	return GetCharges200JSONResponse{
		Data:        slices.Map(result.Data, attemptToApiAttempt),
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}, nil
}

// chargeAmount resolves the amount to charge. The membership fee is fixed by
// configuration, so a client supplied amount must match it exactly.
func (a *API) chargeAmount(value *string, currency *string) (*money.Money, ErrorCode, error) {
	if value == nil {
		return a.fee, "", nil
	}

	code := a.fee.Currency().Code
	if currency != nil {
		code = *currency
	}

	amount, err := amounts.Parse(*value, code)
	if err != nil {
		return nil, InvalidAmount, err
	}

	same, err := amount.Equals(a.fee)
	if err != nil || !same {
		return nil, AmountMismatch, errors.New("amount must be the membership fee of " + amounts.FormatMajor(a.fee) + " " + a.fee.Currency().Code)
	}

	return amount, "", nil
}

func outcomeStatus(outcome signup.Outcome) int {
	switch outcome.State {
	case signup.PAID, signup.CHARGE_CREATED:
		return http.StatusOK
	case signup.CAPTURING:
		return http.StatusAccepted
	case signup.FAILED:
		if outcome.Reason == signup.CHARGE_CREATION_FAILED {
			return http.StatusBadGateway
		}
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) logOutcome(ctx context.Context, outcome signup.Outcome) {
	if outcome.Err == nil {
		return
	}

	a.getLoggerOrBaseLogger(ctx).Warn("Signup step did not complete cleanly",
		slog.String("state", string(outcome.State)),
		slog.String("reason", string(outcome.Reason)),
		slog.String("error", outcome.Err.Error()),
	)
}

func unexpectedOutcomeError(outcome signup.Outcome) Error {
	return Error{
		Code:    InternalError,
		Message: fmt.Sprintf("Unexpected signup state %q", outcome.State),
	}
}

func outcomeToApiOutcome(outcome signup.Outcome) Outcome {
	out := Outcome{
		State:          AttemptState(outcome.State),
		ChargeId:       outcome.ChargeID,
		AlreadyPaid:    outcome.AlreadyPaid,
		Warnings:       slices.Map(outcome.Warnings, func(w signup.Warning) Warning { return Warning(w) }),
		ClientSecret:   nonEmpty(outcome.ClientSecret),
		CaptureId:      nonEmpty(outcome.CaptureID),
		ProviderStatus: nonEmpty(outcome.ProviderStatus),
	}
	if outcome.Reason != "" {
		reason := FailureReason(outcome.Reason)
		out.Reason = &reason
	}
	return out
}

func attemptToApiAttempt(attempt signup.Attempt) Attempt {
	out := Attempt{
		ChargeId:       attempt.ChargeID,
		State:          AttemptState(attempt.State),
		Email:          attempt.Applicant.Email,
		PaymentMethod:  PaymentMethod(attempt.Applicant.PaymentMethod),
		ProviderStatus: nonEmpty(attempt.ProviderStatus),
		CaptureId:      nonEmpty(attempt.CaptureID),
		UpdatedAt:      attempt.UpdatedAt,
	}
	if attempt.FailureReason != "" {
		reason := FailureReason(attempt.FailureReason)
		out.Reason = &reason
	}
	if attempt.Amount != nil {
		out.Amount = nonEmpty(amounts.FormatMajor(attempt.Amount))
		out.Currency = nonEmpty(attempt.Amount.Currency().Code)
	}
	return out
}

func applicantFromApi(a Applicant) (members.ApplicantRecord, error) {
	return members.NewApplicantRecord(members.ApplicantParams{
		Email:         string(a.Email),
		FullName:      a.FullName,
		Document:      a.Document,
		Address:       valueOrEmpty(a.Address),
		Locality:      valueOrEmpty(a.Locality),
		Region:        valueOrEmpty(a.Region),
		PostalCode:    valueOrEmpty(a.PostalCode),
		Phone:         valueOrEmpty(a.Phone),
		PaymentMethod: string(a.PaymentMethod),
	})
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
