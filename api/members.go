package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/amounts"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/ptr"
	"github.com/ShunTr-dev/socios-ajerga/slices"
)

func (a *API) GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error) {
	return GetHealth200JSONResponse{
		Status: "OK",
		Time:   time.Now().UTC(),
	}, nil
}

func (a *API) GetMembers(ctx context.Context, request GetMembersRequestObject) (GetMembersResponseObject, error) {
	records, err := a.ledger.ListApplicants(ctx)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Failed to list applicants", slog.String("error", err.Error()))

		switch status, apiErr := ledgerError(err); status {
		case statusUnavailable:
			return GetMembers503JSONResponse(apiErr), nil
		default:
			return GetMembers500JSONResponse(apiErr), nil
		}
	}

	return GetMembers200JSONResponse{
		Data: slices.Map(records, func(rec members.Record) map[string]string {
			return rec
		}),
	}, nil
}

// PostMembers appends a ledger row directly. The charge routes write PAID rows
// themselves; this covers rows recorded outside that flow.
func (a *API) PostMembers(ctx context.Context, request PostMembersRequestObject) (PostMembersResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		return PostMembers400JSONResponse{
			Code:    InputValidationError,
			Message: "Must specify a JSON body in the request",
		}, nil
	}
	body := request.Body

	applicant, err := applicantFromApi(body.Applicant)
	if err != nil {
		return PostMembers400JSONResponse{
			Code:    InvalidApplicant,
			Message: err.Error(),
		}, nil
	}

	state := members.PENDING
	if body.State != nil {
		state, err = members.ParsePaymentState(string(*body.State))
		if err != nil {
			return PostMembers400JSONResponse{
				Code:    InputValidationError,
				Message: err.Error(),
			}, nil
		}
	}

	var amount *money.Money
	if body.Amount != nil {
		code := a.fee.Currency().Code
		if body.Currency != nil {
			code = *body.Currency
		}
		amount, err = amounts.Parse(*body.Amount, code)
		if err != nil {
			return PostMembers400JSONResponse{
				Code:    InvalidAmount,
				Message: err.Error(),
			}, nil
		}
	}

	paidAt := body.PaidAt
	if state == members.PAID && paidAt == nil {
		paidAt = ptr.Time(time.Now())
	}

	row := members.NewLedgerRow(time.Now(), applicant, valueOrEmpty(body.ChargeId), state, paidAt, amount)
	if err := a.ledger.AppendApplicant(ctx, row); err != nil {
		logger.Error("Failed to save applicant", slog.String("error", err.Error()), slog.String("email", applicant.Email))

		switch status, apiErr := ledgerError(err); status {
		case statusUnavailable:
			return PostMembers503JSONResponse(apiErr), nil
		default:
			return PostMembers500JSONResponse(apiErr), nil
		}
	}

	logger.Info("Applicant saved", slog.String("email", applicant.Email), slog.String("state", string(state)))

	return PostMembers201Response{}, nil
}

func (a *API) PutMembersEmailPaymentState(ctx context.Context, request PutMembersEmailPaymentStateRequestObject) (PutMembersEmailPaymentStateResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)
	email := members.NormalizeEmail(string(request.Email))

	if request.Body == nil {
		return PutMembersEmailPaymentState400JSONResponse{
			Code:    InputValidationError,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	state, err := members.ParsePaymentState(string(request.Body.State))
	if err != nil {
		return PutMembersEmailPaymentState400JSONResponse{
			Code:    InputValidationError,
			Message: err.Error(),
		}, nil
	}

	paidAt := time.Now()
	if request.Body.PaidAt != nil {
		paidAt = *request.Body.PaidAt
	}

	if err := a.ledger.UpdatePaymentState(ctx, email, state, paidAt); err != nil {
		logger.Error("Failed to update payment state", slog.String("error", err.Error()), slog.String("email", email))

		switch status, apiErr := ledgerError(err); status {
		case statusNotFound:
			return PutMembersEmailPaymentState404JSONResponse(apiErr), nil
		case statusUnavailable:
			return PutMembersEmailPaymentState503JSONResponse(apiErr), nil
		default:
			return PutMembersEmailPaymentState500JSONResponse(apiErr), nil
		}
	}

	logger.Info("Payment state updated", slog.String("email", email), slog.String("state", string(state)))

	return PutMembersEmailPaymentState204Response{}, nil
}

type ledgerStatus int

const (
	statusInternal ledgerStatus = iota
	statusNotFound
	statusUnavailable
)

func ledgerError(err error) (ledgerStatus, Error) {
	var membersErr *members.Error
	if errors.As(err, &membersErr) {
		switch membersErr.Reason {
		case members.REASON_MEMBER_NOT_FOUND:
			return statusNotFound, Error{Code: NotFound, Message: "No member with that email"}
		case members.REASON_LEDGER_UNAVAILABLE:
			return statusUnavailable, Error{Code: LedgerUnavailable, Message: "Member ledger is unavailable"}
		}
	}

	return statusInternal, Error{Code: InternalError, Message: "Internal server error"}
}
