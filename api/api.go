//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml spec.yaml
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/payments"
	"github.com/ShunTr-dev/socios-ajerga/signup"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

// Workflow is the signup reconciliation the charge routes drive.
type Workflow interface {
	Start(ctx context.Context, sub signup.Submission) signup.Outcome
	Confirm(ctx context.Context, chargeID string) signup.Outcome
	Cancel(ctx context.Context, chargeID string) signup.Outcome
	Verify(ctx context.Context, chargeID string) (payments.Verification, error)
}

var _ StrictServerInterface = (*API)(nil)

type API struct {
	workflow Workflow
	ledger   members.Ledger
	attempts signup.AttemptLister
	fee      *money.Money
	logger   *slog.Logger
	env      Environment
	// allowedOrigins applies in PROD only.
	allowedOrigins []string
}

func NewAPI(workflow Workflow, ledger members.Ledger, attempts signup.AttemptLister, fee *money.Money, logger *slog.Logger, env Environment, allowedOrigins []string) *API {
	return &API{
		workflow:       workflow,
		ledger:         ledger,
		attempts:       attempts,
		fee:            fee,
		logger:         logger,
		env:            env,
		allowedOrigins: allowedOrigins,
	}
}

// Handler returns the routed API with its middleware chain. The chain runs
// outermost first: cors, access log, request id, body limit, request validation.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	// requests are matched on path only, not on the host listed in servers
	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	r := http.NewServeMux()

	HandlerFromMux(strictHandler, r)

	return useMiddlewares(r,
		a.openapiValidateMiddleware(swagger),
		a.maxBodyMiddleware(),
		a.requestIdMiddleware(),
		a.loggingMiddleware(),
		a.corsMiddleware(),
	), nil
}
