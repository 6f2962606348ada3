package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	middleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
)

const maxBodyBytes = 65536

type middlewareFunc func(next http.Handler) http.Handler

func useMiddlewares(r *http.ServeMux, middlewares ...middlewareFunc) http.Handler {
	var s http.Handler
	s = r

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

func (a *API) requestIdMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := uuid.New()
			w.Header().Set("X-Request-Id", requestId.String())

			ctx := ctxWithRequestId(r.Context(), requestId)
			ctx = ctxWithLogger(ctx, a.logger.With(slog.String("requestId", requestId.String())))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *API) maxBodyMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}

func (a *API) loggingMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			statusRW := newStatusRecorder(w)

			next.ServeHTTP(statusRW, r)

			attrs := []slog.Attr{
				slog.String("latency", formatDuration(time.Since(start))),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", statusRW.responseSize),
				slog.String("method", r.Method),
				slog.Int("status-code", statusRW.statusCode),
				slog.String("path", r.URL.Path),
			}
			if id := statusRW.Header().Get("X-Request-Id"); id != "" {
				attrs = append(attrs, slog.String("requestId", id))
			}

			a.logger.LogAttrs(r.Context(), slog.LevelInfo, "Access log", attrs...)
		})
	}
}

func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middlewareFunc {
	return middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts middleware.ErrorHandlerOpts) {
			code := InternalError

			var requestErr *openapi3filter.RequestError
			if errors.As(err, &requestErr) {
				code = InputValidationError
			} else if opts.StatusCode == http.StatusNotFound {
				code = NotFound
			} else if opts.StatusCode == http.StatusMethodNotAllowed {
				code = MethodNotAllowed
			}

			a.writeJSON(ctx, w, opts.StatusCode, Error{
				Code:    code,
				Message: err.Error(),
			})
		},
	})
}

func (a *API) corsMiddleware() middlewareFunc {
	var serverCors *cors.Cors

	switch a.env {
	case LOCAL:
		serverCors = cors.AllowAll()
	case PROD:
		serverCors = cors.New(cors.Options{
			AllowedOrigins: a.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		})
	}

	return serverCors.Handler
}

// statusRecorder remembers what was written so the access log can report it.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	responseSize int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (s *statusRecorder) WriteHeader(statusCode int) {
	s.statusCode = statusCode
	s.ResponseWriter.WriteHeader(statusCode)
}

func (s *statusRecorder) Write(data []byte) (int, error) {
	size, err := s.ResponseWriter.Write(data)
	s.responseSize += size
	return size, err
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	}
	return d.String()
}
