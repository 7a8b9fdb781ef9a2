package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/adoption-portal/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

type contextKey int

const (
	requestIDContextKey contextKey = iota
	handlerMetaContextKey
)

func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok && id != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// WithRequestIDs takes the request ID from the incoming header or generates one, exposes it
// on the response and adds it to the logging context.
func WithRequestIDs(logger log.Logger) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			ctx := WithRequestID(r.Context(), id)
			ctx = logger.WithContext(ctx, log.Fields{"requestID": id})
			w.Header().Set(RequestIDHeader, id)

			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}
