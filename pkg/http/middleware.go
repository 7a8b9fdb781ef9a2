package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/adoption-portal/pkg/log"
)

const HealthPath = "/healthz"

func WithHealthCheck() ServerOption {
	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_ = writeJSON(w, http.StatusOK, struct {
					Status string `json:"status"`
				}{
					Status: "OK",
				})
			})
	}
}

var ErrCrossOriginRequest = errors.New("cross-origin request rejected")

// WithCrossOriginProtection rejects state-changing requests a browser sent on behalf of another
// site. Requests carrying neither Sec-Fetch-Site nor Origin come from non-browser clients and
// pass.
func WithCrossOriginProtection() ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := checkSameOrigin(r); err != nil {
				getHandlerMetadata(r.Context()).Error = err
				_ = writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func checkSameOrigin(r *http.Request) error {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return nil
	}

	switch site := r.Header.Get("Sec-Fetch-Site"); site {
	case "same-origin", "none":
		return nil
	case "":
	default:
		return fmt.Errorf("%w: sec-fetch-site %s", ErrCrossOriginRequest, site)
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return nil
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host != r.Host {
		return fmt.Errorf("%w: origin %s", ErrCrossOriginRequest, origin)
	}

	return nil
}

type loggingResponseWriter struct {
	http.ResponseWriter
	code int
}

func (w *loggingResponseWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// WithLogging logs every handled request except the health check. Handler errors and
// recovered panics are logged with errorLevel.
func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == HealthPath {
				handler.ServeHTTP(w, r)
				return
			}

			lrw := &loggingResponseWriter{ResponseWriter: w, code: http.StatusOK}
			handler.ServeHTTP(lrw, r)

			meta := getHandlerMetadata(r.Context())
			l := logger.With(log.Fields{
				"routeName":    routeName(r),
				"method":       r.Method,
				"uri":          r.RequestURI,
				"responseCode": lrw.code,
			})
			switch {
			case meta.Panic != nil:
				l.With(log.Fields{
					"panic":      meta.Panic.Message,
					"stacktrace": string(meta.Panic.Stacktrace),
				}).Log(r.Context(), errorLevel, "handler panicked")
			case meta.Error != nil && lrw.code >= http.StatusInternalServerError:
				l.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with error")
			case meta.Error != nil:
				l.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			default:
				l.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}

	return getRouteName(r.Method, r.URL.Path)
}
