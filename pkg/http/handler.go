package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	HTTPHandler() HandlerFunc
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
	Redirect(url string) ResponseWriter
}

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code       int
	Error      error
	Panic      *Panic
	errorCodes map[int][]error
}

type handler struct {
	method string
	path   string
	fn     HandlerFunc
}

func NewHandler(method, path string, fn HandlerFunc) Handler {
	return handler{method: method, path: path, fn: fn}
}

func (h handler) Method() string {
	return h.method
}

func (h handler) Path() string {
	return h.path
}

func (h handler) HTTPHandler() HandlerFunc {
	return h.fn
}

// WithErrorMapping sets response codes for handler errors matching the given errors
// (errors.Is). Unmatched errors produce 500.
func WithErrorMapping(codes map[int][]error) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			getHandlerMetadata(r.Context()).errorCodes = codes
			handler.ServeHTTP(w, r)
		})
	})
}

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	redirect string
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

// Redirect answers with 303 See Other, so the redirecting page does not stay in the
// browser history.
func (w *responseWriter) Redirect(url string) ResponseWriter {
	w.redirect = url
	return w
}

func (w *responseWriter) write(r *http.Request, err error) {
	meta := getHandlerMetadata(r.Context())
	meta.Error = err

	switch {
	case err != nil:
		meta.Code = errorStatusCode(err, meta.errorCodes)
		if meta.Code < http.StatusInternalServerError {
			writeJSON(w.impl, meta.Code, errorBody{Error: err.Error()})
			return
		}
		w.impl.WriteHeader(meta.Code)
	case w.redirect != "":
		meta.Code = http.StatusSeeOther
		http.Redirect(w.impl, r, w.redirect, http.StatusSeeOther)
	case w.hasBody:
		meta.Code = w.httpCode
		if encodeErr := writeJSON(w.impl, w.httpCode, w.body); encodeErr != nil {
			meta.Error = encodeErr
		}
	default:
		meta.Code = w.httpCode
		w.impl.WriteHeader(w.httpCode)
	}
}

func (w *responseWriter) writePanic(r *http.Request, p Panic) {
	meta := getHandlerMetadata(r.Context())
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("encode body: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(code)
	_, err = w.Write(encoded)
	return err
}

func errorStatusCode(err error, codes map[int][]error) int {
	for code, errs := range codes {
		for _, target := range errs {
			if errors.Is(err, target) {
				return code
			}
		}
	}
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer func() {
			msg := recover()
			if msg == nil {
				return
			}

			respWriter.writePanic(r, Panic{
				Message:    fmt.Sprintf("%v", msg),
				Stacktrace: debug.Stack(),
			})
		}()

		err := handler(respWriter, r)
		respWriter.write(r, err)
	}
}
