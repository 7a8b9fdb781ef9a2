package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	shutdownTimeout          = 10 * time.Second
)

type (
	ServerOption     func(*mux.Router)
	ServerMiddleware func(http.Handler) http.Handler
)

type HandlerRegistry interface {
	Register(handler Handler, opts ...ServerOption)
}

type Server interface {
	http.Handler
	HandlerRegistry
	Group(opts ...ServerOption) HandlerRegistry
	Listener(context.Context) error
}

type server struct {
	srv    *http.Server
	router *mux.Router
}

func NewServer(address string, opts ...ServerOption) Server {
	router := withHandlerMetadata(mux.NewRouter())
	for _, opt := range opts {
		opt(router)
	}

	return server{
		srv: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
	}
}

func (s server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s server) Listener(ctx context.Context) error {
	serverDone := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDone <- err
	}()

	var err error
	select {
	case err = <-serverDone:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err = s.srv.Shutdown(shutdownCtx); err != nil {
			err = fmt.Errorf("shutdown: %w", err)
		}
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

// Register adds the handler to the root router or, when options are given, to a
// subrouter carrying only those options.
func (s server) Register(handler Handler, opts ...ServerOption) {
	if len(opts) > 0 {
		s.Group(opts...).Register(handler)
		return
	}

	registerHandler(s.router, handler)
}

// Group returns a registry whose handlers share one subrouter with the given options,
// e.g. a route guard. Routes sharing a path must be registered in the same group.
func (s server) Group(opts ...ServerOption) HandlerRegistry {
	router := s.router.NewRoute().Subrouter()
	for _, opt := range opts {
		opt(router)
	}

	return group{router: router}
}

type group struct {
	router *mux.Router
}

func (g group) Register(handler Handler, opts ...ServerOption) {
	router := g.router
	if len(opts) > 0 {
		router = g.router.NewRoute().Subrouter()
		for _, opt := range opts {
			opt(router)
		}
	}

	registerHandler(router, handler)
}

func registerHandler(router *mux.Router, handler Handler) {
	router.
		Name(getRouteName(handler.Method(), handler.Path())).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(httpHandlerWrapper(handler.HTTPHandler()))
}

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		if r == '{' || r == '}' {
			return -1
		}
		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}
