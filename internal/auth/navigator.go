//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Navigator=Navigator"
package auth

import (
	"context"
	"sync"

	"github.com/klwxsrx/adoption-portal/pkg/log"
)

type Navigator interface {
	Navigate(ctx context.Context, path string)
}

type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Navigate(ctx context.Context, path string) {
	f(ctx, path)
}

type navigation struct {
	mu   sync.Mutex
	path string
}

// WithNavigation prepares the context to record a navigation target for the request.
func WithNavigation(ctx context.Context) context.Context {
	return context.WithValue(ctx, navigationContextKey, &navigation{})
}

// NavigationTarget returns the last path recorded with the context navigator.
func NavigationTarget(ctx context.Context) (string, bool) {
	nav, ok := ctx.Value(navigationContextKey).(*navigation)
	if !ok {
		return "", false
	}

	nav.mu.Lock()
	defer nav.mu.Unlock()
	return nav.path, nav.path != ""
}

type contextNavigator struct {
	logger log.Logger
}

// NewContextNavigator records targets on contexts prepared with WithNavigation. Targets
// requested outside such a context are only logged.
func NewContextNavigator(logger log.Logger) Navigator {
	return contextNavigator{logger: logger}
}

func (n contextNavigator) Navigate(ctx context.Context, path string) {
	nav, ok := ctx.Value(navigationContextKey).(*navigation)
	if !ok {
		n.logger.WithField("path", path).Info(ctx, "navigation requested outside of portal request")
		return
	}

	nav.mu.Lock()
	defer nav.mu.Unlock()
	nav.path = path
}
