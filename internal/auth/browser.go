package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	BrowserCookieName = "portal_session"

	browserCookieMaxAge = 30 * 24 * time.Hour
)

var ErrNoBrowser = errors.New("request has no browser session")

// BrowserID identifies one browser talking to the portal. Credentials are stored per browser.
type BrowserID string

func WithBrowser(ctx context.Context, browser BrowserID) context.Context {
	return context.WithValue(ctx, browserContextKey, browser)
}

func BrowserFromContext(ctx context.Context) (BrowserID, bool) {
	browser, ok := ctx.Value(browserContextKey).(BrowserID)
	return browser, ok && browser != ""
}

// BrowserScope puts the browser of the request into its context. A browser without a valid
// session cookie gets a new random ID.
func BrowserScope() func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			browser, ok := browserFromCookie(r)
			if !ok {
				browser = BrowserID(uuid.NewString())
				http.SetCookie(w, &http.Cookie{
					Name:     BrowserCookieName,
					Value:    string(browser),
					Path:     "/",
					MaxAge:   int(browserCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
			}

			handler.ServeHTTP(w, r.WithContext(WithBrowser(r.Context(), browser)))
		})
	}
}

func browserFromCookie(r *http.Request) (BrowserID, bool) {
	cookie, err := r.Cookie(BrowserCookieName)
	if err != nil {
		return "", false
	}

	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return "", false
	}

	return BrowserID(id.String()), true
}

type browserStore struct {
	store CredentialStore
}

// NewBrowserStore namespaces every key with the browser found in the context. Calls without a
// browser fail with ErrNoBrowser.
func NewBrowserStore(store CredentialStore) CredentialStore {
	return browserStore{store: store}
}

func (s browserStore) Get(ctx context.Context, key Key) (Token, bool, error) {
	scoped, err := browserKey(ctx, key)
	if err != nil {
		return "", false, err
	}

	return s.store.Get(ctx, scoped)
}

func (s browserStore) Set(ctx context.Context, key Key, token Token) error {
	scoped, err := browserKey(ctx, key)
	if err != nil {
		return err
	}

	return s.store.Set(ctx, scoped, token)
}

func (s browserStore) Remove(ctx context.Context, key Key) error {
	scoped, err := browserKey(ctx, key)
	if err != nil {
		return err
	}

	return s.store.Remove(ctx, scoped)
}

func browserKey(ctx context.Context, key Key) (Key, error) {
	browser, ok := BrowserFromContext(ctx)
	if !ok {
		return "", fmt.Errorf("%w: key %s", ErrNoBrowser, key)
	}

	return Key(fmt.Sprintf("%s/%s", browser, key)), nil
}
