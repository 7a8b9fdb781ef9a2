package auth

import (
	"net/http"

	"github.com/klwxsrx/adoption-portal/pkg/log"
)

type Guard func(http.Handler) http.Handler

// AdopterGuard serves the wrapped handler only while the adopter session of the requesting
// browser holds a token. Token validity is left to the backend.
func AdopterGuard(session *Session, logger log.Logger) Guard {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok, err := session.Current(r.Context())
			if err != nil {
				logger.WithError(err).Error(r.Context(), "failed to read adopter token")
			}
			if err != nil || !ok {
				redirectToLogin(w, r, RoleAdopter)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// AdminGuard reads the administrator token from the store on every request. Store failures
// redirect to the login page.
func AdminGuard(store CredentialStore, logger log.Logger) Guard {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok, err := store.Get(r.Context(), AdminTokenKey)
			if err != nil {
				logger.WithError(err).Error(r.Context(), "failed to read admin token")
			}
			if err != nil || !ok {
				redirectToLogin(w, r, RoleAdmin)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// 303 makes the browser replace the guarded page with a GET of the login page.
func redirectToLogin(w http.ResponseWriter, r *http.Request, role Role) {
	http.Redirect(w, r, role.LoginPath(), http.StatusSeeOther)
}
