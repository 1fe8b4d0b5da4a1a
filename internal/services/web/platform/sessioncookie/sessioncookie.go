// Package sessioncookie centralizes the session-record cookie left by the
// login flow.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/vinylcourses/coursehub/internal/services/web/platform/requestmeta"
)

// Name is the canonical session-record cookie name.
const Name = "coursehub_user"

// Read returns the trimmed session-record cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write stores a session-record token. The login flow owns issuing; this is
// used by local tooling and tests.
func Write(w http.ResponseWriter, r *http.Request, token string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}
