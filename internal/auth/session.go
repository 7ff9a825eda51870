package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alstha/portfolio-api/config"
	"github.com/alstha/portfolio-api/types"
)

// CookieName is the session cookie carrying the serialized principal.
const CookieName = "session_token"

// CookieMaxAge is the session cookie lifetime: 7 days. Expiry is
// enforced only by this transport attribute; the credential itself
// carries none.
const CookieMaxAge = 7 * 24 * 60 * 60

const insiderID = "admin-1"

type principalKey struct{}

// Authenticate resolves a sign-in attempt to a principal.
//
// The configured insider pair yields the insider principal. Any other
// non-empty email with an empty password yields a freshly synthesized
// outsider named after the email's local part. Everything else fails.
// Outsider sign-in is identity declaration, not verification; there is
// no password check on that path.
func Authenticate(cfg config.InsiderConfig, email, password string) (types.Principal, bool) {
	if email == cfg.Email && password == cfg.Password {
		return types.Principal{
			ID:    insiderID,
			Role:  types.RoleInsider,
			Name:  cfg.Name,
			Email: cfg.Email,
		}, true
	}

	if email != "" && password == "" {
		name := strings.SplitN(email, "@", 2)[0]
		if name == "" {
			name = "Guest"
		}
		return types.Principal{
			ID:    fmt.Sprintf("user-%d", time.Now().UnixMilli()),
			Role:  types.RoleOutsider,
			Name:  name,
			Email: email,
		}, true
	}

	return types.Principal{}, false
}

// IssueCredential serializes a principal into the cookie value:
// URL-encoded JSON. No signing, no encryption, no embedded expiry.
func IssueCredential(p types.Principal) string {
	b, _ := json.Marshal(p)
	return url.QueryEscape(string(b))
}

// ResolveCredential parses a cookie value back into a principal. Any
// decode or unmarshal failure returns false; the token's validity is
// its parseability, nothing more.
func ResolveCredential(token string) (types.Principal, bool) {
	raw, err := url.QueryUnescape(token)
	if err != nil {
		return types.Principal{}, false
	}
	var p types.Principal
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return types.Principal{}, false
	}
	return p, true
}

// SetSessionCookie writes the session cookie for the given principal.
func SetSessionCookie(w http.ResponseWriter, p types.Principal, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    IssueCredential(p),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   CookieMaxAge,
	})
}

// ClearSessionCookie instructs the client to drop the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// ReadSession resolves the request's session cookie to a principal.
func ReadSession(r *http.Request) (types.Principal, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return types.Principal{}, false
	}
	return ResolveCredential(c.Value)
}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p types.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the principal injected by the
// middleware, if any.
func PrincipalFromContext(ctx context.Context) (types.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(types.Principal)
	return p, ok
}
