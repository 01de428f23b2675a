// Package session assigns each browser a stable session id.
//
// The id arrives either as the X-Session-ID header (API clients) or the
// storefront_session cookie (browsers). When neither is present a new id is
// minted and set as a cookie on the response.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/htoohtoo/storefront/config"
)

const (
	CookieName = "storefront_session"
	Header     = "X-Session-ID"
)

type ctxKey struct{}

// NewID returns a 32-hex-char random session id.
func NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// FromCtx returns the session id attached by Middleware, or "".
func FromCtx(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Middleware resolves or mints the request's session id and stores it on the
// context. The cookie is refreshed on every response so its lifetime slides.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			if c, err := r.Cookie(CookieName); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = NewID()
		}

		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(config.SessionTTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}
