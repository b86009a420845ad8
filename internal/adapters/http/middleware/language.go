package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/securecookie"

	"junglepark/internal/domain/catalog"
)

const langContextKey contextKey = "lang"

const langCookieName = "junglepark_lang"

// Language returns middleware that resolves the visitor's display language.
// Resolution order: validated ?lang= query parameter, then the signed
// preference cookie, then the site default. A ?lang= override is persisted
// into the cookie so it survives navigation.
func Language(codec *securecookie.SecureCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := catalog.DefaultLanguage

			if cookie, err := r.Cookie(langCookieName); err == nil {
				var stored string
				if err := codec.Decode(langCookieName, cookie.Value, &stored); err == nil && catalog.IsSupportedLanguage(stored) {
					lang = stored
				}
			}

			if requested := r.URL.Query().Get("lang"); catalog.IsSupportedLanguage(requested) {
				lang = requested
				if encoded, err := codec.Encode(langCookieName, requested); err == nil {
					http.SetCookie(w, &http.Cookie{
						Name:     langCookieName,
						Value:    encoded,
						HttpOnly: true,
						Secure:   SecureCookies,
						SameSite: http.SameSiteLaxMode,
						Path:     "/",
						MaxAge:   365 * 86400,
					})
				}
			}

			ctx := context.WithValue(r.Context(), langContextKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLanguage returns the resolved display language for the request.
// Falls back to the site default when no language middleware ran.
func GetLanguage(ctx context.Context) string {
	if lang, ok := ctx.Value(langContextKey).(string); ok {
		return lang
	}
	return catalog.DefaultLanguage
}
