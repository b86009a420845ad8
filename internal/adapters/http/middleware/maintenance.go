package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"junglepark/internal/domain/settings"
)

// SettingsReader is the slice of the settings store the maintenance gate needs.
type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// Maintenance returns middleware that redirects public traffic to the
// maintenance page while the site is switched off. Admin routes and static
// assets stay reachable so staff can turn the site back on.
func Maintenance(store SettingsReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/static/") || path == "/maintenance" {
				next.ServeHTTP(w, r)
				return
			}
			current, err := store.Get(r.Context())
			if err != nil {
				// Fail open: a broken settings file must not take the site down.
				slog.Error("maintenance_check_failed", "error", err.Error())
				next.ServeHTTP(w, r)
				return
			}
			if current.Maintenance {
				http.Redirect(w, r, "/maintenance", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
