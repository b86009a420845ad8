package web

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"junglepark/internal/adapters/http/middleware"
	"junglepark/internal/adapters/notify"
	bannerStore "junglepark/internal/adapters/storage/banner"
	catalogStore "junglepark/internal/adapters/storage/catalog"
	notificationStore "junglepark/internal/adapters/storage/notification"
	settingsStore "junglepark/internal/adapters/storage/settings"
	userStore "junglepark/internal/adapters/storage/user"
	"junglepark/internal/i18n"
)

// Stores holds all storage dependencies.
type Stores struct {
	SettingsStore     settingsStore.Store
	UserStore         userStore.Store
	MenuStore         catalogStore.MenuStore
	ProgramStore      catalogStore.ProgramStore
	BannerStore       bannerStore.Store
	NotificationStore notificationStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global translator instance (set by NewMux)
var translator *i18n.Translator

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global notification sender (set by SetNotifySender)
var notifySender notify.Sender = notify.NewNoopSender()

// SetNotifySender sets the outbound channel for submission notifications.
func SetNotifySender(sender notify.Sender) {
	notifySender = sender
}

// deriveKey expands the configured secret into a fixed 32-byte key for one
// named purpose, so the CSRF and cookie-signing keys differ.
func deriveKey(secret, purpose string) []byte {
	sum := sha256.Sum256([]byte(purpose + ":" + secret))
	return sum[:]
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir, secretKey string, production bool, s *Stores, tr *i18n.Translator) http.Handler {
	stores = s
	translator = tr
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = production
	middleware.ForbiddenHandler = http.HandlerFunc(handleForbidden)

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	langCodec := securecookie.New(deriveKey(secretKey, "lang"), nil)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Outermost to innermost: Timing -> SecurityHeaders -> CSRF -> Auth ->
	// Language -> Maintenance -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.RateLimit(limiter),
		middleware.Maintenance(s.SettingsStore),
		middleware.Language(langCodec),
		middleware.Auth(sessions),
		middleware.CSRF(deriveKey(secretKey, "csrf")),
		middleware.SecurityHeaders,
		middleware.Timing(),
	)
}
