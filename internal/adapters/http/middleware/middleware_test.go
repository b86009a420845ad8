package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/securecookie"

	"junglepark/internal/domain/settings"
	domainUser "junglepark/internal/domain/user"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestSessionStore_Lifecycle tests create, get, update and delete.
func TestSessionStore_Lifecycle(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create("root", domainUser.RoleAdministrator, true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sess, ok := ss.Get(token)
	if !ok || sess.Username != "root" || !sess.MustChangePassword {
		t.Fatalf("unexpected session: %+v ok=%v", sess, ok)
	}

	sess.MustChangePassword = false
	if !ss.Update(token, sess) {
		t.Fatal("Update returned false for live token")
	}
	sess, _ = ss.Get(token)
	if sess.MustChangePassword {
		t.Error("update not applied")
	}

	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("session must be gone after Delete")
	}
}

// TestSessionStore_Flashes tests that PopFlashes drains the queue.
func TestSessionStore_Flashes(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("root", domainUser.RoleAdministrator, false)

	ss.AddFlash(token, "success", "Меню обновлено")
	ss.AddFlash(token, "danger", "Ошибка")

	flashes := ss.PopFlashes(token)
	if len(flashes) != 2 || flashes[0].Category != "success" || flashes[1].Message != "Ошибка" {
		t.Fatalf("unexpected flashes: %+v", flashes)
	}
	if got := ss.PopFlashes(token); len(got) != 0 {
		t.Errorf("flashes must drain, got %+v", got)
	}

	// Flashes for unknown tokens are dropped.
	ss.AddFlash("no-such-token", "success", "x")
	if got := ss.PopFlashes("no-such-token"); len(got) != 0 {
		t.Errorf("flash for dead token must be dropped, got %+v", got)
	}
}

// TestSessionStore_ExpiredConcurrentGet tests that concurrent lookups of an
// expired session evict it safely.
func TestSessionStore_ExpiredConcurrentGet(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("root", domainUser.RoleAdministrator, false)
	ss.Update(token, Session{
		Username:  "root",
		Role:      domainUser.RoleAdministrator,
		CreatedAt: time.Now().Add(-25 * time.Hour),
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := ss.Get(token); ok {
				t.Error("expired session must not be returned")
			}
		}()
	}
	wg.Wait()

	if _, ok := ss.Get(token); ok {
		t.Error("expired session must stay evicted")
	}
}

// TestRequireRoles tests the role gate including the administrator override.
func TestRequireRoles(t *testing.T) {
	gate := RequireRoles("Бармен")(okHandler())

	tests := []struct {
		name       string
		session    *Session
		wantStatus int
	}{
		{"anonymous redirects", nil, http.StatusSeeOther},
		{"matching role passes", &Session{Username: "b", Role: "Бармен"}, http.StatusOK},
		{"administrator passes every check", &Session{Username: "root", Role: domainUser.RoleAdministrator}, http.StatusOK},
		{"other role forbidden", &Session{Username: "k", Role: "Кассир"}, http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin/menu", nil)
			if tc.session != nil {
				req = req.WithContext(ContextWithSession(req.Context(), *tc.session, "tok"))
			}
			rec := httptest.NewRecorder()
			gate.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func langCodec() *securecookie.SecureCookie {
	key := make([]byte, 32)
	return securecookie.New(key, nil)
}

// TestLanguage_QueryOverride tests ?lang= persisting into the signed cookie.
func TestLanguage_QueryOverride(t *testing.T) {
	codec := langCodec()
	var seen string
	h := Language(codec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetLanguage(r.Context())
	}))

	req := httptest.NewRequest("GET", "/?lang=kk", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "kk" {
		t.Errorf("lang = %q, want kk", seen)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "junglepark_lang" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected lang preference cookie to be set")
	}

	// Next request carries the cookie, no query override.
	req = httptest.NewRequest("GET", "/menu", nil)
	req.AddCookie(cookie)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "kk" {
		t.Errorf("cookie lang = %q, want kk", seen)
	}
}

// TestLanguage_InvalidFallsBack tests rejection of unsupported codes.
func TestLanguage_InvalidFallsBack(t *testing.T) {
	var seen string
	h := Language(langCodec())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetLanguage(r.Context())
	}))

	req := httptest.NewRequest("GET", "/?lang=fr", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "ru" {
		t.Errorf("lang = %q, want ru", seen)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "junglepark_lang" {
			t.Error("unsupported language must not be persisted")
		}
	}
}

// TestGetLanguage_Default tests the fallback when no middleware ran.
func TestGetLanguage_Default(t *testing.T) {
	if got := GetLanguage(context.Background()); got != "ru" {
		t.Errorf("GetLanguage = %q, want ru", got)
	}
}

type stubSettings struct {
	s   settings.Settings
	err error
}

func (s *stubSettings) Get(ctx context.Context) (settings.Settings, error) {
	return s.s, s.err
}

// TestMaintenance_Gating tests the redirect and the exempt prefixes.
func TestMaintenance_Gating(t *testing.T) {
	on := &stubSettings{s: settings.Settings{Maintenance: true}}
	off := &stubSettings{s: settings.Settings{Maintenance: false}}

	tests := []struct {
		name       string
		store      SettingsReader
		path       string
		wantStatus int
	}{
		{"public page redirects when on", on, "/menu", http.StatusFound},
		{"home redirects when on", on, "/", http.StatusFound},
		{"maintenance page itself passes", on, "/maintenance", http.StatusOK},
		{"admin stays reachable", on, "/admin/settings", http.StatusOK},
		{"static stays reachable", on, "/static/css/site.css", http.StatusOK},
		{"public page passes when off", off, "/menu", http.StatusOK},
		{"broken settings fail open", &stubSettings{err: errors.New("corrupt")}, "/menu", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Maintenance(tc.store)(okHandler())
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", tc.path, nil))
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusFound {
				if loc := rec.Header().Get("Location"); loc != "/maintenance" {
					t.Errorf("Location = %q, want /maintenance", loc)
				}
			}
		})
	}
}

// TestRateLimiter_Allow tests the token bucket boundary.
func TestRateLimiter_Allow(t *testing.T) {
	rl := &RateLimiter{visitors: make(map[string]*visitor), rate: 3, interval: time.Hour}
	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request over the limit must be rejected")
	}
	if !rl.Allow("5.6.7.8") {
		t.Error("other IPs are unaffected")
	}
}
