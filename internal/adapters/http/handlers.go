package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"junglepark/internal/adapters/http/middleware"
	"junglepark/internal/domain/banner"
	"junglepark/internal/domain/catalog"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	renderTemplateStatus(w, r, templateName, data, http.StatusOK)
}

func renderTemplateStatus(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any, status int) {
	lang := middleware.GetLanguage(r.Context())

	sess, loggedIn := middleware.GetSessionFromContext(r.Context())
	role := ""
	username := ""
	if loggedIn {
		role = sess.Role
		username = sess.Username
	}

	var flashes []middleware.Flash
	if token, ok := middleware.GetSessionTokenFromContext(r.Context()); ok {
		flashes = sessions.PopFlashes(token)
	}

	funcMap := template.FuncMap{
		"t":               func(key string) string { return translator.T(lang, key) },
		"lang":            func() string { return lang },
		"currentRole":     func() string { return role },
		"currentUsername": func() string { return username },
		"isLoggedIn":      func() bool { return loggedIn },
		"isAdministrator": func() bool { return middleware.IsAdministrator(r.Context()) },
		"csrfToken":       func() string { return csrf.Token(r) },
		"localized": func(l catalog.Localized) string {
			return l.Get(lang, "")
		},
		"bannerTitle": func(b banner.Banner) string {
			return b.Title(lang)
		},
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	if data == nil {
		data = map[string]any{}
	}
	data["Lang"] = lang
	data["Flashes"] = flashes

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tpl.Execute(w, data); err != nil {
		slog.Error("template_render_failed", "template", templateName, "error", err.Error())
	}
}

// availableMenu filters the menu down to items visible on the public site.
func availableMenu(items []catalog.MenuItem) []catalog.MenuItem {
	visible := make([]catalog.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			visible = append(visible, item)
		}
	}
	return visible
}

// availablePrograms filters programs down to those visible on the public site.
func availablePrograms(programs []catalog.Program) []catalog.Program {
	visible := make([]catalog.Program, 0, len(programs))
	for _, p := range programs {
		if p.Available {
			visible = append(visible, p)
		}
	}
	return visible
}

// handleHome handles GET /
func handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	menu, err := stores.MenuStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	programs, err := stores.ProgramStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	banners, err := stores.BannerStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "home.html", map[string]any{
		"Menu":     availableMenu(menu),
		"Programs": availablePrograms(programs),
		"Banners":  banners,
	})
}

// handleMenuPage handles GET /menu
// The addItem query parameter preselects an item in the order form.
func handleMenuPage(w http.ResponseWriter, r *http.Request) {
	menu, err := stores.MenuStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "menu.html", map[string]any{
		"Menu":    availableMenu(menu),
		"AddItem": r.URL.Query().Get("addItem"),
	})
}

// handleProgramsPage handles GET /programs
func handleProgramsPage(w http.ResponseWriter, r *http.Request) {
	programs, err := stores.ProgramStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "programs.html", map[string]any{
		"Programs": availablePrograms(programs),
	})
}

// handleMaintenancePage handles GET /maintenance
func handleMaintenancePage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "maintenance.html", nil)
}

// handleForbidden renders the dedicated 403 page.
func handleForbidden(w http.ResponseWriter, r *http.Request) {
	renderTemplateStatus(w, r, "errors/403.html", nil, http.StatusForbidden)
}

// handleNotFound renders the dedicated 404 page for unmatched paths.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	renderTemplateStatus(w, r, "errors/404.html", nil, http.StatusNotFound)
}
