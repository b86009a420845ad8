package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"junglepark/internal/adapters/http/middleware"
	"junglepark/internal/application/orchestrators"
	domainUser "junglepark/internal/domain/user"
)

// flash queues a localized one-shot message for the current session.
func flash(r *http.Request, category, key string) {
	token, ok := middleware.GetSessionTokenFromContext(r.Context())
	if !ok {
		return
	}
	lang := middleware.GetLanguage(r.Context())
	sessions.AddFlash(token, category, translator.T(lang, key))
}

// formAction returns the acting form verb. Forms render one submit button per
// row, so the last submitted value wins.
func formAction(r *http.Request) string {
	values := r.PostForm["action"]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// formInt parses a form number the forgiving way the admin forms expect:
// anything unparseable reads as zero.
func formInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// handleAdminLogin handles GET and POST /admin
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "admin/login.html", nil)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	lang := middleware.GetLanguage(r.Context())
	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}, orchestrators.LoginDeps{UserStore: stores.UserStore})
	if err != nil {
		if errors.Is(err, orchestrators.ErrInvalidCredentials) {
			renderTemplate(w, r, "admin/login.html", map[string]any{
				"Error": translator.T(lang, "invalidCredentials"),
			})
			return
		}
		internalError(w, err)
		return
	}

	token, err := sessions.Create(result.Username, result.Role, result.MustChangePassword)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)

	if result.MustChangePassword {
		sessions.AddFlash(token, "warning", translator.T(lang, "changePasswordPrompt"))
		http.Redirect(w, r, "/admin/change-password", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// handleAdminLogout handles GET /admin/logout
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.GetSessionTokenFromContext(r.Context()); ok {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleAdminChangePassword handles GET and POST /admin/change-password
func handleAdminChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		renderTemplate(w, r, "admin/change-password.html", nil)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteChangePassword(r.Context(), orchestrators.ChangePasswordInput{
		Username:        sess.Username,
		CurrentPassword: r.FormValue("currentPassword"),
		NewPassword:     r.FormValue("newPassword"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}, orchestrators.ChangePasswordDeps{UserStore: stores.UserStore})
	switch {
	case errors.Is(err, orchestrators.ErrCurrentPasswordWrong):
		flash(r, "danger", "currentPasswordInvalid")
		renderTemplate(w, r, "admin/change-password.html", nil)
	case errors.Is(err, domainUser.ErrPasswordTooShort):
		flash(r, "danger", "passwordTooShort")
		renderTemplate(w, r, "admin/change-password.html", nil)
	case errors.Is(err, orchestrators.ErrPasswordMismatch):
		flash(r, "danger", "passwordMismatch")
		renderTemplate(w, r, "admin/change-password.html", nil)
	case err != nil:
		internalError(w, err)
	default:
		if token, ok := middleware.GetSessionTokenFromContext(r.Context()); ok {
			sess.MustChangePassword = false
			sessions.Update(token, sess)
		}
		flash(r, "success", "passwordUpdated")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

// handleAdminDashboard handles GET /admin/dashboard
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "admin/dashboard.html", nil)
}

// handleAdminUsers handles GET and POST /admin/users
func handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		deps := orchestrators.UserAdminDeps{UserStore: stores.UserStore, GenerateID: generateID}

		switch formAction(r) {
		case "create":
			err := orchestrators.ExecuteCreateUser(ctx, orchestrators.CreateUserInput{
				Username: r.FormValue("username"),
				Password: r.FormValue("password"),
				Role:     r.FormValue("role"),
			}, deps)
			switch {
			case errors.Is(err, orchestrators.ErrUserMissingFields):
				flash(r, "danger", "userMissingFields")
			case errors.Is(err, orchestrators.ErrUserExists):
				flash(r, "danger", "userExists")
			case errors.Is(err, domainUser.ErrPasswordTooShort):
				flash(r, "danger", "passwordTooShort")
			case err != nil:
				internalError(w, err)
				return
			default:
				flash(r, "success", "userCreated")
			}
		case "update":
			if err := orchestrators.ExecuteUpdateUserRole(ctx, r.FormValue("userId"), r.FormValue("role"), deps); err != nil {
				internalError(w, err)
				return
			}
			flash(r, "success", "userUpdated")
		case "delete":
			if err := orchestrators.ExecuteDeleteUser(ctx, r.FormValue("userId"), deps); err != nil {
				internalError(w, err)
				return
			}
			flash(r, "success", "userDeleted")
		}
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	users, err := stores.UserStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin/users.html", map[string]any{"Users": users})
}

// handleAdminMenu handles GET and POST /admin/menu
func handleAdminMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		deps := orchestrators.CatalogDeps{MenuStore: stores.MenuStore, GenerateID: generateID}

		var err error
		matched := true
		switch formAction(r) {
		case "create":
			err = orchestrators.ExecuteSaveMenuItem(ctx, menuItemInput(r, ""), deps)
		case "update":
			err = orchestrators.ExecuteSaveMenuItem(ctx, menuItemInput(r, r.FormValue("item_id")), deps)
		case "delete":
			err = orchestrators.ExecuteDeleteMenuItem(ctx, r.FormValue("item_id"), deps)
		default:
			matched = false
		}
		if err != nil {
			internalError(w, err)
			return
		}
		if matched {
			flash(r, "success", "menuUpdated")
		}
		http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
		return
	}

	menu, err := stores.MenuStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin/menu.html", map[string]any{"Menu": menu})
}

func menuItemInput(r *http.Request, id string) orchestrators.MenuItemInput {
	return orchestrators.MenuItemInput{
		ID:            id,
		TitleRU:       strings.TrimSpace(r.FormValue("title_ru")),
		TitleKK:       strings.TrimSpace(r.FormValue("title_kk")),
		DescriptionRU: strings.TrimSpace(r.FormValue("description_ru")),
		DescriptionKK: strings.TrimSpace(r.FormValue("description_kk")),
		Price:         formInt(r.FormValue("price")),
		Available:     r.FormValue("available") == "on",
	}
}

// handleAdminPrograms handles GET and POST /admin/programs
func handleAdminPrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		deps := orchestrators.CatalogDeps{ProgramStore: stores.ProgramStore, GenerateID: generateID}

		var err error
		matched := true
		switch formAction(r) {
		case "create":
			err = orchestrators.ExecuteSaveProgram(ctx, programInput(r, ""), deps)
		case "update":
			err = orchestrators.ExecuteSaveProgram(ctx, programInput(r, r.FormValue("program_id")), deps)
		case "delete":
			err = orchestrators.ExecuteDeleteProgram(ctx, r.FormValue("program_id"), deps)
		default:
			matched = false
		}
		if err != nil {
			internalError(w, err)
			return
		}
		if matched {
			flash(r, "success", "programUpdated")
		}
		http.Redirect(w, r, "/admin/programs", http.StatusSeeOther)
		return
	}

	programs, err := stores.ProgramStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin/programs.html", map[string]any{"Programs": programs})
}

func programInput(r *http.Request, id string) orchestrators.ProgramInput {
	return orchestrators.ProgramInput{
		ID:            id,
		TitleRU:       strings.TrimSpace(r.FormValue("title_ru")),
		TitleKK:       strings.TrimSpace(r.FormValue("title_kk")),
		DescriptionRU: strings.TrimSpace(r.FormValue("description_ru")),
		DescriptionKK: strings.TrimSpace(r.FormValue("description_kk")),
		Price:         formInt(r.FormValue("price")),
		Available:     r.FormValue("available") == "on",
		CostumesRaw:   r.FormValue("costumes"),
	}
}

// handleAdminBanners handles GET and POST /admin/banners
func handleAdminBanners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		deps := orchestrators.BannerAdminDeps{BannerStore: stores.BannerStore, GenerateID: generateID}

		var err error
		matched := true
		switch formAction(r) {
		case "create":
			err = orchestrators.ExecuteSaveBanner(ctx, bannerInput(r, ""), deps)
		case "update":
			err = orchestrators.ExecuteSaveBanner(ctx, bannerInput(r, r.FormValue("banner_id")), deps)
		case "delete":
			err = orchestrators.ExecuteDeleteBanner(ctx, r.FormValue("banner_id"), deps)
		default:
			matched = false
		}
		if err != nil {
			internalError(w, err)
			return
		}
		if matched {
			flash(r, "success", "bannersUpdated")
		}
		http.Redirect(w, r, "/admin/banners", http.StatusSeeOther)
		return
	}

	banners, err := stores.BannerStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	programs, err := stores.ProgramStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	menu, err := stores.MenuStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin/banners.html", map[string]any{
		"Banners":  banners,
		"Programs": programs,
		"Menu":     menu,
	})
}

func bannerInput(r *http.Request, id string) orchestrators.BannerInput {
	return orchestrators.BannerInput{
		ID:            id,
		Type:          r.FormValue("type"),
		TitleRU:       strings.TrimSpace(r.FormValue("title_ru")),
		TitleKK:       strings.TrimSpace(r.FormValue("title_kk")),
		DescriptionRU: strings.TrimSpace(r.FormValue("description_ru")),
		DescriptionKK: strings.TrimSpace(r.FormValue("description_kk")),
		ProgramID:     r.FormValue("program_id"),
		CTALabelRU:    strings.TrimSpace(r.FormValue("cta_ru")),
		CTALabelKK:    strings.TrimSpace(r.FormValue("cta_kk")),
		MenuItemID:    r.FormValue("menu_item_id"),
	}
}

// handleAdminSettings handles GET and POST /admin/settings
func handleAdminSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, err := stores.SettingsStore.Get(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		current.OwnerAuthorized = r.FormValue("ownerAuthorized") == "on"
		current.CafeNumber = strings.TrimSpace(r.FormValue("cafeNumber"))
		current.CashierNumber = strings.TrimSpace(r.FormValue("cashierNumber"))
		if err := stores.SettingsStore.Save(ctx, current); err != nil {
			internalError(w, err)
			return
		}
		flash(r, "success", "settingsUpdated")
		http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
		return
	}

	renderTemplate(w, r, "admin/settings.html", map[string]any{"Settings": current})
}

// handleAdminMaintenance handles GET and POST /admin/maintenance
func handleAdminMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, err := stores.SettingsStore.Get(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		current.Maintenance = r.FormValue("maintenance") == "on"
		if err := stores.SettingsStore.Save(ctx, current); err != nil {
			internalError(w, err)
			return
		}
		flash(r, "success", "maintenanceUpdated")
		http.Redirect(w, r, "/admin/maintenance", http.StatusSeeOther)
		return
	}

	renderTemplate(w, r, "admin/maintenance.html", map[string]any{"Settings": current})
}
