package web

import (
	"net/http"

	"junglepark/internal/adapters/http/middleware"
	domainUser "junglepark/internal/domain/user"
)

// adminPermissions maps each role-restricted admin route to the roles allowed
// to use it. Administrators pass every check; the table lists the extra roles.
// Routes absent from the table only require a login.
var adminPermissions = map[string][]string{
	"/admin/users":       {domainUser.RoleAdministrator},
	"/admin/banners":     {domainUser.RoleAdministrator},
	"/admin/settings":    {domainUser.RoleAdministrator},
	"/admin/maintenance": {domainUser.RoleAdministrator},
	"/admin/menu":        {domainUser.RoleAdministrator, domainUser.RoleBarista},
	"/admin/programs":    {domainUser.RoleAdministrator, domainUser.RoleCashier},
}

func registerRoutes(mux *http.ServeMux) {
	// Public site
	mux.HandleFunc("/{$}", handleHome)
	mux.HandleFunc("/menu", handleMenuPage)
	mux.HandleFunc("/programs", handleProgramsPage)
	mux.HandleFunc("/maintenance", handleMaintenancePage)
	mux.HandleFunc("/", handleNotFound)

	// Public submission API
	mux.HandleFunc("POST /api/order", handleAPIOrder)
	mux.HandleFunc("POST /api/program-request", handleAPIProgramRequest)
	mux.HandleFunc("POST /api/banner-signup/{bannerId}", handleAPIBannerSignup)

	// Admin: login is open, everything else requires a session.
	mux.HandleFunc("/admin", handleAdminLogin)
	mux.HandleFunc("/admin/{$}", handleAdminLogin)
	mux.Handle("/admin/logout", middleware.RequireAuth(http.HandlerFunc(handleAdminLogout)))
	mux.Handle("/admin/change-password", middleware.RequireAuth(http.HandlerFunc(handleAdminChangePassword)))
	mux.Handle("/admin/dashboard", middleware.RequireAuth(http.HandlerFunc(handleAdminDashboard)))

	restricted := map[string]http.HandlerFunc{
		"/admin/users":       handleAdminUsers,
		"/admin/menu":        handleAdminMenu,
		"/admin/programs":    handleAdminPrograms,
		"/admin/banners":     handleAdminBanners,
		"/admin/settings":    handleAdminSettings,
		"/admin/maintenance": handleAdminMaintenance,
	}
	for path, handler := range restricted {
		mux.Handle(path, middleware.Chain(handler,
			middleware.RequireRoles(adminPermissions[path]...),
			middleware.RequireAuth,
		))
	}
}
