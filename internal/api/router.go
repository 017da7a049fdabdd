package api

import (
	"database/sql"
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(st *store.Store, database *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: database, JWTSecret: jwtSecret}
	productsHandler := &ProductsHandler{Store: st, DB: database}
	transactionsHandler := &TransactionsHandler{Store: st}
	suppliersHandler := &SuppliersHandler{Store: st}
	categoriesHandler := &CategoriesHandler{Store: st}
	dashboardHandler := &DashboardHandler{Store: st}
	usersHandler := &UsersHandler{DB: database}

	authMW := AuthMiddleware(jwtSecret, database)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireClerk := RequireRole(model.RoleClerk)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Products: read (all roles), write (clerk+).
	mux.Handle("GET /api/products", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("GET /api/products/lookup", authMW(http.HandlerFunc(productsHandler.Lookup)))
	mux.Handle("POST /api/products", authMW(requireClerk(http.HandlerFunc(productsHandler.Create))))
	mux.Handle("GET /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Get)))
	mux.Handle("PUT /api/products/{id}", authMW(requireClerk(http.HandlerFunc(productsHandler.Update))))
	mux.Handle("DELETE /api/products/{id}", authMW(requireClerk(http.HandlerFunc(productsHandler.Delete))))
	mux.Handle("PUT /api/products/{id}/image", authMW(requireClerk(http.HandlerFunc(productsHandler.UploadImage))))
	mux.Handle("GET /api/products/{id}/image", authMW(http.HandlerFunc(productsHandler.GetImage)))

	// Transactions: append-only log (all roles).
	mux.Handle("GET /api/transactions", authMW(http.HandlerFunc(transactionsHandler.List)))
	mux.Handle("POST /api/transactions", authMW(http.HandlerFunc(transactionsHandler.Create)))

	// Reference and derived data.
	mux.Handle("GET /api/suppliers", authMW(http.HandlerFunc(suppliersHandler.List)))
	mux.Handle("GET /api/categories", authMW(http.HandlerFunc(categoriesHandler.List)))
	mux.Handle("GET /api/dashboard", authMW(http.HandlerFunc(dashboardHandler.Get)))
	mux.Handle("GET /api/status", authMW(http.HandlerFunc(dashboardHandler.Status)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	return mux
}
