package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router of the JSON API. Everything below /api except
// registration, login, logout, the current-user lookup and the version
// requires a live session.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGzipRequests)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/auth/logout", h.logout)
			r.Get("/auth/me", h.me)
			r.Get("/version", h.getServerVersion)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/income", func(r chi.Router) {
				r.Get("/", h.listIncomes)
				r.Post("/", h.addIncome)
				r.Put("/{id}", h.updateIncome)
				r.Patch("/{id}/lock", h.lockIncome)
			})

			r.Route("/expense", func(r chi.Router) {
				r.Get("/", h.listExpenses)
				r.Post("/", h.addExpense)
				r.Delete("/{id}", h.deleteExpense)
			})

			r.Route("/category", func(r chi.Router) {
				r.Get("/", h.listCategories)
				r.Post("/", h.addCategory)
			})

			r.Get("/summary", h.summary)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

// withCORS allows the dashboard origins to call the API with credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
