package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(cors.Handler(h.corsOptions()))

	router.Get("/", h.root)
	router.Get("/version", h.getServerVersion)

	router.Get(apiDocsPath, redirectToAPIDocs)
	router.Get(apiDocsPath+"/doc.json", h.apiDocument)
	router.Get(apiDocsPath+"/*", apiDocsUI())

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/github", h.githubLogin)
		r.Get("/github/callback", h.githubCallback)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.Get("/logout", h.logout)
		})
	})

	router.Route("/books", func(r chi.Router) {
		r.Get("/", h.listBooks)
		r.Get("/{id}", h.getBook)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createBook)
			r.Put("/{id}", h.updateBook)
			r.With(h.restrictTo(models.RoleAdmin)).Delete("/{id}", h.deleteBook)
		})
	})

	router.Route("/authors", func(r chi.Router) {
		r.Get("/", h.listAuthors)
		r.Get("/{id}", h.getAuthor)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createAuthor)
			r.Put("/{id}", h.updateAuthor)
			r.With(h.restrictTo(models.RoleAdmin)).Delete("/{id}", h.deleteAuthor)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
