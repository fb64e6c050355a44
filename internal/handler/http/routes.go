package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// roleAdmin is the role required on the user service to administer the
// users of this application.
const roleAdmin = "admin"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Post("/validation", h.validation)
		r.Post("/send-mail", h.sendMail)

		r.Post("/auth/login", h.login)
		r.Post("/auth/password/request-reset", h.requestPasswordReset)
		r.Post("/auth/password/reset", h.resetPassword)
	})

	// api clients
	router.Group(func(r chi.Router) {
		r.Use(h.apiKeyAuth)
		r.Get("/auth-only", h.authOnly)
	})

	// users administering this application on the user service
	router.Group(func(r chi.Router) {
		r.Use(h.userAuth(roleAdmin))
		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
		r.Delete("/users", h.deleteUser)
		r.Delete("/users/force", h.forceDeleteUser)
		r.Post("/users/role", h.addRole)
		r.Delete("/users/role", h.deleteRole)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
