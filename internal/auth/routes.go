package auth

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra las rutas de autenticación en el router.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/auth", func(route chi.Router) {
		route.Post("/login", handler.Login)
	})
}
