package docs

import "github.com/go-chi/chi/v5"

// RegisterRoutes expone la documentación de la API.
// Son rutas públicas: no pasan por el middleware de auth.
func RegisterRoutes(route chi.Router) {
	route.Get("/docs", SwaggerUIHandler())
	route.Get("/docs/openapi.yaml", OpenAPIHandler())
}
