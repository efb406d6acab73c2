package docs

import (
	"embed"
	"net/http"
)

// El contrato OpenAPI de la API de items y la página de Swagger UI
// viajan embebidos en el binario: no hay archivos externos que desplegar.
//
//go:embed openapi.yaml swagger.html
var content embed.FS

func serveEmbedded(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := content.ReadFile(name)
		if err != nil {
			http.Error(w, "documentation asset missing", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(asset)
	}
}

// OpenAPIHandler sirve el contrato OpenAPI en YAML.
func OpenAPIHandler() http.HandlerFunc {
	return serveEmbedded("openapi.yaml", "application/yaml; charset=utf-8")
}

// SwaggerUIHandler sirve la UI que renderiza ese contrato.
func SwaggerUIHandler() http.HandlerFunc {
	return serveEmbedded("swagger.html", "text/html; charset=utf-8")
}
