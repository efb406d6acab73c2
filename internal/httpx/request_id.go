package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// El middleware RequestID de chi guarda el id en el contexto y lo propaga
// en el header "X-Request-Id". Preferimos el contexto (fuente de verdad
// dentro del proceso) y caemos al header si no está.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	if id := middleware.GetReqID(request.Context()); id != "" {
		return id
	}
	return request.Header.Get("X-Request-Id")
}
