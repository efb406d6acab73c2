package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

// Pinger es lo que el readiness check necesita del storage activo,
// sea el directorio de archivos JSON o el pool de Postgres.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula endpoints de health.
type Handler struct {
	storage Pinger
}

// New crea un handler de health sobre el storage activo.
func New(storage Pinger) *Handler {
	return &Handler{storage: storage}
}

// Health indica si el proceso está vivo. No toca el storage: eso es /ready.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready indica si el servicio puede atender requests: el storage responde.
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if handler.storage == nil {
		httpx.Fail(w, r, http.StatusServiceUnavailable, "not_ready", "storage not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := handler.storage.Ping(ctx); err != nil {
		httpx.Fail(w, r, http.StatusServiceUnavailable, "not_ready", "storage is not reachable")
		return
	}

	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ready",
	})
}
