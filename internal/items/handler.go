package items

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lelo88/items-api-golang/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar storage.
type ServiceAPI interface {
	Create(ctx context.Context, item *Item) (Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, item *Item) (Item, error)
	Delete(ctx context.Context, id string) error
	Compare(ctx context.Context, id1, id2 string) (ComparisonResult, error)
}

// Handler HTTP para items.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de items.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// fail traduce errores de dominio a status codes.
// No filtramos detalles internos en el default.
func fail(writer http.ResponseWriter, request *http.Request, err error) {
	switch {
	case errors.Is(err, ErrorInvalidInput):
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, ErrorNotFound):
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", err.Error())
	default:
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}

// Create maneja POST /items.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	// Decodificamos a puntero: un body "null" llega como item nil
	// y lo rechaza el service, no el decoder.
	var item *Item
	if err := json.NewDecoder(request.Body).Decode(&item); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	created, err := handler.service.Create(request.Context(), item)
	if err != nil {
		fail(writer, request, err)
		return
	}

	httpx.OK(writer, request, http.StatusCreated, created)
}

// GetByID maneja GET /items/{id}.
// No exigimos formato UUID: el dominio solo pide un id no vacío y el
// storage json acepta cualquier id que haya generado o recibido.
func (handler *Handler) GetByID(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		fail(writer, request, err)
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// Update maneja PUT /items. El payload trae el id y pisa el registro
// completo (semántica overwrite, sin merge de campos).
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	var item *Item
	if err := json.NewDecoder(request.Body).Decode(&item); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	updated, err := handler.service.Update(request.Context(), item)
	if err != nil {
		fail(writer, request, err)
		return
	}

	httpx.OK(writer, request, http.StatusOK, updated)
}

// Delete maneja DELETE /items/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		fail(writer, request, err)
		return
	}

	// 204 No Content: respuesta vacía.
	writer.WriteHeader(http.StatusNoContent)
}

// Compare maneja GET /items/compare?id1=...&id2=...
func (handler *Handler) Compare(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	id1 := query.Get("id1")
	id2 := query.Get("id2")

	result, err := handler.service.Compare(request.Context(), id1, id2)
	if err != nil {
		fail(writer, request, err)
		return
	}

	httpx.OK(writer, request, http.StatusOK, result)
}
