package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

// ServiceAPI define lo que el handler necesita del service.
type ServiceAPI interface {
	Authenticate(username, password string) (string, error)
}

// Handler HTTP para autenticación.
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de auth.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login maneja POST /auth/login. Es la única ruta pública de la API.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var credentials loginRequest
	if err := json.NewDecoder(request.Body).Decode(&credentials); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	token, err := handler.service.Authenticate(credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, ErrorInvalidCredentials) {
			httpx.Fail(writer, request, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
			return
		}
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		return
	}

	httpx.OK(writer, request, http.StatusOK, loginResponse{Token: token})
}
