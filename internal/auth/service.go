package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrorInvalidCredentials se devuelve igual para usuario inexistente y
// password incorrecta: no le regalamos a un atacante cuál de las dos fue.
var ErrorInvalidCredentials = errors.New("invalid credentials")

// UserRepositoryAPI es lo que el service necesita para resolver usuarios.
type UserRepositoryAPI interface {
	FindByUsername(username string) (User, bool)
}

// TokenProviderAPI emite tokens; la verificación la usa el middleware.
type TokenProviderAPI interface {
	GenerateToken(username string) (string, error)
}

// Service resuelve el login: credenciales -> bearer token.
type Service struct {
	users  UserRepositoryAPI
	tokens TokenProviderAPI
}

// NewService crea un service de autenticación.
func NewService(users UserRepositoryAPI, tokens TokenProviderAPI) *Service {
	return &Service{users: users, tokens: tokens}
}

// Authenticate compara la password contra el hash bcrypt y, si matchea,
// emite un token firmado para el usuario.
func (service *Service) Authenticate(username, password string) (string, error) {
	user, found := service.users.FindByUsername(username)
	if !found {
		return "", ErrorInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrorInvalidCredentials
	}
	return service.tokens.GenerateToken(user.Username)
}
