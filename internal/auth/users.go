package auth

import "golang.org/x/crypto/bcrypt"

// User es una credencial del servicio. Solo se usa para el login:
// ninguna noción de identidad llega al dominio de items.
type User struct {
	Username     string
	PasswordHash []byte
	Role         string
}

// InMemoryUserRepository guarda usuarios en un mapa.
// El mapa se arma en el constructor y después solo se lee,
// así que no hace falta lock.
type InMemoryUserRepository struct {
	users map[string]User
}

// NewInMemoryUserRepository siembra el repositorio con el usuario admin.
// El hash se calcula acá para no tener hashes hardcodeados en el código.
func NewInMemoryUserRepository(adminUsername, adminPassword string) (*InMemoryUserRepository, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &InMemoryUserRepository{
		users: map[string]User{
			adminUsername: {
				Username:     adminUsername,
				PasswordHash: hash,
				Role:         "admin",
			},
		},
	}, nil
}

// FindByUsername devuelve el usuario y found=false si no existe.
func (repository *InMemoryUserRepository) FindByUsername(username string) (User, bool) {
	user, found := repository.users[username]
	return user, found
}
