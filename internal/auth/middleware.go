package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

// TokenVerifierAPI es lo que el middleware necesita del provider.
type TokenVerifierAPI interface {
	ValidateAndGetSubject(token string) (string, error)
}

type contextKey string

// principalKey guarda el subject autenticado en el contexto del request.
const principalKey contextKey = "auth.principal"

// PrincipalFrom devuelve el usuario autenticado del contexto, si hay.
func PrincipalFrom(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(principalKey).(string)
	return principal, ok
}

// RequireToken exige un header "Authorization: Bearer <token>" válido.
// Corre antes que cualquier handler de items: el dominio nunca ve
// requests sin autenticar ni sabe qué es un token.
func RequireToken(verifier TokenVerifierAPI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			header := request.Header.Get("Authorization")
			token, isBearer := strings.CutPrefix(header, "Bearer ")
			if !isBearer || strings.TrimSpace(token) == "" {
				httpx.Fail(writer, request, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			principal, err := verifier.ValidateAndGetSubject(token)
			if err != nil {
				httpx.Fail(writer, request, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			ctx := context.WithValue(request.Context(), principalKey, principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
