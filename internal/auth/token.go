package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrorInvalidToken cubre tokens vencidos, mal firmados o malformados.
// El middleware no necesita distinguir el motivo: todos son 401.
var ErrorInvalidToken = errors.New("invalid token")

// Seam para tests: permite congelar el reloj al firmar tokens.
var timeNow = time.Now

// TokenProvider firma y verifica bearer tokens HS256.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenProvider crea un provider con el secreto y TTL configurados.
func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{secret: []byte(secret), ttl: ttl}
}

// GenerateToken emite un token con el username como subject.
func (provider *TokenProvider) GenerateToken(username string) (string, error) {
	now := timeNow()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(provider.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(provider.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateAndGetSubject verifica firma y expiración y devuelve el subject.
func (provider *TokenProvider) ValidateAndGetSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Fijamos el método esperado: aceptar "alg" arbitrario es un agujero clásico.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return provider.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrorInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrorInvalidToken
	}
	return claims.Subject, nil
}
