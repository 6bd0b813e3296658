package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

var errUnexpectedSigning = fmt.Errorf("unexpected token signing method")

// AuthConfig carries the admin credentials and the JWT signing secret.
type AuthConfig struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	JWTSecret string `json:"jwt_secret"`
}

type authenticator struct {
	config AuthConfig
}

func (a *authenticator) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.config.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.config.Password)) == 1

	return userOK && passOK
}

func (a *authenticator) issueToken(username string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(a.config.JWTSecret))
}

func (a *authenticator) verifyToken(raw string) error {
	_, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", errUnexpectedSigning, token.Header["alg"])
		}

		return []byte(a.config.JWTSecret), nil
	})

	return err
}

// requireAuth guards the admin endpoints with a bearer JWT.
func (a *authenticator) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		if err := a.verifyToken(raw); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r)
	}
}
