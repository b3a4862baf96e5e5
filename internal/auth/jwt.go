package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/auraflow/auraflow-be/internal/models"
	"github.com/auraflow/auraflow-be/internal/services"
)

// Claims defines the JWT claims structure. The email is the identity
// claim; resolving it to a live account happens in the middleware, not
// during token validation.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type contextKey string

const userContextKey = contextKey("currentUser")

// TokenIssuer creates and validates signed access tokens. The signing
// key and TTL are fixed at construction; there is no re-initialization
// path.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with the given secret.
// Tokens expire ttl after issuance.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a new JWT for a given user.
func (t *TokenIssuer) Issue(user models.User) (string, error) {
	expirationTime := time.Now().Add(t.ttl)
	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses and verifies a token string. Malformed structure, a
// bad signature, and a past expiry all fail the same way; validity is
// purely cryptographic and temporal.
func (t *TokenIssuer) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Middleware protects routes with bearer-token auth. It validates the
// token and resolves its email claim to a live user, which then rides
// the request context. A token for an account that no longer exists is
// rejected like any other bad token.
func (t *TokenIssuer) Middleware(users services.UserServiceProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				unauthorized(w, "Missing auth token")
				return
			}

			claims, err := t.Validate(tokenStr)
			if err != nil {
				unauthorized(w, "Invalid auth token")
				return
			}

			user, err := users.GetUserByEmail(claims.Email)
			if err != nil {
				if !errors.Is(err, services.ErrNotFound) {
					log.Error().Err(err).Msg("Failed to resolve token user")
				}
				unauthorized(w, "Invalid auth token")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user placed into the
// request context by Middleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

// unauthorized writes the same {"error": ...} envelope the handlers
// use for their failures.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
