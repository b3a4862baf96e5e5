package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/auraflow/auraflow-be/internal/auth"
	"github.com/auraflow/auraflow-be/internal/services"
)

// AuthHandler handles HTTP requests for signup, login, and the current
// user.
type AuthHandler struct {
	service services.UserServiceProvider
	issuer  *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{service: service, issuer: issuer}
}

// CredentialsPayload defines the structure for signup and login
// requests.
type CredentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Email == "" || payload.Password == "" {
		writeError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeError(w, "Email already registered", http.StatusBadRequest)
			return
		}
		if errors.Is(err, services.ErrPasswordTooLong) {
			writeError(w, "Password is too long", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeError(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			writeError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Msg("Failed to authenticate user")
		writeError(w, "Failed to authenticate", http.StatusInternalServerError)
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token")
		writeError(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GetMe retrieves the currently authenticated user from the token.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user from request context")
		writeError(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
