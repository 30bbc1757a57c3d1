package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordcrm/nordcrm/core"
	"github.com/nordcrm/nordcrm/pkg/logger"
)

// LoginRequest is the POST /login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handle mounts the authentication endpoints. Everything under this router
// is reachable without a token; it lives under the reserved /auth path
// segment so it never collides with a tenant slug.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/login", s.login)
	return r
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.Error(w, core.ErrBadRequest.WithDetail("invalid JSON body"))
		return
	}

	session, err := s.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.Error(w, core.NewHTTPError(http.StatusUnauthorized, "invalid_credentials"))
			return
		}
		s.log.ErrorContext(r.Context(), "login failed", logger.Error(err))
		core.Error(w, core.ErrInternalServerError)
		return
	}

	core.JSON(w, http.StatusOK, session)
}
