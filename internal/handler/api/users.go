// Package api implements the JSON handlers of the /api/v1 resource groups.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/wardrobe/internal/auth"
	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/handler"
	"github.com/dukerupert/wardrobe/internal/middleware"
	"github.com/dukerupert/wardrobe/internal/telemetry"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(email string, roles []string) (auth.Token, error)
}

// UserHandler handles /api/v1/users and login.
type UserHandler struct {
	users  domain.UserService
	tokens TokenIssuer
	logger *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users domain.UserService, tokens TokenIssuer, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	handler.OK(w, r, "Retrieved list of users", map[string]any{"users": out})
}

// Get handles GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), *domain.MustPrincipal(r.Context()), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Retrieved user by id: %d", id), map[string]any{
		"user": newUserResponse(user),
	})
}

// Register handles POST /api/v1/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, err := h.users.Register(r.Context(), domain.RegisterUserParams{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DOB:         req.dob(),
		Address:     req.Address.toDomain(),
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.Signups.WithLabelValues().Inc()
	}
	middleware.GetLogger(r.Context(), h.logger).Info("user registered", "user_id", user.ID)

	handler.Created(w, r, "Registered new user", map[string]any{"is_registered": true})
}

// Update handles PUT /api/v1/users
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.ID < 1 {
		handler.ErrorResponse(w, r, domain.NewValidationError("user.update", "id", "Cannot be empty"))
		return
	}

	_, err := h.users.UpdateUser(r.Context(), *domain.MustPrincipal(r.Context()), domain.UpdateUserParams{
		ID:          req.ID,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DOB:         req.dob(),
		Address:     req.Address.toDomain(),
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, "Updated user", map[string]any{"is_updated": true})
}

// Delete handles DELETE /api/v1/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.users.DeleteUser(r.Context(), *domain.MustPrincipal(r.Context()), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Deleted user with id: %d", id), map[string]any{"is_deleted": true})
}

// Login handles POST /api/v1/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.IsCode(err, domain.EUNAUTHORIZED) && telemetry.Business != nil {
			telemetry.Business.LoginFailed.WithLabelValues().Inc()
		}
		handler.ErrorResponse(w, r, err)
		return
	}

	token, err := h.tokens.Issue(user.Email, user.RoleNames())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.Logins.WithLabelValues().Inc()
	}

	handler.OK(w, r, "Logged in", map[string]any{
		"access_token": token.AccessToken,
		"token_type":   "Bearer",
		"expires_at":   token.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
