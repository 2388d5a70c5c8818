package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/delivery/http/middleware"
	"go-hospital-resource-management/internal/usecase"
	"go-hospital-resource-management/pkg/response"
	"go-hospital-resource-management/pkg/session"
	"go-hospital-resource-management/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	sessions    *session.Store
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		sessions:    sessions,
	}
}

// Register handles account registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameAlreadyExists):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, usecase.ErrMissingFields),
			errors.Is(err, usecase.ErrPasswordTooShort),
			errors.Is(err, usecase.ErrInvalidEmail),
			errors.Is(err, usecase.ErrInvalidSecurityQuestion):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Account created successfully", user)
}

// Login verifies credentials and opens a session, returned both in the body
// and as a cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    result.SessionID,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, http.StatusOK, "Login successful", result)
}

// Logout destroys the session and expires the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No active session")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), sessionID); err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

// GetCurrentUser returns the account behind the session
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No active session")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "", user)
}

// GetSecurityQuestion returns the stored question driving the reset flow
func (h *AuthHandler) GetSecurityQuestion(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		response.Error(w, http.StatusBadRequest, "username is required", nil)
		return
	}

	question, err := h.authUsecase.GetSecurityQuestion(r.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "", question)
}

// ResetPassword overwrites the password after the security answer check
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.authUsecase.ResetPassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordTooShort):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrIncorrectSecurityAnswer):
			response.Unauthorized(w, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusOK, "Password reset successfully", nil)
}
