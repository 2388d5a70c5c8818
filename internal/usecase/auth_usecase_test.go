package usecase

import (
	"context"
	"testing"

	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/entity"
	"go-hospital-resource-management/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUsecase(t *testing.T) AuthUsecase {
	t.Helper()
	return NewAuthUsecase(newTestDB(t), newTestLogger(), repository.NewUserRepository(), newTestSessions(t))
}

func validRegister() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:             "Jane Smith",
		Username:         "jane@example.com",
		Password:         "supersecret",
		SecurityQuestion: entity.SecurityQuestions[0],
		SecurityAnswer:   "Rex",
	}
}

func TestAuthUsecase_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth := newAuthUsecase(t)

	user, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Username)
	assert.NotZero(t, user.ID)

	res, err := auth.Login(ctx, &dto.LoginRequest{
		Username: "jane@example.com",
		Password: "supersecret",
		Passkey:  entity.ConstantPasskey,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, user.ID, res.User.ID)

	current, err := auth.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", current.Name)
}

func TestAuthUsecase_RegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	auth := newAuthUsecase(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = auth.Register(ctx, validRegister())
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestAuthUsecase_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	auth := newAuthUsecase(t)

	tests := []struct {
		name    string
		mutate  func(*dto.RegisterRequest)
		wantErr error
	}{
		{"missing name", func(r *dto.RegisterRequest) { r.Name = "" }, ErrMissingFields},
		{"missing answer", func(r *dto.RegisterRequest) { r.SecurityAnswer = "" }, ErrMissingFields},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short" }, ErrPasswordTooShort},
		{"not an email", func(r *dto.RegisterRequest) { r.Username = "janeexample.com" }, ErrInvalidEmail},
		{"no domain dot", func(r *dto.RegisterRequest) { r.Username = "jane@example" }, ErrInvalidEmail},
		{"unknown question", func(r *dto.RegisterRequest) { r.SecurityQuestion = "Favorite color?" }, ErrInvalidSecurityQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(req)
			_, err := auth.Register(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthUsecase_LoginFailures(t *testing.T) {
	ctx := context.Background()
	auth := newAuthUsecase(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Username: "jane@example.com", Password: "wrongpassword", Passkey: entity.ConstantPasskey}},
		{"wrong passkey", dto.LoginRequest{Username: "jane@example.com", Password: "supersecret", Passkey: "PASS123"}},
		{"unknown user", dto.LoginRequest{Username: "nobody@example.com", Password: "supersecret", Passkey: entity.ConstantPasskey}},
		{"malformed username", dto.LoginRequest{Username: "not-an-email", Password: "supersecret", Passkey: entity.ConstantPasskey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(ctx, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions(t)
	auth := NewAuthUsecase(newTestDB(t), newTestLogger(), repository.NewUserRepository(), sessions)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	res, err := auth.Login(ctx, &dto.LoginRequest{
		Username: "jane@example.com",
		Password: "supersecret",
		Passkey:  entity.ConstantPasskey,
	})
	require.NoError(t, err)

	userID, err := sessions.Get(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)

	require.NoError(t, auth.Logout(ctx, res.SessionID))

	userID, err = sessions.Get(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Zero(t, userID)
}

func TestAuthUsecase_GetSecurityQuestion(t *testing.T) {
	ctx := context.Background()
	auth := newAuthUsecase(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	q, err := auth.GetSecurityQuestion(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.SecurityQuestions[0], q.SecurityQuestion)

	_, err = auth.GetSecurityQuestion(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthUsecase_ResetPassword(t *testing.T) {
	ctx := context.Background()
	auth := newAuthUsecase(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	// Answer comparison is case-insensitive.
	err = auth.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Username:       "jane@example.com",
		SecurityAnswer: "rex",
		NewPassword:    "newpassword1",
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &dto.LoginRequest{
		Username: "jane@example.com",
		Password: "supersecret",
		Passkey:  entity.ConstantPasskey,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, &dto.LoginRequest{
		Username: "jane@example.com",
		Password: "newpassword1",
		Passkey:  entity.ConstantPasskey,
	})
	assert.NoError(t, err)
}

func TestAuthUsecase_ResetPasswordFailures(t *testing.T) {
	ctx := context.Background()
	auth := newAuthUsecase(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	err = auth.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Username:       "jane@example.com",
		SecurityAnswer: "rex",
		NewPassword:    "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = auth.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Username:       "nobody@example.com",
		SecurityAnswer: "rex",
		NewPassword:    "newpassword1",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = auth.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Username:       "jane@example.com",
		SecurityAnswer: "wrong",
		NewPassword:    "newpassword1",
	})
	assert.ErrorIs(t, err, ErrIncorrectSecurityAnswer)

	// The original password still works after failed attempts.
	_, err = auth.Login(ctx, &dto.LoginRequest{
		Username: "jane@example.com",
		Password: "supersecret",
		Passkey:  entity.ConstantPasskey,
	})
	assert.NoError(t, err)
}
