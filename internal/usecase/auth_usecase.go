package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"

	"go-hospital-resource-management/internal/converter"
	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/entity"
	"go-hospital-resource-management/internal/domain/repository"
	"go-hospital-resource-management/pkg/session"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMissingFields           = errors.New("all fields are required")
	ErrPasswordTooShort        = errors.New("password must be at least 8 characters long")
	ErrInvalidEmail            = errors.New("username must be a valid email address")
	ErrInvalidSecurityQuestion = errors.New("security question must be one of the predefined questions")
	ErrUsernameAlreadyExists   = errors.New("username already exists")
	ErrInvalidCredentials      = errors.New("invalid username, password, or passkey")
	ErrUserNotFound            = errors.New("user not found")
	ErrIncorrectSecurityAnswer = errors.New("incorrect security answer")
)

// emailPattern mirrors the registration rule: local part, @, domain with a dot.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
	GetSecurityQuestion(ctx context.Context, username string) (*dto.SecurityQuestionResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	sessions *session.Store
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessions *session.Store,
) AuthUsecase {
	return &authUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates an account. Every check runs before the store is touched;
// the account stores the SHA-256 digest of the password and the shared
// passkey constant.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Name == "" || req.Username == "" || req.Password == "" ||
		req.SecurityQuestion == "" || req.SecurityAnswer == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if !emailPattern.MatchString(req.Username) {
		return nil, ErrInvalidEmail
	}
	if !entity.IsValidSecurityQuestion(req.SecurityQuestion) {
		return nil, ErrInvalidSecurityQuestion
	}

	user := &entity.User{
		Name:             req.Name,
		Username:         req.Username,
		PasswordHash:     hashPassword(req.Password),
		Passkey:          entity.ConstantPasskey,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Login verifies username, password digest, and passkey, then opens a session.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// Email pre-check keeps malformed usernames away from the store.
	if !emailPattern.MatchString(req.Username) {
		return nil, ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		if isNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}

	if user.PasswordHash != hashPassword(req.Password) || user.Passkey != req.Passkey {
		return nil, ErrInvalidCredentials
	}

	sessionID, err := u.sessions.Create(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		SessionID: sessionID,
		ExpiresIn: int64(u.sessions.TTL().Seconds()),
		User:      converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Destroy(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to destroy session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		if isNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) GetSecurityQuestion(ctx context.Context, username string) (*dto.SecurityQuestionResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), username)
	if err != nil {
		if isNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}

	return &dto.SecurityQuestionResponse{
		Username:         user.Username,
		SecurityQuestion: user.SecurityQuestion,
	}, nil
}

// ResetPassword overwrites the password digest once the stored security
// answer matches case-insensitively. The length check runs before the store
// is consulted.
func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		if isNotFoundError(err) {
			return ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by username: %+v", err)
		return err
	}

	if !strings.EqualFold(user.SecurityAnswer, req.SecurityAnswer) {
		return ErrIncorrectSecurityAnswer
	}

	if err := u.userRepo.UpdatePasswordHash(u.db.WithContext(ctx), req.Username, hashPassword(req.NewPassword)); err != nil {
		u.log.Warnf("Failed to update password hash: %+v", err)
		return err
	}

	return nil
}

// hashPassword returns the hex SHA-256 digest stored and compared at login.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
