package services

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"strings"
	"time"
	"unicode/utf8"
	"travelstar/internal/models/db_models"
	"travelstar/internal/models/request_models"
	"travelstar/internal/repositories"
	"travelstar/pkg/utils"
)

// MaxUsernameLength matches the size of the username column.
const MaxUsernameLength = 64

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	// Login returns a session token for the user.
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	// CurrentUser resolves a session token to its username.
	CurrentUser(token string) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	sessions    *utils.SessionSigner
	log         *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, sessions *utils.SessionSigner, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		sessions:    sessions,
		log:         log,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		return fmt.Errorf("%w: Please fill all fields", utils.ErrInvalidInput)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return fmt.Errorf("%w: Username must be at most %d characters", utils.ErrInvalidInput, MaxUsernameLength)
	}
	if request.ConfirmPassword != "" && request.ConfirmPassword != request.Password {
		return utils.ErrPasswordMismatch
	}

	existingAccount, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		a.log.Error("account lookup failed", zap.String("username", username), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrDuplicateUser
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: Password is too long", utils.ErrInvalidInput)
		}
		return fmt.Errorf("hash password: %w", err)
	}

	newAccount := &db_models.Account{
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := a.accountRepo.Create(ctx, newAccount); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return utils.ErrDuplicateUser
		}
		a.log.Error("account insert failed", zap.String("username", username), zap.Error(err))
		return utils.ErrDatabaseError
	}

	a.log.Info("account registered", zap.String("username", username))
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		return "", fmt.Errorf("%w: Please enter username and password", utils.ErrInvalidInput)
	}

	account, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		a.log.Error("account lookup failed", zap.String("username", username), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.sessions.CreateToken(account.Username)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}

	return token, nil
}

func (a *AccountService) CurrentUser(token string) (string, error) {
	if token == "" {
		return "", utils.ErrUnauthorized
	}
	claims, err := a.sessions.ValidateToken(token)
	if err != nil {
		return "", utils.ErrUnauthorized
	}
	return claims.Username, nil
}
