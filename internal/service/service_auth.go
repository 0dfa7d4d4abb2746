package service

import (
	"context"
	"errors"
	"fmt"

	"stockroom/internal/crypto"
	"stockroom/internal/logger"
	"stockroom/internal/session"
	"stockroom/internal/store"
	"stockroom/internal/validators"
	"stockroom/models"
)

// authService is the concrete implementation of [AuthService]. It owns
// account creation and login over a UserRepository, hashing passwords
// through the PasswordStore and issuing session tokens via the Authority.
type authService struct {
	userRepository store.UserRepository
	authority      session.Authority
	passwords      crypto.PasswordStore
	validator      validators.UserValidator
	logger         *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// collaborators. The returned service is safe for concurrent use; all state
// is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	authority session.Authority,
	passwords crypto.PasswordStore,
	validator validators.UserValidator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		authority:      authority,
		passwords:      passwords,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Input violations are collected into a single [ValidationError]; a taken
// email surfaces there, not as a storage error, unless a concurrent
// registration slips between the uniqueness check and the insert. The second
// return value is the session token for the new account.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, string, error) {
	log := logger.FromContext(ctx)

	result, err := a.validator.ValidateRegister(ctx, request)
	if err != nil {
		log.Err(err).Msg("registration validation failed against storage")
		return models.RegisterResponse{}, "", fmt.Errorf("registration validation failed: %w", err)
	}
	if !result.IsValid() {
		return models.RegisterResponse{}, "", &ValidationError{Fields: result.Errors}
	}

	record, err := a.passwords.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.RegisterResponse{}, "", fmt.Errorf("password hashing failed: %w", err)
	}

	email := validators.NormalizeEmail(request.Email)
	created, err := a.userRepository.CreateUser(ctx, models.User{Email: email, Password: record})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.RegisterResponse{}, "", &ValidationError{
				Fields: map[string]string{validators.FieldEmail: validators.MsgEmailInUse},
			}
		}

		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.RegisterResponse{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.RegisterResponse{
		ExecResult: created,
		Email:      email,
	}, a.authority.Issue(created.InsertID), nil
}

// Login authenticates an existing account.
//
// Returns [ErrEmailNotFound] when no account matches, and
// [ErrIncorrectPassword] when the password does not verify against the
// stored record. The second return value is the session token.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, string, error) {
	log := logger.FromContext(ctx)

	if result := a.validator.ValidateLogin(request); !result.IsValid() {
		return models.LoginResponse{}, "", &ValidationError{Fields: result.Errors}
	}

	email := validators.NormalizeEmail(request.Email)
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.LoginResponse{}, "", ErrEmailNotFound
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.LoginResponse{}, "", fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.passwords.VerifyPassword(request.Password, user.Password)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("stored password record is unusable")
		return models.LoginResponse{}, "", fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return models.LoginResponse{}, "", ErrIncorrectPassword
	}

	return models.LoginResponse{Email: user.Email}, a.authority.Issue(user.UserID), nil
}
