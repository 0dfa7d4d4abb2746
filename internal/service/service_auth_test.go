// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stockroom/internal/logger"
	"stockroom/internal/mock"
	"stockroom/internal/store"
	"stockroom/internal/validators"
	"stockroom/models"
)

// newTestAuthSvc builds an authService over fresh mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	AuthService,
	*mock.MockUserRepository,
	*mock.MockAuthority,
	*mock.MockPasswordStore,
	*mock.MockUserValidator,
) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	authority := mock.NewMockAuthority(ctrl)
	passwords := mock.NewMockPasswordStore(ctrl)
	validator := mock.NewMockUserValidator(ctrl)

	svc := NewAuthService(users, authority, passwords, validator, logger.Nop())
	return svc, users, authority, passwords, validator
}

func validResult() validators.Result {
	return validators.Result{Errors: map[string]string{}}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, authority, passwords, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.RegisterRequest{Email: "John@Example.com", Password: "secret", Password2: "secret"}

	validator.EXPECT().ValidateRegister(ctx, request).Return(validResult(), nil)
	passwords.EXPECT().HashPassword("secret").Return("hash.salt", nil)
	users.EXPECT().
		CreateUser(ctx, models.User{Email: "john@example.com", Password: "hash.salt"}).
		Return(models.ExecResult{InsertID: 5, AffectedRows: 1}, nil)
	authority.EXPECT().Issue(int64(5)).Return("token-5")

	response, token, err := svc.Register(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "token-5", token)
	assert.Equal(t, int64(5), response.InsertID)
	assert.Equal(t, int64(1), response.AffectedRows)
	assert.Equal(t, "john@example.com", response.Email)
}

func TestAuthService_Register_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.RegisterRequest{}
	fields := map[string]string{
		validators.FieldEmail:     validators.MsgEmailRequired,
		validators.FieldPassword:  validators.MsgPasswordRequired,
		validators.FieldPassword2: validators.MsgConfirmRequired,
	}
	validator.EXPECT().ValidateRegister(ctx, request).Return(validators.Result{Errors: fields}, nil)

	_, _, err := svc.Register(ctx, request)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, fields, validationErr.Fields)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, passwords, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.RegisterRequest{Email: "john@example.com", Password: "secret", Password2: "secret"}

	validator.EXPECT().ValidateRegister(ctx, request).Return(validResult(), nil)
	passwords.EXPECT().HashPassword("secret").Return("hash.salt", nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.ExecResult{}, store.ErrEmailAlreadyExists)

	_, _, err := svc.Register(ctx, request)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, validators.MsgEmailInUse, validationErr.Fields[validators.FieldEmail])
}

func TestAuthService_Register_HashingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, passwords, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.RegisterRequest{Email: "john@example.com", Password: "secret", Password2: "secret"}

	validator.EXPECT().ValidateRegister(ctx, request).Return(validResult(), nil)
	passwords.EXPECT().HashPassword("secret").Return("", errors.New("entropy exhausted"))

	_, _, err := svc.Register(ctx, request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password hashing failed")
}

func TestAuthService_Register_ValidatorStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.RegisterRequest{Email: "john@example.com", Password: "secret", Password2: "secret"}

	validator.EXPECT().ValidateRegister(ctx, request).Return(validators.Result{}, errors.New("db down"))

	_, _, err := svc.Register(ctx, request)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, authority, passwords, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.LoginRequest{Email: " John@Example.com ", Password: "secret"}

	validator.EXPECT().ValidateLogin(request).Return(validResult())
	users.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{UserID: 9, Email: "john@example.com", Password: "hash.salt"}, nil)
	passwords.EXPECT().VerifyPassword("secret", "hash.salt").Return(true, nil)
	authority.EXPECT().Issue(int64(9)).Return("token-9")

	response, token, err := svc.Login(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "token-9", token)
	assert.Equal(t, "john@example.com", response.Email)
}

func TestAuthService_Login_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.LoginRequest{}
	fields := map[string]string{
		validators.FieldEmail:    validators.MsgEmailRequired,
		validators.FieldPassword: validators.MsgPasswordRequired,
	}
	validator.EXPECT().ValidateLogin(request).Return(validators.Result{Errors: fields})

	_, _, err := svc.Login(ctx, request)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, fields, validationErr.Fields)
}

func TestAuthService_Login_EmailNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.LoginRequest{Email: "ghost@example.com", Password: "secret"}

	validator.EXPECT().ValidateLogin(request).Return(validResult())
	users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, _, err := svc.Login(ctx, request)
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestAuthService_Login_IncorrectPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, passwords, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.LoginRequest{Email: "john@example.com", Password: "wrong"}

	validator.EXPECT().ValidateLogin(request).Return(validResult())
	users.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{UserID: 9, Email: "john@example.com", Password: "hash.salt"}, nil)
	passwords.EXPECT().VerifyPassword("wrong", "hash.salt").Return(false, nil)

	_, _, err := svc.Login(ctx, request)
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestAuthService_Login_UnusableStoredRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, passwords, validator := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.LoginRequest{Email: "john@example.com", Password: "secret"}

	validator.EXPECT().ValidateLogin(request).Return(validResult())
	users.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{UserID: 9, Email: "john@example.com", Password: "corrupted"}, nil)
	passwords.EXPECT().VerifyPassword("secret", "corrupted").Return(false, errors.New("malformed password record"))

	_, _, err := svc.Login(ctx, request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password verification failed")
}
