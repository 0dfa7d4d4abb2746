package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"stockroom/internal/store"
	"stockroom/models"
)

// userValidator implements [UserValidator]. It owns a go-playground
// validator instance for email syntax and a user repository for the
// registration uniqueness lookup.
type userValidator struct {
	users    store.UserRepository
	validate *validator.Validate
}

// NewUserValidator constructs a [UserValidator] over the given repository.
func NewUserValidator(users store.UserRepository) UserValidator {
	return &userValidator{
		users:    users,
		validate: validator.New(),
	}
}

// NormalizeEmail lower-cases and trims an email. Applied before every
// storage write and lookup so that case and whitespace never split accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegister runs all registration checks without short-circuiting,
// so one response carries every violation. Checks on the same field
// overwrite earlier ones: a taken email replaces the syntax message, and a
// missing confirmation replaces the mismatch message.
func (v *userValidator) ValidateRegister(ctx context.Context, request models.RegisterRequest) (Result, error) {
	violations := make(map[string]string)

	email := NormalizeEmail(request.Email)
	switch {
	case email == "":
		violations[FieldEmail] = MsgEmailRequired
	case v.validate.Var(email, "email") != nil:
		violations[FieldEmail] = MsgEmailInvalid
	default:
		if _, err := v.users.FindIDByEmail(ctx, email); err == nil {
			violations[FieldEmail] = MsgEmailInUse
		} else if !errors.Is(err, store.ErrUserNotFound) {
			return Result{}, err
		}
	}

	if request.Password == "" {
		violations[FieldPassword] = MsgPasswordRequired
	}
	if request.Password != request.Password2 {
		violations[FieldPassword2] = MsgPasswordsMismatch
	}
	if request.Password2 == "" {
		violations[FieldPassword2] = MsgConfirmRequired
	}

	return Result{Errors: violations}, nil
}

// ValidateLogin checks presence and email syntax.
func (v *userValidator) ValidateLogin(request models.LoginRequest) Result {
	violations := make(map[string]string)

	email := NormalizeEmail(request.Email)
	switch {
	case email == "":
		violations[FieldEmail] = MsgEmailRequired
	case v.validate.Var(email, "email") != nil:
		violations[FieldEmail] = MsgEmailInvalid
	}

	if request.Password == "" {
		violations[FieldPassword] = MsgPasswordRequired
	}

	return Result{Errors: violations}
}
