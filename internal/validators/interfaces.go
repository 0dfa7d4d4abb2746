// SPDX-License-Identifier: Apache-2.0

// Package validators enforces the input rules for user-facing requests and
// reports violations as field→message maps suitable for direct rendering.
package validators

import (
	"context"

	"stockroom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// UserValidator validates registration and login input.
type UserValidator interface {

	// ValidateRegister runs every registration check and collects all
	// violations. The returned error is reserved for storage failures
	// during the email uniqueness lookup.
	ValidateRegister(ctx context.Context, request models.RegisterRequest) (Result, error)

	// ValidateLogin checks presence and syntax only; it never touches
	// storage.
	ValidateLogin(request models.LoginRequest) Result
}

// Result collects validation violations keyed by input field.
type Result struct {
	Errors map[string]string
}

// IsValid reports whether no check produced a violation.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}
