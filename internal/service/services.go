// SPDX-License-Identifier: Apache-2.0

// Package service implements the business rules: registration and login,
// and the owner-checked write/read protocol over products, raws and
// purchases.
package service

import (
	"stockroom/internal/crypto"
	"stockroom/internal/logger"
	"stockroom/internal/session"
	"stockroom/internal/store"
	"stockroom/internal/validators"
)

// Services bundles every business service for the composition root.
type Services struct {
	AuthService     AuthService
	ProductService  ProductService
	RawService      RawService
	PurchaseService PurchaseService
}

// NewServices wires the services over the shared repositories, the session
// authority and the password store.
func NewServices(
	storages *store.Storages,
	authority session.Authority,
	passwords crypto.PasswordStore,
	userValidator validators.UserValidator,
	logger *logger.Logger,
) *Services {
	owners := newOwnerResolver(storages.UserRepository, authority)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, authority, passwords, userValidator, logger),
		ProductService:  NewProductService(storages.ProductRepository, owners, logger),
		RawService:      NewRawService(storages.RawRepository, storages.ProductRepository, owners, logger),
		PurchaseService: NewPurchaseService(storages.PurchaseRepository, storages.RawRepository, owners, logger),
	}
}
