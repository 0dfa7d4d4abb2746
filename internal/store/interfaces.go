package store

import (
	"context"

	"stockroom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and resolves user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the driver-level result
	// carrying the assigned user id.
	CreateUser(ctx context.Context, user models.User) (models.ExecResult, error)

	// FindUserByEmail returns the full user row for a normalized email, or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindIDByEmail resolves the owner identifier for a normalized email, or
	// ErrUserNotFound.
	FindIDByEmail(ctx context.Context, email string) (int64, error)
}

// ProductRepository persists products and answers existence checks on them.
type ProductRepository interface {
	// ProductItemExists reports whether any product carries the business
	// key itemID, regardless of owner.
	ProductItemExists(ctx context.Context, itemID int64) (bool, error)

	// ProductExists reports whether a product row with the given primary
	// key exists.
	ProductExists(ctx context.Context, productID int64) (bool, error)

	CreateProduct(ctx context.Context, product models.Product) (models.ExecResult, error)
	FindProductsByOwner(ctx context.Context, userID int64) ([]models.Product, error)
}

// RawRepository persists raw materials, answers existence checks, and
// maintains the optional raw→product link.
type RawRepository interface {
	// RawItemExists reports whether any raw carries the business key itemID.
	RawItemExists(ctx context.Context, itemID int64) (bool, error)

	// RawExists reports whether a raw row with the given primary key exists.
	RawExists(ctx context.Context, rawID int64) (bool, error)

	CreateRaw(ctx context.Context, raw models.Raw) (models.ExecResult, error)
	FindRawsByOwner(ctx context.Context, userID int64) ([]models.Raw, error)

	// FindOwnerByRawID resolves the owner identifier of a raw, or
	// ErrRawNotFound.
	FindOwnerByRawID(ctx context.Context, rawID int64) (int64, error)

	// AssignProduct sets (or clears, when productID is absent) the product
	// link of a raw. Reassigning the same value is idempotent and still
	// touches the row.
	AssignProduct(ctx context.Context, rawID int64, productID models.LinkID) (models.ExecResult, error)
}

// PurchaseRepository persists purchase records.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase models.Purchase) (models.ExecResult, error)
	FindPurchasesByOwner(ctx context.Context, userID int64) ([]models.Purchase, error)
}
