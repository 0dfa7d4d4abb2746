// Package adapter implements the HTTP client side of the API. The adapter
// keeps the session cookie issued at registration or login and presents it
// on every subsequent request, mirroring how a browser drives the service.
package adapter

import (
	"context"

	"stockroom/models"
)

// ServerAdapter is the client-side view of the full API surface.
type ServerAdapter interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	Logout(ctx context.Context) (models.LogoutResponse, error)

	AddProduct(ctx context.Context, request models.ProductRequest) (models.ExecResult, error)
	ListProducts(ctx context.Context, email string) ([]models.Product, error)

	AddRaw(ctx context.Context, request models.RawRequest) (models.ExecResult, error)
	ListRaws(ctx context.Context, email string) ([]models.Raw, error)
	AssignProduct(ctx context.Context, request models.AssignProductRequest) (models.ExecResult, error)

	AddPurchase(ctx context.Context, request models.PurchaseRequest) (models.ExecResult, error)
	ListPurchases(ctx context.Context, email string) ([]models.Purchase, error)
}
