package service

import (
	"context"

	"stockroom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account creation and credential verification. Both
// operations return the session token to be set on the response cookie.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, string, error)
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, string, error)
}

// ProductService handles owned writes and reads over products. The token is
// the session credential presented by the caller's cookie.
type ProductService interface {
	AddProduct(ctx context.Context, request models.ProductRequest, token string) (models.ExecResult, error)
	ListProducts(ctx context.Context, email, token string) ([]models.Product, error)
}

// RawService handles owned writes and reads over raw materials, including
// reassignment of the optional product link.
type RawService interface {
	AddRaw(ctx context.Context, request models.RawRequest, token string) (models.ExecResult, error)
	ListRaws(ctx context.Context, email, token string) ([]models.Raw, error)
	AssignProduct(ctx context.Context, request models.AssignProductRequest, token string) (models.ExecResult, error)
}

// PurchaseService records purchases against raw materials.
type PurchaseService interface {
	AddPurchase(ctx context.Context, request models.PurchaseRequest, token string) (models.ExecResult, error)
	ListPurchases(ctx context.Context, email, token string) ([]models.Purchase, error)
}
