package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProductRequest is the body of POST /api/products. Email identifies the
// acting owner; the session cookie carries the credential.
type ProductRequest struct {
	Email    string `json:"email"`
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	ImageURL string `json:"image_url"`
}

// RawRequest is the body of POST /api/raws. ProductID is an optional link:
// only a JSON number requests one.
type RawRequest struct {
	Email     string `json:"email"`
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	ImageURL  string `json:"image_url"`
	ProductID LinkID `json:"product_id"`
}

// AssignProductRequest is the body of PUT /api/raws. It carries no email:
// the acting owner is resolved from the raw itself.
type AssignProductRequest struct {
	RawID     int64  `json:"raw_id"`
	ProductID LinkID `json:"product_id"`
}

// PurchaseRequest is the body of POST /api/purchases.
type PurchaseRequest struct {
	Email            string  `json:"email"`
	RawID            int64   `json:"raw_id"`
	PurchaseQuantity int64   `json:"purchase_quantity"`
	PurchaseAmount   float64 `json:"purchase_amount"`
	PurchaseTime     string  `json:"purchase_time"`
}

// OwnerRequest is the body of the list-by-owner read endpoints.
type OwnerRequest struct {
	Email string `json:"email"`
}
