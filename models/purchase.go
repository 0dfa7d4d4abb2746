package models

// Purchase records an acquisition of a raw material by its owner.
// PurchaseTime is carried verbatim as supplied by the caller.
type Purchase struct {
	RawID            int64   `json:"raw_id"`
	UserID           int64   `json:"user_id"`
	PurchaseQuantity int64   `json:"purchase_quantity"`
	PurchaseAmount   float64 `json:"purchase_amount"`
	PurchaseTime     string  `json:"purchase_time"`
}

// TableName returns the name of the database table
// associated with the Purchase model.
func (p Purchase) TableName() string {
	return "purchases"
}
