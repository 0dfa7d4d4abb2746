package models

// Product is a finished good owned by a single user. ItemID is the external
// business key supplied by the owner; ProductID is the storage-assigned
// primary key.
type Product struct {
	ProductID int64  `json:"product_id"`
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	ImageURL  string `json:"image_url"`
	UserID    int64  `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
