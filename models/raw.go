package models

// Raw is a raw material owned by a single user. A raw may optionally be
// linked to a product via ProductID; the link is mutable through the
// reassignment operation and may be cleared.
type Raw struct {
	RawID     int64  `json:"raw_id"`
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	ImageURL  string `json:"image_url"`
	ProductID LinkID `json:"product_id"`
	UserID    int64  `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Raw model.
func (r Raw) TableName() string {
	return "raws"
}
