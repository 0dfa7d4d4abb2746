package models

// User represents an account entity used for authentication and resource
// ownership. A user is created at registration and is immutable afterwards:
// there is no update or delete path.
type User struct {
	// UserID is the internal unique identifier of the user. It is the sole
	// input to session token derivation and is never exposed via JSON.
	UserID int64 `json:"-"`

	// Email is the unique, normalized (trimmed, lower-cased) login identifier.
	Email string `json:"email"`

	// Password holds the combined password record "hash.salt" as produced by
	// the password store. It MUST never contain plaintext and is never
	// serialized.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
