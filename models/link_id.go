package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
)

// LinkID is an optional reference to another entity, carried on the wire as
// a JSON value of any type. Only a JSON number counts as a link; null, a
// missing field, or a value of any other type all mean "no link requested"
// and are stored as SQL NULL. This type-gating matches the observed request
// handling: a non-numeric product_id skips the referenced-entity check
// entirely instead of failing.
type LinkID struct {
	ID    int64
	Valid bool
}

// Link returns a valid LinkID pointing at id.
func Link(id int64) LinkID {
	return LinkID{ID: id, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler. Any value that is not a JSON
// number (including null and numeric strings) yields an absent link rather
// than an error.
func (l *LinkID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*l = LinkID{}
		return nil
	}

	id, err := n.Int64()
	if err != nil {
		*l = LinkID{}
		return nil
	}

	*l = LinkID{ID: id, Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler. An absent link serializes as null.
func (l LinkID) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.ID)
}

// Value implements driver.Valuer so a LinkID can be passed directly as a
// query argument; an absent link becomes SQL NULL.
func (l LinkID) Value() (driver.Value, error) {
	if !l.Valid {
		return nil, nil
	}
	return l.ID, nil
}

// Scan implements sql.Scanner for reading nullable foreign key columns.
func (l *LinkID) Scan(src any) error {
	var n sql.NullInt64
	if err := n.Scan(src); err != nil {
		return err
	}

	*l = LinkID{ID: n.Int64, Valid: n.Valid}
	return nil
}
