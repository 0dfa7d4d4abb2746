package models

// ExecResult mirrors the driver-level outcome of an INSERT or UPDATE the
// way the API has always reported it: the assigned row id and the number
// of rows touched.
type ExecResult struct {
	InsertID     int64 `json:"insertId"`
	AffectedRows int64 `json:"affectedRows"`
}

// RegisterResponse is the success body of POST /api/users/register.
type RegisterResponse struct {
	ExecResult
	Email string `json:"email"`
}

// LoginResponse is the success body of POST /api/users/login.
type LoginResponse struct {
	Email string `json:"email"`
}

// LogoutResponse is the body of GET /api/users/logout.
type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}
