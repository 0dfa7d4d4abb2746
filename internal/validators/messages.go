package validators

// Field keys used in validation results. They match the JSON field names of
// the requests they describe.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPassword2 = "password2"
)

// User-facing validation messages.
const (
	MsgEmailRequired     = "Email field is required"
	MsgEmailInvalid      = "Email is invalid"
	MsgEmailInUse        = "Email already in use"
	MsgPasswordRequired  = "Password field is required"
	MsgPasswordsMismatch = "Passwords must match"
	MsgConfirmRequired   = "Confirm password field is required"
)
