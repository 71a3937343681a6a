package model

// AdminCredentials is the single stored admin account. At most one record
// exists; it is written once during first-run setup and only replaced by
// re-running setup, which the API refuses while a record is present. The
// plain password is never stored, only its bcrypt hash.
//
// Fields:
//  Username     – admin login name, at least three characters.
//  PasswordHash – bcrypt hash of the password.
type AdminCredentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
