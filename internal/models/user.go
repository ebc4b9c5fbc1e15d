package models

// User represents an application user row.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CurrencyCode string `db:"currency_code"`
	AuditFields
}
