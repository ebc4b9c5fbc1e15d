package domain

// User is the owner of all other entities. The app remains single-user in
// spirit; the user record exists to scope data and to authenticate the REST
// surface.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CurrencyCode string `json:"currencyCode"`
	AuditFields
}
