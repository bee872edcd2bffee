package models

// User is an account that can sign in to the dashboard. Accounts are created
// out-of-band (seed/admin); this layer only reads them during authentication.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	ImageURL     string
}
