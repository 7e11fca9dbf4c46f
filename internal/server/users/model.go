package users

import "time"

// User is an account that owns records. The password hash is opaque to
// every caller and never serializes.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
