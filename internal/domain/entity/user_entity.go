package entity

import (
	"time"
)

// User is the aggregate root for the user domain. PasswordHash holds a bcrypt
// hash and is excluded from every serialized payload.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
