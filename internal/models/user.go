package models

import "github.com/google/uuid"

// User is a dashboard login. Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	Password string    `json:"-" db:"password"`
}
