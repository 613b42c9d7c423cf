package domain

import "time"

// User is a row of the users table as exposed by the users gateway.
type User struct {
	ID           int64      `json:"id_user"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// UserInput creates an account. Password is plaintext on the wire and is
// replaced by PasswordHash before it reaches the store.
type UserInput struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Password     string `json:"password" validate:"required,min=8,bcryptlen"`
	Role         Role   `json:"role" validate:"required"`
	PasswordHash string `json:"-"`
}

type UserPatch struct {
	Username     *string `json:"username" validate:"omitempty,min=3,max=50"`
	Password     *string `json:"password" validate:"omitempty,min=8,bcryptlen"`
	Role         *Role   `json:"role"`
	PasswordHash *string `json:"-"`
}
