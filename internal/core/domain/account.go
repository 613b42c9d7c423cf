package domain

import "time"

// Account is the login identity row resolved during authentication.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}

// ProfileAttributes are the display fields of a role profile. Every field
// is optional; admin accounts have none.
type ProfileAttributes struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// AuthenticatedProfile is the read model returned after a successful login.
type AuthenticatedProfile struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Role      Role    `json:"role"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// NewAuthenticatedProfile composes the login read model.
func NewAuthenticatedProfile(acc Account, attrs ProfileAttributes) AuthenticatedProfile {
	return AuthenticatedProfile{
		ID:        acc.ID,
		Username:  acc.Username,
		Role:      acc.Role,
		FirstName: attrs.FirstName,
		LastName:  attrs.LastName,
		Email:     attrs.Email,
		Phone:     attrs.Phone,
	}
}

// SessionClaims is the payload carried by a session token.
type SessionClaims struct {
	Subject   string    `json:"sub"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"exp"`
}
