package domain

import "time"

// Patient is a role profile; UserID links it to a login account.
type Patient struct {
	ID             int64      `json:"id_patient"`
	UserID         *int64     `json:"id_user,omitempty"`
	FirstName      string     `json:"first_name"`
	SecondName     *string    `json:"second_name,omitempty"`
	FirstLastname  string     `json:"first_lastname"`
	SecondLastname *string    `json:"second_lastname,omitempty"`
	Birthdate      string     `json:"birthdate"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	Email          string     `json:"email"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type PatientInput struct {
	UserID         *int64  `json:"id_user" validate:"omitempty,gt=0"`
	FirstName      string  `json:"first_name" validate:"required,max=60"`
	SecondName     *string `json:"second_name" validate:"omitempty,max=60"`
	FirstLastname  string  `json:"first_lastname" validate:"required,max=60"`
	SecondLastname *string `json:"second_lastname" validate:"omitempty,max=60"`
	Birthdate      string  `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Phone          string  `json:"phone" validate:"required,phone"`
	Address        string  `json:"address" validate:"required,max=255"`
	Email          string  `json:"email" validate:"required,email"`
}

type PatientPatch struct {
	UserID         *int64  `json:"id_user" validate:"omitempty,gt=0"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=60"`
	SecondName     *string `json:"second_name" validate:"omitempty,max=60"`
	FirstLastname  *string `json:"first_lastname" validate:"omitempty,max=60"`
	SecondLastname *string `json:"second_lastname" validate:"omitempty,max=60"`
	Birthdate      *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Phone          *string `json:"phone" validate:"omitempty,phone"`
	Address        *string `json:"address" validate:"omitempty,max=255"`
	Email          *string `json:"email" validate:"omitempty,email"`
}
