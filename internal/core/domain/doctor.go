package domain

import "time"

// Doctor is a role profile; UserID links it to a login account.
type Doctor struct {
	ID             int64      `json:"id_doctor"`
	AreaID         int64      `json:"id_area"`
	SpecialityID   *int64     `json:"id_speciality,omitempty"`
	ServiceID      int64      `json:"id_service"`
	UserID         *int64     `json:"id_user,omitempty"`
	FirstName      string     `json:"first_name"`
	SecondName     *string    `json:"second_name,omitempty"`
	FirstLastname  string     `json:"first_lastname"`
	SecondLastname *string    `json:"second_lastname,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type DoctorInput struct {
	AreaID         int64   `json:"id_area" validate:"required,gt=0"`
	SpecialityID   *int64  `json:"id_speciality" validate:"omitempty,gt=0"`
	ServiceID      int64   `json:"id_service" validate:"required,gt=0"`
	UserID         *int64  `json:"id_user" validate:"omitempty,gt=0"`
	FirstName      string  `json:"first_name" validate:"required,max=60"`
	SecondName     *string `json:"second_name" validate:"omitempty,max=60"`
	FirstLastname  string  `json:"first_lastname" validate:"required,max=60"`
	SecondLastname *string `json:"second_lastname" validate:"omitempty,max=60"`
	Phone          *string `json:"phone" validate:"omitempty,phone"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

type DoctorPatch struct {
	AreaID         *int64  `json:"id_area" validate:"omitempty,gt=0"`
	SpecialityID   *int64  `json:"id_speciality" validate:"omitempty,gt=0"`
	ServiceID      *int64  `json:"id_service" validate:"omitempty,gt=0"`
	UserID         *int64  `json:"id_user" validate:"omitempty,gt=0"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=60"`
	SecondName     *string `json:"second_name" validate:"omitempty,max=60"`
	FirstLastname  *string `json:"first_lastname" validate:"omitempty,max=60"`
	SecondLastname *string `json:"second_lastname" validate:"omitempty,max=60"`
	Phone          *string `json:"phone" validate:"omitempty,phone"`
	Email          *string `json:"email" validate:"omitempty,email"`
}
