package domain

import "time"

// ClinicalService is a row of the services catalog (e.g. radiology).
type ClinicalService struct {
	ID        int64      `json:"id_service"`
	Name      string     `json:"service_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type ClinicalServiceInput struct {
	Name string `json:"service_name" validate:"required,min=2,max=100"`
}

type ClinicalServicePatch struct {
	Name *string `json:"service_name" validate:"omitempty,min=2,max=100"`
}

type Speciality struct {
	ID        int64      `json:"id_speciality"`
	Name      string     `json:"speciality_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type SpecialityInput struct {
	Name string `json:"speciality_name" validate:"required,min=2,max=100"`
}

type SpecialityPatch struct {
	Name *string `json:"speciality_name" validate:"omitempty,min=2,max=100"`
}
