package domain

import "time"

type Hospital struct {
	ID        int64      `json:"id_hospital"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type HospitalInput struct {
	Name    string `json:"name" validate:"required,min=2,max=150"`
	Address string `json:"address" validate:"required,max=255"`
}

type HospitalPatch struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=150"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}
