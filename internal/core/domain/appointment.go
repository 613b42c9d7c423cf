package domain

import "time"

// AppointmentStatus is the lifecycle state of a medical appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
)

type Appointment struct {
	ID           int64             `json:"id_appointment"`
	PatientID    int64             `json:"id_patient"`
	DoctorID     int64             `json:"id_doctor"`
	AreaID       int64             `json:"id_area"`
	ServiceID    int64             `json:"id_service"`
	ScheduledAt  time.Time         `json:"appointment_datetime"`
	Building     *string           `json:"building,omitempty"`
	Room         *string           `json:"room,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
	Prescription *string           `json:"prescription,omitempty"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    *time.Time        `json:"updated_at,omitempty"`
	DeletedAt    *time.Time        `json:"deleted_at,omitempty"`
}

// AppointmentInput books an appointment; new appointments start pending.
type AppointmentInput struct {
	PatientID   int64     `json:"id_patient" validate:"required,gt=0"`
	DoctorID    int64     `json:"id_doctor" validate:"required,gt=0"`
	AreaID      int64     `json:"id_area" validate:"required,gt=0"`
	ServiceID   int64     `json:"id_service" validate:"required,gt=0"`
	ScheduledAt time.Time `json:"appointment_datetime" validate:"required"`
	Building    *string   `json:"building" validate:"omitempty,max=50"`
	Room        *string   `json:"room" validate:"omitempty,max=20"`
	Notes       *string   `json:"notes"`
}

type AppointmentPatch struct {
	ScheduledAt  *time.Time         `json:"appointment_datetime"`
	Building     *string            `json:"building" validate:"omitempty,max=50"`
	Room         *string            `json:"room" validate:"omitempty,max=20"`
	Notes        *string            `json:"notes"`
	Prescription *string            `json:"prescription"`
	Status       *AppointmentStatus `json:"status" validate:"omitempty,oneof=pending confirmed completed canceled"`
}
