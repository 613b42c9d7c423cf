package domain

import "time"

type LabResult struct {
	ID         int64      `json:"id_result"`
	PatientID  int64      `json:"id_patient"`
	DoctorID   *int64     `json:"id_doctor,omitempty"`
	LabName    string     `json:"lab_name"`
	TestType   *string    `json:"test_type,omitempty"`
	Result     string     `json:"result"`
	ResultDate time.Time  `json:"result_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// LabResultInput records a result; ResultDate defaults to the insert time.
type LabResultInput struct {
	PatientID  int64      `json:"id_patient" validate:"required,gt=0"`
	DoctorID   *int64     `json:"id_doctor" validate:"omitempty,gt=0"`
	LabName    string     `json:"lab_name" validate:"required,max=100"`
	TestType   *string    `json:"test_type" validate:"omitempty,max=100"`
	Result     string     `json:"result" validate:"required,min=2"`
	ResultDate *time.Time `json:"result_date"`
}

type LabResultPatch struct {
	LabName  *string `json:"lab_name" validate:"omitempty,max=100"`
	TestType *string `json:"test_type" validate:"omitempty,max=100"`
	Result   *string `json:"result" validate:"omitempty,min=2"`
}

type MedicalHistory struct {
	ID         int64      `json:"id_history"`
	PatientID  int64      `json:"id_patient"`
	DoctorID   *int64     `json:"id_doctor,omitempty"`
	Diagnosis  string     `json:"diagnosis"`
	Treatment  *string    `json:"treatment,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	RecordDate time.Time  `json:"record_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

type MedicalHistoryInput struct {
	PatientID int64   `json:"id_patient" validate:"required,gt=0"`
	DoctorID  *int64  `json:"id_doctor" validate:"omitempty,gt=0"`
	Diagnosis string  `json:"diagnosis" validate:"required,min=3"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
}

type MedicalHistoryPatch struct {
	Diagnosis *string `json:"diagnosis" validate:"omitempty,min=3"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
}
