package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

var HospitalTable = Table[domain.Hospital, domain.HospitalInput, domain.HospitalPatch]{
	Name:    "hospitals",
	Key:     "id_hospital",
	Columns: []string{"id_hospital", "name", "address", "created_at", "updated_at", "deleted_at"},
	Scan: func(row pgx.Row) (*domain.Hospital, error) {
		var h domain.Hospital
		err := row.Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt, &h.DeletedAt)
		return &h, err
	},
	Insert: func(in domain.HospitalInput) (a Assignments) {
		a.Set("name", in.Name)
		a.Set("address", in.Address)
		return a
	},
	Patch: func(in domain.HospitalPatch) (a Assignments) {
		SetIfPresent(&a, "name", in.Name)
		SetIfPresent(&a, "address", in.Address)
		return a
	},
}

var PatientTable = Table[domain.Patient, domain.PatientInput, domain.PatientPatch]{
	Name: "patients",
	Key:  "id_patient",
	Columns: []string{
		"id_patient", "id_user", "first_name", "second_name", "first_lastname", "second_lastname",
		"birthdate", "phone", "address", "email", "created_at", "updated_at", "deleted_at",
	},
	Scan: func(row pgx.Row) (*domain.Patient, error) {
		var p domain.Patient
		err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.SecondName, &p.FirstLastname, &p.SecondLastname,
			&p.Birthdate, &p.Phone, &p.Address, &p.Email, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
		return &p, err
	},
	Insert: func(in domain.PatientInput) (a Assignments) {
		a.Set("id_user", in.UserID)
		a.Set("first_name", in.FirstName)
		a.Set("second_name", in.SecondName)
		a.Set("first_lastname", in.FirstLastname)
		a.Set("second_lastname", in.SecondLastname)
		a.Set("birthdate", in.Birthdate)
		a.Set("phone", in.Phone)
		a.Set("address", in.Address)
		a.Set("email", in.Email)
		return a
	},
	Patch: func(in domain.PatientPatch) (a Assignments) {
		SetIfPresent(&a, "id_user", in.UserID)
		SetIfPresent(&a, "first_name", in.FirstName)
		SetIfPresent(&a, "second_name", in.SecondName)
		SetIfPresent(&a, "first_lastname", in.FirstLastname)
		SetIfPresent(&a, "second_lastname", in.SecondLastname)
		SetIfPresent(&a, "birthdate", in.Birthdate)
		SetIfPresent(&a, "phone", in.Phone)
		SetIfPresent(&a, "address", in.Address)
		SetIfPresent(&a, "email", in.Email)
		return a
	},
}

var DoctorTable = Table[domain.Doctor, domain.DoctorInput, domain.DoctorPatch]{
	Name: "doctors",
	Key:  "id_doctor",
	Columns: []string{
		"id_doctor", "id_area", "id_speciality", "id_service", "id_user", "first_name", "second_name",
		"first_lastname", "second_lastname", "phone", "email", "created_at", "updated_at", "deleted_at",
	},
	Scan: func(row pgx.Row) (*domain.Doctor, error) {
		var d domain.Doctor
		err := row.Scan(&d.ID, &d.AreaID, &d.SpecialityID, &d.ServiceID, &d.UserID, &d.FirstName, &d.SecondName,
			&d.FirstLastname, &d.SecondLastname, &d.Phone, &d.Email, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt)
		return &d, err
	},
	Insert: func(in domain.DoctorInput) (a Assignments) {
		a.Set("id_area", in.AreaID)
		a.Set("id_speciality", in.SpecialityID)
		a.Set("id_service", in.ServiceID)
		a.Set("id_user", in.UserID)
		a.Set("first_name", in.FirstName)
		a.Set("second_name", in.SecondName)
		a.Set("first_lastname", in.FirstLastname)
		a.Set("second_lastname", in.SecondLastname)
		a.Set("phone", in.Phone)
		a.Set("email", in.Email)
		return a
	},
	Patch: func(in domain.DoctorPatch) (a Assignments) {
		SetIfPresent(&a, "id_area", in.AreaID)
		SetIfPresent(&a, "id_speciality", in.SpecialityID)
		SetIfPresent(&a, "id_service", in.ServiceID)
		SetIfPresent(&a, "id_user", in.UserID)
		SetIfPresent(&a, "first_name", in.FirstName)
		SetIfPresent(&a, "second_name", in.SecondName)
		SetIfPresent(&a, "first_lastname", in.FirstLastname)
		SetIfPresent(&a, "second_lastname", in.SecondLastname)
		SetIfPresent(&a, "phone", in.Phone)
		SetIfPresent(&a, "email", in.Email)
		return a
	},
}

// UserTable never selects password_hash; only the credential store reads it.
var UserTable = Table[domain.User, domain.UserInput, domain.UserPatch]{
	Name:    "users",
	Key:     "id_user",
	Columns: []string{"id_user", "username", "role", "created_at", "updated_at", "deleted_at"},
	Scan: func(row pgx.Row) (*domain.User, error) {
		var (
			u    domain.User
			role string
		)
		if err := row.Scan(&u.ID, &u.Username, &role, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return &u, err
		}
		parsed, err := domain.ParseRole(role)
		if err != nil {
			return &u, err
		}
		u.Role = parsed
		return &u, nil
	},
	Insert: func(in domain.UserInput) (a Assignments) {
		a.Set("username", in.Username)
		a.Set("password_hash", in.PasswordHash)
		a.Set("role", in.Role.String())
		return a
	},
	Patch: func(in domain.UserPatch) (a Assignments) {
		SetIfPresent(&a, "username", in.Username)
		SetIfPresent(&a, "password_hash", in.PasswordHash)
		if in.Role != nil {
			a.Set("role", in.Role.String())
		}
		return a
	},
}

var AppointmentTable = Table[domain.Appointment, domain.AppointmentInput, domain.AppointmentPatch]{
	Name: "medical_appointments",
	Key:  "id_appointment",
	Columns: []string{
		"id_appointment", "id_patient", "id_doctor", "id_area", "id_service", "appointment_datetime",
		"building", "room", "notes", "prescription", "status", "created_at", "updated_at", "deleted_at",
	},
	Scan: func(row pgx.Row) (*domain.Appointment, error) {
		var (
			ap     domain.Appointment
			status string
		)
		err := row.Scan(&ap.ID, &ap.PatientID, &ap.DoctorID, &ap.AreaID, &ap.ServiceID, &ap.ScheduledAt,
			&ap.Building, &ap.Room, &ap.Notes, &ap.Prescription, &status, &ap.CreatedAt, &ap.UpdatedAt, &ap.DeletedAt)
		ap.Status = domain.AppointmentStatus(status)
		return &ap, err
	},
	Insert: func(in domain.AppointmentInput) (a Assignments) {
		a.Set("id_patient", in.PatientID)
		a.Set("id_doctor", in.DoctorID)
		a.Set("id_area", in.AreaID)
		a.Set("id_service", in.ServiceID)
		a.Set("appointment_datetime", in.ScheduledAt)
		a.Set("building", in.Building)
		a.Set("room", in.Room)
		a.Set("notes", in.Notes)
		a.Set("status", string(domain.AppointmentPending))
		return a
	},
	Patch: func(in domain.AppointmentPatch) (a Assignments) {
		SetIfPresent(&a, "appointment_datetime", in.ScheduledAt)
		SetIfPresent(&a, "building", in.Building)
		SetIfPresent(&a, "room", in.Room)
		SetIfPresent(&a, "notes", in.Notes)
		SetIfPresent(&a, "prescription", in.Prescription)
		if in.Status != nil {
			a.Set("status", string(*in.Status))
		}
		return a
	},
}

var ClinicalServiceTable = Table[domain.ClinicalService, domain.ClinicalServiceInput, domain.ClinicalServicePatch]{
	Name:    "services",
	Key:     "id_service",
	Columns: []string{"id_service", "service_name", "created_at", "updated_at", "deleted_at"},
	Scan: func(row pgx.Row) (*domain.ClinicalService, error) {
		var s domain.ClinicalService
		err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
		return &s, err
	},
	Insert: func(in domain.ClinicalServiceInput) (a Assignments) {
		a.Set("service_name", in.Name)
		return a
	},
	Patch: func(in domain.ClinicalServicePatch) (a Assignments) {
		SetIfPresent(&a, "service_name", in.Name)
		return a
	},
}

var SpecialityTable = Table[domain.Speciality, domain.SpecialityInput, domain.SpecialityPatch]{
	Name:    "specialities",
	Key:     "id_speciality",
	Columns: []string{"id_speciality", "speciality_name", "created_at", "updated_at", "deleted_at"},
	Scan: func(row pgx.Row) (*domain.Speciality, error) {
		var s domain.Speciality
		err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
		return &s, err
	},
	Insert: func(in domain.SpecialityInput) (a Assignments) {
		a.Set("speciality_name", in.Name)
		return a
	},
	Patch: func(in domain.SpecialityPatch) (a Assignments) {
		SetIfPresent(&a, "speciality_name", in.Name)
		return a
	},
}

var LabResultTable = Table[domain.LabResult, domain.LabResultInput, domain.LabResultPatch]{
	Name: "lab_results",
	Key:  "id_result",
	Columns: []string{
		"id_result", "id_patient", "id_doctor", "lab_name", "test_type", "result", "result_date",
		"created_at", "updated_at", "deleted_at",
	},
	Scan: func(row pgx.Row) (*domain.LabResult, error) {
		var r domain.LabResult
		err := row.Scan(&r.ID, &r.PatientID, &r.DoctorID, &r.LabName, &r.TestType, &r.Result, &r.ResultDate,
			&r.CreatedAt, &r.UpdatedAt, &r.DeletedAt)
		return &r, err
	},
	Insert: func(in domain.LabResultInput) (a Assignments) {
		a.Set("id_patient", in.PatientID)
		a.Set("id_doctor", in.DoctorID)
		a.Set("lab_name", in.LabName)
		a.Set("test_type", in.TestType)
		a.Set("result", in.Result)
		SetIfPresent(&a, "result_date", in.ResultDate)
		return a
	},
	Patch: func(in domain.LabResultPatch) (a Assignments) {
		SetIfPresent(&a, "lab_name", in.LabName)
		SetIfPresent(&a, "test_type", in.TestType)
		SetIfPresent(&a, "result", in.Result)
		return a
	},
}

var MedicalHistoryTable = Table[domain.MedicalHistory, domain.MedicalHistoryInput, domain.MedicalHistoryPatch]{
	Name: "medical_history",
	Key:  "id_history",
	Columns: []string{
		"id_history", "id_patient", "id_doctor", "diagnosis", "treatment", "notes", "record_date",
		"created_at", "updated_at", "deleted_at",
	},
	Scan: func(row pgx.Row) (*domain.MedicalHistory, error) {
		var h domain.MedicalHistory
		err := row.Scan(&h.ID, &h.PatientID, &h.DoctorID, &h.Diagnosis, &h.Treatment, &h.Notes, &h.RecordDate,
			&h.CreatedAt, &h.UpdatedAt, &h.DeletedAt)
		return &h, err
	},
	Insert: func(in domain.MedicalHistoryInput) (a Assignments) {
		a.Set("id_patient", in.PatientID)
		a.Set("id_doctor", in.DoctorID)
		a.Set("diagnosis", in.Diagnosis)
		a.Set("treatment", in.Treatment)
		a.Set("notes", in.Notes)
		return a
	},
	Patch: func(in domain.MedicalHistoryPatch) (a Assignments) {
		SetIfPresent(&a, "diagnosis", in.Diagnosis)
		SetIfPresent(&a, "treatment", in.Treatment)
		SetIfPresent(&a, "notes", in.Notes)
		return a
	},
}
