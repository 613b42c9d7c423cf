package handler

import (
	"strings"
	"testing"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

func validPatient() domain.PatientInput {
	return domain.PatientInput{
		FirstName:     "Ana",
		FirstLastname: "Gómez",
		Birthdate:     "1990-04-12",
		Phone:         "+573001234567",
		Address:       "Calle 10 # 5-20",
		Email:         "ana@example.com",
	}
}

func TestValidator_AcceptsValidPatient(t *testing.T) {
	in := validPatient()
	if err := NewValidator().Validate(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_Messages(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.PatientInput)
		want   string
	}{
		{"phone", func(p *domain.PatientInput) { p.Phone = "3001234567" }, "phone must be an E.164 phone number"},
		{"birthdate", func(p *domain.PatientInput) { p.Birthdate = "12/04/1990" }, "birthdate must match the layout 2006-01-02"},
		{"email", func(p *domain.PatientInput) { p.Email = "not-an-email" }, "email must be a valid email"},
		{"required", func(p *domain.PatientInput) { p.FirstName = "" }, "first_name is required"},
	}
	v := NewValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPatient()
			tc.mutate(&in)
			err := v.Validate(&in)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestValidator_PatchSkipsAbsentFields(t *testing.T) {
	bad := "123"
	if err := NewValidator().Validate(&domain.PatientPatch{}); err != nil {
		t.Fatalf("empty patch must be valid: %v", err)
	}
	if err := NewValidator().Validate(&domain.PatientPatch{Phone: &bad}); err == nil {
		t.Fatal("expected invalid phone in patch to fail")
	}
}

func TestValidator_PasswordLengthCountsBytes(t *testing.T) {
	v := NewValidator()

	ascii := domain.UserInput{Username: "drsmith", Password: strings.Repeat("a", 72), Role: domain.RoleDoctor}
	if err := v.Validate(&ascii); err != nil {
		t.Fatalf("72-byte password must pass: %v", err)
	}

	// 40 runes but 80 bytes.
	multibyte := domain.UserInput{Username: "drsmith", Password: strings.Repeat("é", 40), Role: domain.RoleDoctor}
	err := v.Validate(&multibyte)
	if err == nil || !strings.Contains(err.Error(), "password must be at most 72 bytes") {
		t.Fatalf("expected byte-length error, got %v", err)
	}

	pw := strings.Repeat("é", 40)
	patch := domain.UserPatch{Password: &pw}
	if err := v.Validate(&patch); err == nil {
		t.Fatal("expected byte-length error on patch")
	}
}
