package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/medcore/hospital-admin/internal/api/handler"
	"github.com/medcore/hospital-admin/internal/api/middleware"
	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Log          zerolog.Logger
	Auth         ports.AuthService
	SecureCookie bool
	Checks       map[string]handler.Check

	Hospitals      ports.Gateway[domain.Hospital, domain.HospitalInput, domain.HospitalPatch]
	Patients       ports.Gateway[domain.Patient, domain.PatientInput, domain.PatientPatch]
	Doctors        ports.Gateway[domain.Doctor, domain.DoctorInput, domain.DoctorPatch]
	Users          ports.Gateway[domain.User, domain.UserInput, domain.UserPatch]
	Appointments   ports.Gateway[domain.Appointment, domain.AppointmentInput, domain.AppointmentPatch]
	Services       ports.Gateway[domain.ClinicalService, domain.ClinicalServiceInput, domain.ClinicalServicePatch]
	Specialities   ports.Gateway[domain.Speciality, domain.SpecialityInput, domain.SpecialityPatch]
	LabResults     ports.Gateway[domain.LabResult, domain.LabResultInput, domain.LabResultPatch]
	MedicalHistory ports.Gateway[domain.MedicalHistory, domain.MedicalHistoryInput, domain.MedicalHistoryPatch]
}

// guard is the per-operation RBAC of one resource.
type guard struct {
	read, create, update, remove echo.MiddlewareFunc
}

func writeGuard(read echo.MiddlewareFunc, write ...domain.Role) guard {
	w := middleware.RBAC(write...)
	return guard{read: read, create: w, update: w, remove: w}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestContext(d.Log))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("hospital_http"))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth, d.SecureCookie)
	authMiddleware := middleware.Auth(d.Auth)

	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Entity routes ---
	v1 := e.Group("/api/v1", authMiddleware)

	anyone := middleware.AnyRole()
	admin := domain.RoleAdmin
	admissionist := domain.RoleAdmissionist
	doctor := domain.RoleDoctor
	staff := middleware.RBAC(admin, admissionist, doctor)
	clinical := middleware.RBAC(admin, doctor)

	mount(v1, "/hospitals", "hospitals", d.Hospitals, writeGuard(anyone, admin))
	mount(v1, "/services", "services", d.Services, writeGuard(anyone, admin))
	mount(v1, "/specialities", "specialities", d.Specialities, writeGuard(anyone, admin))
	mount(v1, "/doctors", "doctors", d.Doctors, writeGuard(anyone, admin))
	mount(v1, "/patients", "patients", d.Patients, writeGuard(staff, admin, admissionist))
	mount(v1, "/users", "users", d.Users, writeGuard(middleware.RBAC(admin), admin))
	mount(v1, "/appointments", "appointments", d.Appointments, guard{
		read:   staff,
		create: middleware.RBAC(admin, admissionist),
		update: staff,
		remove: middleware.RBAC(admin, admissionist),
	})
	mount(v1, "/lab-results", "lab_results", d.LabResults, writeGuard(clinical, admin, doctor))
	mount(v1, "/medical-history", "medical_history", d.MedicalHistory, writeGuard(clinical, admin, doctor))

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func mount[T, C, U any](v1 *echo.Group, path, entity string, svc ports.Gateway[T, C, U], g guard) {
	if svc == nil {
		return
	}
	handler.NewEntityHandler(entity, svc).Register(v1.Group(path), g.read, g.create, g.update, g.remove)
}
