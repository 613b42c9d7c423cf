package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/medcore/hospital-admin/docs"
	"github.com/medcore/hospital-admin/internal/api"
	"github.com/medcore/hospital-admin/internal/api/handler"
	"github.com/medcore/hospital-admin/internal/core/ports"
	"github.com/medcore/hospital-admin/internal/core/service"
	"github.com/medcore/hospital-admin/internal/infrastructure/config"
	"github.com/medcore/hospital-admin/internal/infrastructure/db/mongo"
	"github.com/medcore/hospital-admin/internal/infrastructure/db/postgres"
	redisstore "github.com/medcore/hospital-admin/internal/infrastructure/db/redis"
	"github.com/medcore/hospital-admin/internal/infrastructure/queue"
	"github.com/medcore/hospital-admin/pkg/logger"
)

// authOptions installs the throttle only when it counts failures.
func authOptions(throttle *redisstore.LoginThrottle, audit ports.AuthEventRecorder) []service.AuthOption {
	opts := []service.AuthOption{service.WithAuditRecorder(audit)}
	if throttle.Enabled() {
		opts = append(opts, service.WithLoginThrottle(throttle))
	}
	return opts
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "hospital-api",
		Env:     cfg.Env,
	})

	// --- Infrastructure ---
	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:            cfg.Postgres.URL,
		MaxConns:       cfg.Postgres.MaxConns,
		MinConns:       cfg.Postgres.MinConns,
		ConnectRetries: cfg.Postgres.ConnectRetries,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "hospital-api",
	})
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	authEvents := mongo.NewAuthEventRepository(mongoDB)
	if err := authEvents.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure auth_events indexes")
	}

	dispatcher := queue.NewAuditDispatcher(cfg.Audit.Workers, authEvents, logger.Component("audit"))
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	// --- Core ---
	tokens, err := service.NewJWTCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}
	passwords := service.NewBcryptVerifier(cfg.Auth.BcryptCost)
	qt := cfg.Postgres.QueryTimeout

	throttle := redisstore.NewLoginThrottle(rdb, cfg.Auth.MaxFailures, cfg.Auth.Lockout)
	if !throttle.Enabled() {
		log.Warn().Msg("login throttling disabled (LOGIN_MAX_FAILURES=0)")
	}
	authService := service.NewAuthService(
		postgres.NewCredentialStore(pool, qt),
		passwords,
		tokens,
		logger.Component("auth"),
		authOptions(throttle, dispatcher)...,
	)

	entityLog := logger.Component("gateway")
	e := api.NewRouter(api.Deps{
		Log:          logger.Component("http"),
		Auth:         authService,
		SecureCookie: cfg.Auth.CookieSecure,
		Checks: map[string]handler.Check{
			"postgres": pool.Ping,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			"mongodb":  func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		},
		Hospitals:      service.NewEntityService("hospital", postgres.NewTableGateway(pool, postgres.HospitalTable, qt), entityLog),
		Patients:       service.NewEntityService("patient", postgres.NewTableGateway(pool, postgres.PatientTable, qt), entityLog),
		Doctors:        service.NewEntityService("doctor", postgres.NewTableGateway(pool, postgres.DoctorTable, qt), entityLog),
		Users:          service.NewUserService(postgres.NewTableGateway(pool, postgres.UserTable, qt), passwords, entityLog),
		Appointments:   service.NewEntityService("appointment", postgres.NewTableGateway(pool, postgres.AppointmentTable, qt), entityLog),
		Services:       service.NewEntityService("service", postgres.NewTableGateway(pool, postgres.ClinicalServiceTable, qt), entityLog),
		Specialities:   service.NewEntityService("speciality", postgres.NewTableGateway(pool, postgres.SpecialityTable, qt), entityLog),
		LabResults:     service.NewEntityService("lab_result", postgres.NewTableGateway(pool, postgres.LabResultTable, qt), entityLog),
		MedicalHistory: service.NewEntityService("medical_history", postgres.NewTableGateway(pool, postgres.MedicalHistoryTable, qt), entityLog),
	})

	return serve(ctx, e, ":"+cfg.Port, cfg.ShutdownTimeout, log)
}

type server interface {
	Start(address string) error
	Shutdown(ctx context.Context) error
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv server, addr string, drain time.Duration, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
