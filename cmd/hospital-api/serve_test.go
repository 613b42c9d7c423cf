package main

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	redisstore "github.com/medcore/hospital-admin/internal/infrastructure/db/redis"
)

type fakeServer struct {
	startErr  error
	stopped   chan struct{}
	shutdowns atomic.Int32
}

func (f *fakeServer) Start(string) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	close(f.stopped)
	return nil
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	srv := &fakeServer{stopped: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ":0", time.Second, zerolog.Nop()) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return")
	}
	if srv.shutdowns.Load() != 1 {
		t.Fatalf("expected one shutdown, got %d", srv.shutdowns.Load())
	}
}

func TestServe_ReturnsStartError(t *testing.T) {
	srv := &fakeServer{startErr: errors.New("address already in use"), stopped: make(chan struct{})}

	err := serve(context.Background(), srv, ":0", time.Second, zerolog.Nop())
	if err == nil {
		t.Fatal("expected start error")
	}
	if srv.shutdowns.Load() != 0 {
		t.Fatal("shutdown must not run when start fails")
	}
}

func TestAuthOptions_ThrottleOnlyWhenEnabled(t *testing.T) {
	if got := len(authOptions(redisstore.NewLoginThrottle(nil, 0, 0), nil)); got != 1 {
		t.Errorf("LOGIN_MAX_FAILURES=0: expected only the audit option, got %d options", got)
	}
	if got := len(authOptions(redisstore.NewLoginThrottle(nil, 5, time.Minute), nil)); got != 2 {
		t.Errorf("LOGIN_MAX_FAILURES=5: expected audit and throttle options, got %d options", got)
	}
}
