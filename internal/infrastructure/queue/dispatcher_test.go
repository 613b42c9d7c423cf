package queue

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingRepo struct {
	mu     sync.Mutex
	events []domain.AuthEvent
	err    error
}

func (r *recordingRepo) InsertAuthEvent(_ context.Context, e *domain.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *recordingRepo) snapshot() []domain.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuthEvent(nil), r.events...)
}

func event(id, identifier string) domain.AuthEvent {
	return domain.AuthEvent{
		ID:         id,
		Identifier: identifier,
		Outcome:    domain.OutcomeSuccess,
		OccurredAt: time.Now(),
	}
}

func TestAuditDispatcher_FlushesOnStop(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(3, repo, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 50; i++ {
		d.Record(event(strconv.Itoa(i), "drsmith"))
	}
	d.Stop()

	if got := len(repo.snapshot()); got != 50 {
		t.Errorf("expected 50 persisted events, got %d", got)
	}
}

func TestAuditDispatcher_PreservesOrderPerIdentifier(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(4, repo, zerolog.Nop())
	d.Start(context.Background())

	ids := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	for _, id := range ids {
		d.Record(event(id, "ana@example.com"))
		d.Record(event("other-"+id, "someone-else"))
	}
	d.Stop()

	var got []string
	for _, e := range repo.snapshot() {
		if e.Identifier == "ana@example.com" {
			got = append(got, e.ID)
		}
	}
	if len(got) != len(ids) {
		t.Fatalf("expected %d events, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("order broken at %d: got %v", i, got)
		}
	}
}

func TestAuditDispatcher_ShardIsCaseInsensitive(t *testing.T) {
	d := NewAuditDispatcher(8, &recordingRepo{}, zerolog.Nop())
	if d.shardIndex("DrSmith") != d.shardIndex("drsmith") {
		t.Error("expected identifiers differing only in case to share a worker")
	}
}

func TestAuditDispatcher_WriteErrorsDoNotStopWorker(t *testing.T) {
	repo := &recordingRepo{err: errors.New("mongo down")}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())
	d.Start(context.Background())

	d.Record(event("1", "x"))
	d.Record(event("2", "x"))
	d.Stop()

	if got := len(repo.snapshot()); got != 0 {
		t.Errorf("expected no persisted events, got %d", got)
	}
}

func TestAuditDispatcher_RecordAfterStopIsDropped(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(2, repo, zerolog.Nop())
	d.Start(context.Background())
	d.Stop()

	d.Record(event("late", "x"))
	d.Stop()

	if got := len(repo.snapshot()); got != 0 {
		t.Errorf("expected dropped event, got %d persisted", got)
	}
}

func TestAuditDispatcher_FullQueueDrops(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())
	// no workers started: the channel fills up
	for i := 0; i < channelBuffer+10; i++ {
		d.Record(event("e", "x"))
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Errorf("expected channel at capacity %d, got %d", channelBuffer, got)
	}
	d.Stop()
}
