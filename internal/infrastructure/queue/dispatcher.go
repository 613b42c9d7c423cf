package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medcore/hospital-admin/internal/api/metrics"
	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher fans auth events out to a fixed set of workers, sharded by
// identifier so the events of one account are persisted in order.
type AuditDispatcher struct {
	workers []chan domain.AuthEvent
	repo    ports.AuthEventRepository
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ ports.AuthEventRecorder = (*AuditDispatcher)(nil)

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuthEventRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches the worker goroutines. Pending events are still written after
// ctx is cancelled; call Stop to drain and wait for the workers.
func (d *AuditDispatcher) Start(ctx context.Context) {
	writeCtx := context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(writeCtx, i, ch)
	}
}

// Record enqueues an event without blocking. Events are dropped when the
// worker channel is full or the dispatcher has been stopped.
func (d *AuditDispatcher) Record(event domain.AuthEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.AuditEventsDroppedTotal.Inc()
		return
	}

	idx := d.shardIndex(event.Identifier)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsDroppedTotal.Inc()
		d.log.Warn().
			Str("identifier", event.Identifier).
			Str("outcome", string(event.Outcome)).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// Stop closes the worker channels and blocks until queued events are flushed.
// It is safe to call more than once.
func (d *AuditDispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps an identifier deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(identifier string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(identifier)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	defer d.wg.Done()
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))

	for event := range ch {
		depth.Set(float64(len(ch)))
		if err := d.repo.InsertAuthEvent(ctx, &event); err != nil {
			metrics.AuditWriteErrorsTotal.Inc()
			d.log.Error().Err(err).
				Str("event_id", event.ID).
				Str("identifier", event.Identifier).
				Int("worker_id", id).
				Msg("audit event write failed")
		}
	}
	depth.Set(0)
}
