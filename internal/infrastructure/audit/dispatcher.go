// Package audit delivers fire-and-forget echo events for processed
// instructions. Submission never blocks the request path: events go through
// a bounded queue drained by a small worker pool, and are dropped under
// backpressure.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is one processed-instruction record.
type Event struct {
	ID          uuid.UUID
	ReceivedAt  time.Time
	Instruction string
	Status      string
	StatusCode  string
}

// Sink stores or emits a single audit event.
type Sink interface {
	Record(ctx context.Context, e Event) error
}

type Config struct {
	// QueueSize bounds the number of events waiting for a worker (default 1024).
	QueueSize int
	// Workers is the number of concurrent drain goroutines (default 2).
	Workers int
	// RecordTimeout bounds a single sink call (default 5s).
	RecordTimeout time.Duration
}

// Dispatcher fans submitted events out to its sink without ever blocking the
// caller. Close stops intake, drains the queue and waits for the workers.
type Dispatcher struct {
	sink    Sink
	queue   chan Event
	logger  *slog.Logger
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	dropped atomic.Int64
}

func NewDispatcher(sink Sink, cfg Config, logger *slog.Logger) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.RecordTimeout <= 0 {
		cfg.RecordTimeout = 5 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		sink:    sink,
		queue:   make(chan Event, cfg.QueueSize),
		logger:  logger,
		timeout: cfg.RecordTimeout,
		ctx:     ctx,
		cancel:  cancel,
	}

	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Record enqueues an event. A full queue drops the event and counts it;
// a closed dispatcher ignores it.
func (d *Dispatcher) Record(e Event) {
	select {
	case <-d.ctx.Done():
		return
	default:
	}

	select {
	case d.queue <- e:
	default:
		d.dropped.Add(1)
		d.logger.Warn("audit queue full, event dropped", "event_id", e.ID)
	}
}

// Dropped reports how many events were discarded under backpressure.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close stops intake, drains remaining events and waits for the workers.
func (d *Dispatcher) Close() {
	d.cancel()
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case <-d.ctx.Done():
			for {
				select {
				case e := <-d.queue:
					d.record(e)
				default:
					return
				}
			}
		case e := <-d.queue:
			d.record(e)
		}
	}
}

func (d *Dispatcher) record(e Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sink.Record(ctx, e); err != nil {
		d.logger.Error("audit record failed", "event_id", e.ID, "error", err)
	}
}
