package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"github.com/couchcryptid/worldtrotter-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

const (
	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second

	// bufferBatches is how many full batches the publish buffer holds.
	bufferBatches = 20

	drainTimeout = 5 * time.Second
)

// BatchLoader writes multiple conversion events to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.ConversionEvent) error
}

// Publisher batches conversion events off the request path and hands them to
// a BatchLoader. A Publisher with a nil loader accepts and discards events.
type Publisher struct {
	loader        BatchLoader
	events        chan domain.ConversionEvent
	batchSize     int
	flushInterval time.Duration
	clock         clockwork.Clock
	logger        *slog.Logger
	metrics       *observability.Metrics
	running       atomic.Bool
}

// NewPublisher creates a Publisher flushing every batchSize events or every
// flushInterval, whichever comes first.
func NewPublisher(loader BatchLoader, batchSize int, flushInterval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Publisher{
		loader:        loader,
		events:        make(chan domain.ConversionEvent, batchSize*bufferBatches),
		batchSize:     batchSize,
		flushInterval: flushInterval,
		clock:         clockwork.NewRealClock(),
		logger:        logger,
		metrics:       metrics,
	}
}

// Enabled reports whether events are forwarded anywhere.
func (p *Publisher) Enabled() bool {
	return p.loader != nil
}

// Publish enqueues an event without blocking. When the buffer is full the
// event is dropped and counted.
func (p *Publisher) Publish(event domain.ConversionEvent) {
	if p.loader == nil {
		return
	}
	select {
	case p.events <- event:
	default:
		p.metrics.EventsDropped.Inc()
		p.logger.Warn("publish buffer full, dropping conversion event", "session_id", event.SessionID)
	}
}

// CheckReadiness returns nil while the publish loop is running, or when
// publishing is disabled.
func (p *Publisher) CheckReadiness(_ context.Context) error {
	if p.loader == nil {
		return nil
	}
	if !p.running.Load() {
		return errors.New("event publisher is not running")
	}
	return nil
}

// Run executes the batch publish loop until the context is cancelled, then
// flushes whatever is still buffered.
func (p *Publisher) Run(ctx context.Context) error {
	if p.loader == nil {
		p.logger.Info("event publishing disabled")
		return nil
	}

	p.logger.Info("event publisher started", "batch_size", p.batchSize, "flush_interval", p.flushInterval)
	p.running.Store(true)
	p.metrics.PublisherRunning.Set(1)
	defer func() {
		p.running.Store(false)
		p.metrics.PublisherRunning.Set(0)
	}()

	ticker := p.clock.NewTicker(p.flushInterval)
	defer ticker.Stop()

	batch := make([]domain.ConversionEvent, 0, p.batchSize)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("event publisher stopping", "reason", ctx.Err())
			p.drain(batch)
			return nil

		case event := <-p.events:
			batch = append(batch, event)
			if len(batch) < p.batchSize {
				continue
			}
			if !p.flush(ctx, batch) {
				p.drain(batch)
				return nil
			}
			batch = batch[:0]

		case <-ticker.Chan():
			if len(batch) == 0 {
				continue
			}
			if !p.flush(ctx, batch) {
				p.drain(batch)
				return nil
			}
			batch = batch[:0]
		}
	}
}

// flush loads batch, retrying with exponential backoff. Returns false if the
// context ended before the batch was written.
func (p *Publisher) flush(ctx context.Context, batch []domain.ConversionEvent) bool {
	backoff := initialBackoff
	for {
		err := p.loader.LoadBatch(ctx, batch)
		if err == nil {
			p.metrics.EventsPublished.Add(float64(len(batch)))
			p.metrics.BatchSize.Observe(float64(len(batch)))
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		p.metrics.PublishErrors.Inc()
		p.logger.Error("load batch failed", "error", err, "batch_size", len(batch), "retry_in", backoff)
		if !sleepWithContext(ctx, p.clock, backoff) {
			return false
		}
		backoff = nextBackoff(backoff, maxBackoff)
	}
}

// drain makes one bounded attempt to write pending plus anything still queued.
func (p *Publisher) drain(pending []domain.ConversionEvent) {
queued:
	for {
		select {
		case event := <-p.events:
			pending = append(pending, event)
		default:
			break queued
		}
	}
	if len(pending) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := p.loader.LoadBatch(ctx, pending); err != nil {
		p.metrics.PublishErrors.Inc()
		p.metrics.EventsDropped.Add(float64(len(pending)))
		p.logger.Error("final flush failed, dropping conversion events", "error", err, "count", len(pending))
		return
	}
	p.metrics.EventsPublished.Add(float64(len(pending)))
	p.metrics.BatchSize.Observe(float64(len(pending)))
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, clock clockwork.Clock, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}
