package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
)

const inProcessHandleTimeout = 30 * time.Second

var (
	// ErrQueueFull is returned when the in-process queue has no free slot.
	ErrQueueFull = errors.New("mail queue is full")
	// ErrPublisherClosed is returned after Close.
	ErrPublisherClosed = errors.New("publisher is closed")
)

// inProcessPublisher hands events to a bounded channel served by a fixed set of goroutines.
type inProcessPublisher struct {
	events  chan *entity.MailEvent
	handler service.MailEventHandler
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewInProcessPublisher starts workers goroutines that pass each event to handler
func NewInProcessPublisher(handler service.MailEventHandler, workers, queueSize int, logger *slog.Logger) (service.EventPublisher, error) {
	if handler == nil {
		return nil, errors.New("mail event handler is required for the in-process provider")
	}
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}

	p := &inProcessPublisher{
		events:  make(chan *entity.MailEvent, queueSize),
		handler: handler,
		logger:  logger,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}

	logger.Info("In-process mail publisher started",
		slog.Int("workers", workers),
		slog.Int("queue_size", queueSize),
	)

	return p, nil
}

// PublishMailEvent enqueues without blocking the caller
func (p *inProcessPublisher) PublishMailEvent(_ context.Context, event *entity.MailEvent) error {
	if event == nil {
		return errors.New("mail event is nil")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.events <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *inProcessPublisher) work() {
	defer p.wg.Done()

	for event := range p.events {
		p.handle(event)
	}
}

func (p *inProcessPublisher) handle(event *entity.MailEvent) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("[InProcess] Mail handler panicked",
				slog.String("type", string(event.Type)),
				slog.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), inProcessHandleTimeout)
	defer cancel()

	if err := p.handler.HandleMailEvent(ctx, event); err != nil {
		p.logger.Error("[InProcess] Failed to handle mail event",
			slog.String("type", string(event.Type)),
			slog.String("request_id", event.RequestID),
			slog.Any("error", err),
		)
	}
}

// Close stops accepting events and waits for queued ones to drain
func (p *inProcessPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.events)
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}
