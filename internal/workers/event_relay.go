package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/pkg/e"
)

type EventSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.RequestEvent, error)
}

type EventSink interface {
	Send(ctx context.Context, ev domain.RequestEvent) error
}

// EventRelay pops request events off the queue and hands them to a pool of
// workers that deliver them to the sink.
type EventRelay struct {
	source     EventSource
	sink       EventSink
	logger     *slog.Logger
	jobs       chan domain.RequestEvent
	poolSize   int
	popTimeout time.Duration
	backoff    time.Duration
}

func NewEventRelay(source EventSource, sink EventSink, poolSize int, logger *slog.Logger) *EventRelay {
	if poolSize <= 0 {
		poolSize = 1
	}
	return &EventRelay{
		source:     source,
		sink:       sink,
		logger:     logger,
		jobs:       make(chan domain.RequestEvent, 100),
		poolSize:   poolSize,
		popTimeout: 5 * time.Second,
		backoff:    500 * time.Millisecond,
	}
}

// Run blocks until ctx is done and every worker has returned.
func (w *EventRelay) Run(ctx context.Context) {
	w.logger.Info("event relay started", slog.Int("workers", w.poolSize))

	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(w.jobs)
		w.producer(ctx)
	}()
	wg.Wait()

	w.logger.Info("event relay stopped")
}

func (w *EventRelay) producer(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		ev, err := w.source.BRPop(ctx, w.popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrEventQueueEmpty) || ctx.Err() != nil {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			select {
			case <-time.After(w.backoff):
			case <-ctx.Done():
			}
			continue
		}

		select {
		case w.jobs <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (w *EventRelay) worker(ctx context.Context) {
	for ev := range w.jobs {
		if err := w.sink.Send(ctx, ev); err != nil {
			w.logger.Warn("event delivery failed",
				slog.String("type", string(ev.Type)),
				slog.String("request_id", ev.RequestID.String()),
				slog.Any("error", err),
			)
		}
	}
}
