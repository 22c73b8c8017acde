package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweep is one periodic maintenance pass. RunOnce must be safe to call again
// after an error; sweeps own any state they keep between passes.
type Sweep interface {
	Name() string
	Interval() time.Duration
	RunOnce(ctx context.Context) error
}

// Scheduler drives each sweep on its own ticker goroutine.
type Scheduler struct {
	sweeps []Sweep

	mu     sync.Mutex
	cancel context.CancelFunc
	done   sync.WaitGroup
}

func New(sweeps ...Sweep) *Scheduler {
	return &Scheduler{sweeps: sweeps}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	for _, sw := range s.sweeps {
		s.done.Add(1)
		go s.run(runCtx, sw)
	}
	slog.Info("scheduler started", "sweeps", len(s.sweeps))
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		s.done.Wait()
		slog.Info("scheduler stopped")
	}
}

func (s *Scheduler) run(ctx context.Context, sw Sweep) {
	defer s.done.Done()

	ticker := time.NewTicker(sw.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sw.RunOnce(ctx); err != nil {
				slog.Error("sweep failed", "sweep", sw.Name(), "error", err.Error())
			}
		}
	}
}
