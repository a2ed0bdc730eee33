package utils

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// BackgroundProcessManager owns the bot's long-running loops (deadline sweep,
// income tick, cooldown pruning) and its delayed fire-and-forget tasks, and
// stops all of them together on shutdown.
type BackgroundProcessManager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	processes map[string]context.CancelFunc
	mu        sync.Mutex
}

func NewBackgroundProcessManager() *BackgroundProcessManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &BackgroundProcessManager{
		ctx:       ctx,
		cancel:    cancel,
		processes: make(map[string]context.CancelFunc),
	}
}

// StartProcess runs fn under name until fn returns or the manager shuts down.
// Starting a name that is already running replaces the old process.
func (bpm *BackgroundProcessManager) StartProcess(name string, fn func(ctx context.Context)) {
	bpm.mu.Lock()
	if cancel, exists := bpm.processes[name]; exists {
		slog.Warn("Process already running, replacing it",
			slog.String("type", "sys"),
			slog.String("process", name))
		cancel()
	}
	processCtx, processCancel := context.WithCancel(bpm.ctx)
	bpm.processes[name] = processCancel
	bpm.mu.Unlock()

	bpm.run(name, func() {
		slog.Info("Starting background process",
			slog.String("type", "sys"),
			slog.String("process", name))
		fn(processCtx)
		slog.Info("Background process ended",
			slog.String("type", "sys"),
			slog.String("process", name))
	})
}

// StartTicker runs fn every interval until shutdown. fn does not run at start.
func (bpm *BackgroundProcessManager) StartTicker(name string, interval time.Duration, fn func(ctx context.Context)) {
	bpm.StartProcess(name, func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	})
}

// After runs fn once after delay unless the manager shuts down first. Nothing
// about it survives a restart.
func (bpm *BackgroundProcessManager) After(delay time.Duration, fn func(ctx context.Context)) {
	bpm.run("delayed", func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-bpm.ctx.Done():
		case <-timer.C:
			fn(bpm.ctx)
		}
	})
}

func (bpm *BackgroundProcessManager) run(name string, fn func()) {
	bpm.wg.Add(1)
	go func() {
		defer bpm.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Background process panic",
					slog.String("type", "error"),
					slog.String("process", name),
					slog.Any("panic", r))
			}
		}()
		fn()
	}()
}

// Shutdown cancels everything and waits up to timeout for it to return.
func (bpm *BackgroundProcessManager) Shutdown(timeout time.Duration) error {
	bpm.mu.Lock()
	count := len(bpm.processes)
	bpm.mu.Unlock()
	slog.Info("Shutting down background processes",
		slog.String("type", "sys"),
		slog.Int("process_count", count))

	bpm.cancel()

	done := make(chan struct{})
	go func() {
		bpm.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		slog.Warn("Timeout waiting for background processes to stop",
			slog.String("type", "sys"),
			slog.Duration("timeout", timeout))
		return context.DeadlineExceeded
	}
}

func (bpm *BackgroundProcessManager) ProcessCount() int {
	bpm.mu.Lock()
	defer bpm.mu.Unlock()
	return len(bpm.processes)
}
