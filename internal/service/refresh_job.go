package service

import (
	"context"
	"sync"
	"time"
)

type notesRefreshJob struct {
	notes NotesService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that calls notes.Load on a ticker. The job is
// idle until Start is called. Every reload passes through the store's
// sequence-number guard, so a tick can never clobber a newer user-initiated
// result.
func NewRefreshJob(notes NotesService) RefreshJob {
	return &notesRefreshJob{notes: notes}
}

// Start implements [RefreshJob]. It stops any previously running job, then
// launches a background goroutine that reloads every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *notesRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.notes.Load(jobCtx)
			}
		}
	}()
}

// Stop implements [RefreshJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *notesRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
