// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/adapter"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

type mailJob struct {
	msg    models.EmailMessage
	logger *logger.Logger
}

// MailWorker delivers notification messages in the background through a
// bounded queue served by a fixed number of goroutines. Each delivery is
// limited by the configured timeout; failures are logged and dropped.
type MailWorker struct {
	mailer  adapter.Mailer
	logger  *logger.Logger
	workers int
	timeout time.Duration

	mu      sync.RWMutex
	queue   chan mailJob
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewMailWorker builds a MailWorker sized by workersCfg and bounded by
// mailCfg.Timeout.
func NewMailWorker(mailer adapter.Mailer, workersCfg config.Workers, mailCfg config.Mail, logger *logger.Logger) *MailWorker {
	workers := max(workersCfg.MailWorkers, 1)
	queueSize := max(workersCfg.MailQueueSize, 1)

	return &MailWorker{
		mailer:  mailer,
		logger:  logger,
		workers: workers,
		timeout: mailCfg.Timeout,
		queue:   make(chan mailJob, queueSize),
	}
}

// Run starts the delivery goroutines. Deliveries keep ctx values such as
// the logger but are not cancelled with it; use Stop to shut down.
func (w *MailWorker) Run(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.stopped {
		return
	}
	w.started = true

	base := context.WithoutCancel(ctx)
	for range w.workers {
		w.wg.Go(func() {
			for job := range w.queue {
				w.deliver(base, job)
			}
		})
	}

	w.logger.Info().Str("func", "MailWorker.Run").Int("workers", w.workers).Int("queue_size", cap(w.queue)).Msg("mail worker started")
}

// Enqueue schedules msg for delivery without blocking. It returns false when
// the queue is full or the worker is stopped; the message is then dropped.
func (w *MailWorker) Enqueue(ctx context.Context, msg models.EmailMessage) bool {
	log := logger.FromContext(ctx)

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		log.Warn().Str("func", "MailWorker.Enqueue").Msg("mail worker is stopped, notification dropped")
		return false
	}

	select {
	case w.queue <- mailJob{msg: msg, logger: log}:
		return true
	default:
		log.Warn().Str("func", "MailWorker.Enqueue").Int("queue_size", cap(w.queue)).Msg("mail queue is full, notification dropped")
		return false
	}
}

// Stop closes the queue, lets the goroutines deliver what is already queued
// and waits for them.
func (w *MailWorker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.queue)
	w.mu.Unlock()

	w.wg.Wait()
	w.logger.Info().Str("func", "MailWorker.Stop").Msg("mail worker stopped")
}

func (w *MailWorker) deliver(base context.Context, job mailJob) {
	ctx := base
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(base, w.timeout)
		defer cancel()
	}

	if err := w.mailer.Send(ctx, job.msg); err != nil {
		job.logger.Err(err).
			Str("func", "MailWorker.deliver").
			Strs("to", job.msg.To).
			Msg("failed to deliver notification")
		return
	}

	job.logger.Info().
		Str("func", "MailWorker.deliver").
		Int("recipients", len(job.msg.To)).
		Msg("notification delivered")
}
