// Package worker runs queued background jobs and schedules the periodic
// orphaned image sweep.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"

	"github.com/dukerupert/wardrobe/internal/jobs"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/storage"
	"github.com/dukerupert/wardrobe/internal/telemetry"
)

// recordTimeout bounds writing a job's outcome once processing is over.
const recordTimeout = 10 * time.Second

type Config struct {
	WorkerID       string        // recorded on claimed rows; random when empty
	PollInterval   time.Duration // default 1s
	MaxConcurrency int           // default 2
	Queue          string        // empty claims from every queue

	// SweepInterval is how often an orphaned image sweep is enqueued.
	// Zero disables the scheduler.
	SweepInterval time.Duration
}

// Worker claims jobs from the jobs table and runs them.
type Worker struct {
	cfg     Config
	queries repository.Querier
	images  storage.Storage
	logger  *slog.Logger
}

func NewWorker(queries repository.Querier, images storage.Storage, cfg Config, logger *slog.Logger) *Worker {
	if cfg.WorkerID == "" {
		cfg.WorkerID = "worker-" + uuid.NewString()[:8]
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 2
	}
	return &Worker{
		cfg:     cfg,
		queries: queries,
		images:  images,
		logger:  logger.With("worker_id", cfg.WorkerID),
	}
}

// Start polls until ctx is cancelled and returns ctx.Err() once every claimed
// job has finished. Each tick starts at most one drainer, which keeps claiming
// while the queue has work, so a busy queue grows toward MaxConcurrency.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("worker starting",
		"queue", w.cfg.Queue,
		"poll_interval", w.cfg.PollInterval,
		"max_concurrency", w.cfg.MaxConcurrency,
		"sweep_interval", w.cfg.SweepInterval,
	)

	limit := w.cfg.MaxConcurrency
	if w.cfg.SweepInterval > 0 {
		limit++
	}
	var g errgroup.Group
	g.SetLimit(limit)

	if w.cfg.SweepInterval > 0 {
		g.Go(func() error {
			w.scheduleSweeps(ctx)
			return nil
		})
	}

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker shutting down")
			_ = g.Wait()
			return ctx.Err()
		case <-ticker.C:
			g.TryGo(func() error {
				for ctx.Err() == nil && w.claimAndProcess(ctx) {
				}
				return nil
			})
		}
	}
}

// scheduleSweeps enqueues a sweep right away and then on every tick.
// Enqueueing is a no-op while a sweep is still pending.
func (w *Worker) scheduleSweeps(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		enqueued, err := jobs.EnqueueSweepOrphanImages(ctx, w.queries)
		if err != nil && ctx.Err() == nil {
			w.logger.Error("failed to enqueue image sweep", "error", err)
		} else if enqueued {
			w.logger.Debug("image sweep enqueued")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// claimAndProcess runs at most one job and reports whether one was claimed.
func (w *Worker) claimAndProcess(ctx context.Context) bool {
	job, err := w.queries.ClaimNextJob(ctx, repository.ClaimNextJobParams{
		WorkerID: pgtype.Text{String: w.cfg.WorkerID, Valid: true},
		Queue:    w.cfg.Queue,
	})
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && ctx.Err() == nil {
			w.logger.Error("failed to claim job", "error", err)
		}
		return false
	}

	// A claimed job is finished and recorded even when shutdown starts.
	// processJob bounds the work by the job's timeout, recordTimeout the rest.
	ctx = context.WithoutCancel(ctx)
	log := w.logger.With("job_id", job.ID, "job_type", job.JobType)
	log.Info("processing job", "retry_count", job.RetryCount)

	start := time.Now()
	err = w.processJob(ctx, &job)
	observeJob(job.JobType, time.Since(start), err)

	ctx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	if err != nil {
		log.Error("job failed", "error", err)
		// FailJob reschedules with backoff until max_retries is used up.
		status, ferr := w.queries.FailJob(ctx, repository.FailJobParams{
			ID:           job.ID,
			ErrorMessage: pgtype.Text{String: err.Error(), Valid: true},
		})
		if ferr != nil {
			log.Error("failed to record job failure", "error", ferr)
		} else {
			log.Debug("job failure recorded", "status", status)
		}
		return true
	}

	if err := w.queries.CompleteJob(ctx, job.ID); err != nil {
		log.Error("failed to complete job", "error", err)
		return true
	}
	log.Info("job completed")
	return true
}

func (w *Worker) processJob(ctx context.Context, job *repository.Job) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(job.TimeoutSeconds)*time.Second)
	defer cancel()

	if jobs.IsImageJob(job.JobType) {
		return jobs.ProcessImageJob(ctx, job, w.queries, w.images, w.logger)
	}
	return fmt.Errorf("unknown job type: %s", job.JobType)
}

func observeJob(jobType string, took time.Duration, err error) {
	m := telemetry.Business
	if m == nil {
		return
	}
	m.JobDuration.WithLabelValues(jobType).Observe(took.Seconds())
	if err != nil {
		m.JobsFailed.WithLabelValues(jobType).Inc()
	} else {
		m.JobsProcessed.WithLabelValues(jobType).Inc()
	}
}
