package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/storage"
	"github.com/dukerupert/wardrobe/internal/telemetry"
)

// Job type constants for image jobs
const (
	JobTypeDeleteImage       = "image:delete"
	JobTypeSweepOrphanImages = "image:sweep_orphans"
)

// QueueImages is the queue image jobs are enqueued on.
const QueueImages = "images"

// DeleteImagePayload identifies the image file left behind by a failed delete.
type DeleteImagePayload struct {
	ProductID int64  `json:"product_id"`
	Key       string `json:"key"`
}

// EnqueueDeleteImage schedules another attempt at removing a product image
// whose storage delete failed.
func EnqueueDeleteImage(ctx context.Context, q repository.Querier, productID int64) error {
	payloadJSON, err := json.Marshal(DeleteImagePayload{
		ProductID: productID,
		Key:       domain.ImageKey(productID),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	_, err = q.EnqueueJob(ctx, repository.EnqueueJobParams{
		JobType:        JobTypeDeleteImage,
		Queue:          QueueImages,
		Payload:        payloadJSON,
		Priority:       50,
		MaxRetries:     5,
		TimeoutSeconds: 30,
		ScheduledAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})
	return err
}

// EnqueueSweepOrphanImages schedules a sweep unless one is already pending.
// It reports whether a job was enqueued.
func EnqueueSweepOrphanImages(ctx context.Context, q repository.Querier) (bool, error) {
	pending, err := q.HasPendingJob(ctx, JobTypeSweepOrphanImages)
	if err != nil {
		return false, fmt.Errorf("failed to check pending sweep: %w", err)
	}
	if pending {
		return false, nil
	}

	_, err = q.EnqueueJob(ctx, repository.EnqueueJobParams{
		JobType:        JobTypeSweepOrphanImages,
		Queue:          QueueImages,
		Payload:        []byte("{}"),
		Priority:       10, // maintenance
		MaxRetries:     1,  // the next scheduled sweep covers a failure
		TimeoutSeconds: 300,
		ScheduledAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// SweepResult summarizes an orphan sweep.
type SweepResult struct {
	Scanned int `json:"scanned"`
	Deleted int `json:"deleted"`
}

// ProcessImageJob runs an image job against the image store.
func ProcessImageJob(ctx context.Context, job *repository.Job, q repository.Querier, store storage.Storage, logger *slog.Logger) error {
	switch job.JobType {
	case JobTypeDeleteImage:
		var payload DeleteImagePayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal delete image payload: %w", err)
		}
		return processDeleteImage(ctx, payload, store)

	case JobTypeSweepOrphanImages:
		result, err := SweepOrphanImages(ctx, q, store, logger)
		if err != nil {
			return err
		}
		logger.Info("image sweep finished", "scanned", result.Scanned, "deleted", result.Deleted)
		return nil

	default:
		return fmt.Errorf("unknown image job type: %s", job.JobType)
	}
}

// IsImageJob checks if a job type is an image job
func IsImageJob(jobType string) bool {
	switch jobType {
	case JobTypeDeleteImage, JobTypeSweepOrphanImages:
		return true
	}
	return false
}

func processDeleteImage(ctx context.Context, payload DeleteImagePayload, store storage.Storage) error {
	err := store.Delete(ctx, payload.Key)
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to delete image %s: %w", payload.Key, err)
	}
	return nil
}

// SweepOrphanImages removes stored "<id>.png" images whose product no longer
// exists. Keys not following that pattern are left alone.
func SweepOrphanImages(ctx context.Context, q repository.Querier, store storage.Storage, logger *slog.Logger) (*SweepResult, error) {
	keys, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	ids, err := q.ListProductIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	live := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		live[id] = struct{}{}
	}

	result := &SweepResult{}
	for _, key := range keys {
		productID, ok := productIDFromKey(key)
		if !ok {
			continue
		}
		result.Scanned++
		if _, exists := live[productID]; exists {
			continue
		}

		if err := store.Delete(ctx, key); err != nil && !storage.IsNotFound(err) {
			logger.Warn("failed to delete orphaned image", "key", key, "error", err)
			continue
		}
		result.Deleted++
		if telemetry.Business != nil {
			telemetry.Business.ImagesSwept.WithLabelValues().Inc()
		}
	}

	return result, nil
}

func productIDFromKey(key string) (int64, bool) {
	name, ok := strings.CutSuffix(key, ".png")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(name, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
