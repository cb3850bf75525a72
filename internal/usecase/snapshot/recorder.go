package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
	"github.com/simaogato/wealthflow-forecast/internal/logger"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/forecast"
)

// Recorder periodically stores every user's net worth so history can be read back
type Recorder struct {
	AssetRepo    domain.AssetRepository
	SnapshotRepo domain.SnapshotRepository
	Forecast     *forecast.ForecastService
	Now          func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

// NewRecorder creates a new Recorder instance
func NewRecorder(assetRepo domain.AssetRepository, snapshotRepo domain.SnapshotRepository, forecastService *forecast.ForecastService) *Recorder {
	return &Recorder{
		AssetRepo:    assetRepo,
		SnapshotRepo: snapshotRepo,
		Forecast:     forecastService,
		Now:          time.Now,
	}
}

// RecordAll stores a net worth snapshot at `at` for every user owning records
// A failure for one user is logged and does not stop the others
// Returns the number of snapshots written
func (r *Recorder) RecordAll(ctx context.Context, at time.Time) (int, error) {
	userIDs, err := r.AssetRepo.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	written := 0
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		if err := r.record(ctx, userID, at); err != nil {
			logger.L().WithFields(log.Fields{
				"user_id": userID,
				"date":    at.Format(time.RFC3339),
			}).WithError(err).Warn("Failed to record net worth snapshot")
			continue
		}
		written++
	}

	return written, nil
}

func (r *Recorder) record(ctx context.Context, userID uuid.UUID, at time.Time) error {
	result, err := r.Forecast.GetNetWorth(ctx, userID, at)
	if err != nil {
		return err
	}

	snapshot := &domain.NetWorthSnapshot{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        at,
		Assets:      result.Assets,
		Liabilities: result.Liabilities,
		Total:       result.Total,
	}

	return r.SnapshotRepo.Add(ctx, snapshot)
}

// ListSnapshots returns a user's recorded snapshots between from and to, oldest first
func (r *Recorder) ListSnapshots(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.NetWorthSnapshot, error) {
	if to.Before(from) {
		return nil, domain.Invalidf("invalid range: from must not be after to")
	}
	return r.SnapshotRepo.ListByUser(ctx, userID, from, to)
}

// Start schedules RecordAll with the given cron spec (e.g. "@daily")
func (r *Recorder) Start(spec string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron != nil {
		return errors.New("snapshot recorder already started")
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, r.runScheduled); err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", spec, err)
	}
	c.Start()
	r.cron = c

	logger.L().WithField("schedule", spec).Info("Net worth snapshot recorder started")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (r *Recorder) Stop() {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	r.mu.Unlock()

	if c == nil {
		return
	}

	<-c.Stop().Done()
	logger.L().Info("Net worth snapshot recorder stopped")
}

func (r *Recorder) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	started := time.Now()
	written, err := r.RecordAll(ctx, r.Now())
	if err != nil {
		logger.L().WithError(err).Error("Net worth snapshot run failed")
		return
	}

	logger.L().WithFields(log.Fields{
		"written":  written,
		"duration": time.Since(started).String(),
	}).Info("Net worth snapshots recorded")
}
