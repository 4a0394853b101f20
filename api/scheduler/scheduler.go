package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/databases"
	"github.com/bennington-rising/bennington-rising-api/matchflow"
)

// Scheduler runs the periodic match request sweep
type Scheduler struct {
	cron       *cron.Cron
	Engine     *matchflow.Engine
	LockDB     databases.SchedulerLockDatabase
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(engine *matchflow.Engine, lockDB databases.SchedulerLockDatabase) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		Engine:     engine,
		LockDB:     lockDB,
		instanceID: instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Reminders land at the 36 hour mark and consent windows close at 48 hours,
	// so a 15 minute cadence keeps both close to on time
	_, err := s.cron.AddFunc("@every 15m", s.runSweep)
	if err != nil {
		zap.S().Errorw("failed to register match sweep job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Match sweep scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Match sweep scheduler stopped")
}

// runSweep runs the resend, reminder, and expiry scans under a distributed lock
// so only one instance sweeps at a time
func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Try to acquire distributed lock (10 minute TTL)
	acquired, err := s.LockDB.TryAcquireLock(ctx, "match_sweep_job", s.instanceID, 10*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for match sweep job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("Match sweep already running on another instance, skipping")
		return
	}
	// Release under a fresh context so the lease is freed even when the sweep
	// runs out its own deadline
	defer func() {
		releaseCtx, releaseCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer releaseCancel()
		if err := s.LockDB.ReleaseLock(releaseCtx, "match_sweep_job", s.instanceID); err != nil {
			zap.S().Errorw("failed to release match sweep lock", "error", err)
		}
	}()

	zap.S().Infow("Running match sweep job", "instance", s.instanceID)

	result := s.Engine.Sweep(ctx)

	zap.S().Infow("Match sweep complete",
		"resends", result.Resends,
		"reminders", result.Reminders,
		"expired", result.Expired,
	)
}
