package databases

// go generate: mockery --name SchedulerLockDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bennington-rising/bennington-rising-api/models"
)

const schedulerLockName = "schedulerLocks"

// SchedulerLockDatabase hands out short-lived job leases so that only one
// instance runs a given background job at a time.
type SchedulerLockDatabase interface {
	TryAcquireLock(ctx context.Context, jobName, instanceID string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, jobName, instanceID string) error
}

type schedulerLockDatabase struct {
	db DatabaseHelper
}

// NewSchedulerLockDatabase initializes a new instance of schedulerLock database with the provided db connection
func NewSchedulerLockDatabase(db DatabaseHelper) SchedulerLockDatabase {
	return &schedulerLockDatabase{
		db: db,
	}
}

// TryAcquireLock attempts to take the lease for jobName. The lock document is
// keyed by job name, so a concurrent insert from another instance fails with a
// duplicate key error, which reports as not-acquired rather than a failure.
func (s *schedulerLockDatabase) TryAcquireLock(ctx context.Context, jobName, instanceID string, ttl time.Duration) (bool, error) {
	now := time.Now()

	// clear a stale lease left behind by a crashed instance
	err := s.db.Collection(schedulerLockName).DeleteOne(ctx, bson.M{
		"_id":       jobName,
		"expiresAt": bson.M{"$lt": primitive.NewDateTimeFromTime(now)},
	})
	if err != nil {
		return false, err
	}

	_, err = s.db.Collection(schedulerLockName).InsertOne(ctx, models.SchedulerLock{
		ID:         jobName,
		InstanceID: instanceID,
		ExpiresAt:  primitive.NewDateTimeFromTime(now.Add(ttl)),
		AcquiredAt: primitive.NewDateTimeFromTime(now),
	})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReleaseLock drops the lease if this instance still owns it.
func (s *schedulerLockDatabase) ReleaseLock(ctx context.Context, jobName, instanceID string) error {
	return s.db.Collection(schedulerLockName).DeleteOne(ctx, bson.M{
		"_id":        jobName,
		"instanceID": instanceID,
	})
}
