package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	dbmocks "github.com/bennington-rising/bennington-rising-api/databases/mocks"
	"github.com/bennington-rising/bennington-rising-api/matchflow"
	"github.com/bennington-rising/bennington-rising-api/models"
	notifmocks "github.com/bennington-rising/bennington-rising-api/notifications/mocks"
)

func newTestScheduler() (*Scheduler, *dbmocks.MatchRequestDatabase, *dbmocks.SchedulerLockDatabase) {
	matchDB := &dbmocks.MatchRequestDatabase{}
	lockDB := &dbmocks.SchedulerLockDatabase{}
	engine := &matchflow.Engine{
		MatchDB:  matchDB,
		AnswerDB: &dbmocks.AnswerDatabase{},
		MenteeDB: &dbmocks.MenteeDatabase{},
		MentorDB: &dbmocks.MentorDatabase{},
		Notifier: &notifmocks.Gateway{},
	}
	return NewScheduler(engine, lockDB), matchDB, lockDB
}

func TestRunSweepHoldsLock(t *testing.T) {
	s, matchDB, lockDB := newTestScheduler()

	lockDB.On("TryAcquireLock", mock.Anything, "match_sweep_job", s.instanceID, mock.Anything).Return(true, nil)
	lockDB.On("ReleaseLock", mock.Anything, "match_sweep_job", s.instanceID).Return(nil)
	matchDB.On("Find", mock.Anything, mock.Anything).Return([]models.MatchRequest{}, nil)

	s.runSweep()

	lockDB.AssertExpectations(t)
	matchDB.AssertNumberOfCalls(t, "Find", 3)
}

func TestRunSweepReleasesLockOnFreshContext(t *testing.T) {
	s, matchDB, lockDB := newTestScheduler()

	lockDB.On("TryAcquireLock", mock.Anything, "match_sweep_job", s.instanceID, mock.Anything).Return(true, nil)
	lockDB.On("ReleaseLock", mock.Anything, "match_sweep_job", s.instanceID).Return(nil).Run(func(args mock.Arguments) {
		// the release must not ride the sweep's context, or a sweep that runs
		// out its deadline would leave the lease held until the TTL
		ctx := args.Get(0).(context.Context)
		assert.NoError(t, ctx.Err())
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.LessOrEqual(t, time.Until(deadline), 30*time.Second)
	})
	matchDB.On("Find", mock.Anything, mock.Anything).Return([]models.MatchRequest{}, nil)

	s.runSweep()

	lockDB.AssertExpectations(t)
}

func TestRunSweepSkipsWhenLockHeldElsewhere(t *testing.T) {
	s, matchDB, lockDB := newTestScheduler()

	lockDB.On("TryAcquireLock", mock.Anything, "match_sweep_job", s.instanceID, mock.Anything).Return(false, nil)

	s.runSweep()

	matchDB.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	lockDB.AssertNotCalled(t, "ReleaseLock", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewSchedulerGeneratesInstanceID(t *testing.T) {
	s, _, _ := newTestScheduler()
	assert.NotEmpty(t, s.instanceID)
}
