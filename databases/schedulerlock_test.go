package databases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bennington-rising/bennington-rising-api/databases"
	"github.com/bennington-rising/bennington-rising-api/databases/mocks"
)

func TestSchedulerLockDatabase_TryAcquireLock(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)
	collectionHelper.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)
	dbHelper.On("Collection", "schedulerLocks").Return(collectionHelper)

	lockDB := databases.NewSchedulerLockDatabase(dbHelper)

	acquired, err := lockDB.TryAcquireLock(context.Background(), "match_sweep_job", "instance-1", 10*time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestSchedulerLockDatabase_TryAcquireLockInsertError(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)
	collectionHelper.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	dbHelper.On("Collection", "schedulerLocks").Return(collectionHelper)

	lockDB := databases.NewSchedulerLockDatabase(dbHelper)

	acquired, err := lockDB.TryAcquireLock(context.Background(), "match_sweep_job", "instance-1", 10*time.Minute)
	assert.Error(t, err)
	assert.False(t, acquired)
}

func TestSchedulerLockDatabase_ReleaseLock(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)
	dbHelper.On("Collection", "schedulerLocks").Return(collectionHelper)

	lockDB := databases.NewSchedulerLockDatabase(dbHelper)

	err := lockDB.ReleaseLock(context.Background(), "match_sweep_job", "instance-1")
	assert.NoError(t, err)
}
