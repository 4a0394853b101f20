package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bennington-rising/bennington-rising-api/databases"
	"github.com/bennington-rising/bennington-rising-api/databases/mocks"
	"github.com/bennington-rising/bennington-rising-api/models"
)

func TestMatchRequestDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.MatchRequest)
		(*arg).Details.Status = models.StatusPendingGuardianConsent
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "matchRequests").
		Return(collectionHelper)

	matchRequestDB := databases.NewMatchRequestDatabase(dbHelper)

	mr, err := matchRequestDB.FindOne(context.Background(), bson.M{"error": true})
	assert.Empty(t, mr)
	assert.EqualError(t, err, "mocked-error")

	mr, err = matchRequestDB.FindOne(context.Background(), bson.M{"error": false})
	assert.Equal(t, models.StatusPendingGuardianConsent, mr.Details.Status)
	assert.NoError(t, err)
}

func TestMatchRequestDatabase_Find(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.MatchRequest)
		*arg = []models.MatchRequest{
			{Details: models.MatchRequestDetails{Status: models.StatusPendingGuardianConsent}},
			{Details: models.MatchRequestDetails{Status: models.StatusPendingGuardianConsent}},
		}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), mock.Anything).
		Return(cursorHelper, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "matchRequests").
		Return(collectionHelper)

	matchRequestDB := databases.NewMatchRequestDatabase(dbHelper)

	mrs, err := matchRequestDB.Find(context.Background(), bson.M{"matchRequest.status": models.StatusPendingGuardianConsent})
	assert.NoError(t, err)
	assert.Len(t, mrs, 2)
}

func TestMatchRequestDatabase_CountDocuments(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), mock.Anything).
		Return(int64(1), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "matchRequests").
		Return(collectionHelper)

	matchRequestDB := databases.NewMatchRequestDatabase(dbHelper)

	count, err := matchRequestDB.CountDocuments(context.Background(), bson.M{
		"matchRequest.status": bson.M{"$in": models.ActiveStatuses},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
