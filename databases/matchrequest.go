package databases

// go generate: mockery --name MatchRequestDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bennington-rising/bennington-rising-api/models"
)

const matchRequestName = "matchRequests"

// MatchRequestDatabase contains the methods to use with the matchRequest database
type MatchRequestDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.MatchRequest, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MatchRequest, error)
	InsertOne(ctx context.Context, matchRequest models.MatchRequest, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type matchRequestDatabase struct {
	db DatabaseHelper
}

// NewMatchRequestDatabase initializes a new instance of matchRequest database with the provided db connection
func NewMatchRequestDatabase(db DatabaseHelper) MatchRequestDatabase {
	return &matchRequestDatabase{
		db: db,
	}
}

func (m *matchRequestDatabase) FindOne(ctx context.Context, filter interface{}) (*models.MatchRequest, error) {
	matchRequest := &models.MatchRequest{}
	err := m.db.Collection(matchRequestName).FindOne(ctx, filter).Decode(&matchRequest)
	if err != nil {
		return nil, err
	}
	return matchRequest, nil
}

func (m *matchRequestDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MatchRequest, error) {
	var matchRequests []models.MatchRequest
	cur, err := m.db.Collection(matchRequestName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&matchRequests)
	if err != nil {
		return nil, err
	}
	return matchRequests, nil
}

func (m *matchRequestDatabase) InsertOne(ctx context.Context, matchRequest models.MatchRequest, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := m.db.Collection(matchRequestName).InsertOne(ctx, matchRequest, opts...)
	return res, err
}

func (m *matchRequestDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return m.db.Collection(matchRequestName).UpdateOne(ctx, filter, update, opts...)
}

func (m *matchRequestDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return m.db.Collection(matchRequestName).CountDocuments(ctx, filter, opts...)
}
