package databases

// go generate: mockery --name MenteeDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bennington-rising/bennington-rising-api/models"
)

const menteeName = "mentees"

// MenteeDatabase contains the methods to use with the mentee database
type MenteeDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Mentee, error)
	InsertOne(ctx context.Context, mentee models.Mentee, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type menteeDatabase struct {
	db DatabaseHelper
}

// NewMenteeDatabase initializes a new instance of mentee database with the provided db connection
func NewMenteeDatabase(db DatabaseHelper) MenteeDatabase {
	return &menteeDatabase{
		db: db,
	}
}

func (m *menteeDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Mentee, error) {
	mentee := &models.Mentee{}
	err := m.db.Collection(menteeName).FindOne(ctx, filter).Decode(&mentee)
	if err != nil {
		return nil, err
	}
	return mentee, nil
}

func (m *menteeDatabase) InsertOne(ctx context.Context, mentee models.Mentee, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := m.db.Collection(menteeName).InsertOne(ctx, mentee, opts...)
	return res, err
}

func (m *menteeDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return m.db.Collection(menteeName).UpdateOne(ctx, filter, update, opts...)
}
