package databases

// go generate: mockery --name MentorDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bennington-rising/bennington-rising-api/models"
)

const mentorName = "mentors"

// MentorDatabase contains the methods to use with the mentor database
type MentorDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Mentor, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Mentor, error)
	InsertOne(ctx context.Context, mentor models.Mentor, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type mentorDatabase struct {
	db DatabaseHelper
}

// NewMentorDatabase initializes a new instance of mentor database with the provided db connection
func NewMentorDatabase(db DatabaseHelper) MentorDatabase {
	return &mentorDatabase{
		db: db,
	}
}

func (m *mentorDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Mentor, error) {
	mentor := &models.Mentor{}
	err := m.db.Collection(mentorName).FindOne(ctx, filter).Decode(&mentor)
	if err != nil {
		return nil, err
	}
	return mentor, nil
}

func (m *mentorDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Mentor, error) {
	var mentors []models.Mentor
	cur, err := m.db.Collection(mentorName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&mentors)
	if err != nil {
		return nil, err
	}
	return mentors, nil
}

func (m *mentorDatabase) InsertOne(ctx context.Context, mentor models.Mentor, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := m.db.Collection(mentorName).InsertOne(ctx, mentor, opts...)
	return res, err
}

func (m *mentorDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return m.db.Collection(mentorName).UpdateOne(ctx, filter, update, opts...)
}
