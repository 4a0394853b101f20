package databases

// go generate: mockery --name AnswerDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bennington-rising/bennington-rising-api/models"
)

const answerName = "answers"

// AnswerDatabase contains the methods to use with the answer database.
// Answers are immutable once written, so there is no update method.
type AnswerDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Answer, error)
	InsertOne(ctx context.Context, answer models.Answer, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type answerDatabase struct {
	db DatabaseHelper
}

// NewAnswerDatabase initializes a new instance of answer database with the provided db connection
func NewAnswerDatabase(db DatabaseHelper) AnswerDatabase {
	return &answerDatabase{
		db: db,
	}
}

func (a *answerDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Answer, error) {
	answer := &models.Answer{}
	err := a.db.Collection(answerName).FindOne(ctx, filter).Decode(&answer)
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (a *answerDatabase) InsertOne(ctx context.Context, answer models.Answer, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := a.db.Collection(answerName).InsertOne(ctx, answer, opts...)
	return res, err
}
