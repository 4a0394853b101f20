package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProgramQuestion is the fixed question every Fellow answers when requesting a
// team, regardless of which mentor they request.
const ProgramQuestion = "What do you hope to get out of the Bennington Rising program?"

// Answer holds the structure for the answers collection in mongo
type Answer struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details AnswerDetails      `json:"answer" bson:"answer"`
	Version int32              `json:"__v" bson:"__v"`
}

// AnswerDetails holds the structure for the inner answer structure as defined
// in the answers collection in mongo. The mentor question is snapshotted at
// request time so later edits to a mentor's profile don't rewrite history.
// Answers are immutable after creation.
type AnswerDetails struct {
	MenteeID        string             `json:"menteeID" bson:"menteeID"`
	MentorID        string             `json:"mentorID" bson:"mentorID"`
	MentorQuestion  string             `json:"mentorQuestion" bson:"mentorQuestion"`
	MenteeAnswer    string             `json:"menteeAnswer" bson:"menteeAnswer"`
	ProgramQuestion string             `json:"programQuestion" bson:"programQuestion"`
	ProgramAnswer   string             `json:"programAnswer" bson:"programAnswer"`
	CreatedAt       primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
