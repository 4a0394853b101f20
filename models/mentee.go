package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Mentee holds the structure for the mentees collection in mongo
type Mentee struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details MenteeDetails      `json:"mentee" bson:"mentee"`
	Version int32              `json:"__v" bson:"__v"`
}

// MenteeDetails holds the structure for the inner mentee structure as defined
// in the mentees collection in mongo. RequestedMentors tracks mentors with an
// active request from this Fellow; ApprovedMentors tracks confirmed matches.
// Both lists hold mentor IDs as hex strings and mirror the request/approved
// lists on the mentor side.
type MenteeDetails struct {
	FirstName        string             `json:"firstName" bson:"firstName"`
	LastName         string             `json:"lastName" bson:"lastName"`
	Email            string             `json:"email" bson:"email"`
	School           string             `json:"school" bson:"school"`
	Grade            string             `json:"grade" bson:"grade"`
	Bio              string             `json:"bio" bson:"bio"`
	GuardianName     string             `json:"guardianName" bson:"guardianName"`
	GuardianEmail    string             `json:"guardianEmail" bson:"guardianEmail"`
	RequestedMentors []string           `json:"requestedMentors" bson:"requestedMentors"`
	ApprovedMentors  []string           `json:"approvedMentors" bson:"approvedMentors"`
	CreatedAt        primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt        primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// FullName returns the mentee's display name for email templates.
func (d MenteeDetails) FullName() string {
	return d.FirstName + " " + d.LastName
}
