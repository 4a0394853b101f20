package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Mentor holds the structure for the mentors collection in mongo
type Mentor struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details MentorDetails      `json:"mentor" bson:"mentor"`
	Version int32              `json:"__v" bson:"__v"`
}

// MentorDetails holds the structure for the inner mentor structure as defined
// in the mentors collection in mongo. A mentor record represents a Team
// Coordinator pair presenting one project. CustomQuestion is the prompt shown
// to Fellows on the request form; its text is snapshotted into the Answer at
// request time. MenteeRequests/ApprovedMentees hold mentee IDs as hex strings
// and mirror the lists on the mentee side. A mentor with a non-empty
// ApprovedMentees list is at capacity and is filtered out of the directory.
type MentorDetails struct {
	FirstName          string             `json:"firstName" bson:"firstName"`
	LastName           string             `json:"lastName" bson:"lastName"`
	PartnerName        string             `json:"partnerName" bson:"partnerName"`
	Email              string             `json:"email" bson:"email"`
	ProjectTitle       string             `json:"projectTitle" bson:"projectTitle"`
	ProjectDescription string             `json:"projectDescription" bson:"projectDescription"`
	CustomQuestion     string             `json:"customQuestion" bson:"customQuestion"`
	MenteeRequests     []string           `json:"menteeRequests" bson:"menteeRequests"`
	ApprovedMentees    []string           `json:"approvedMentees" bson:"approvedMentees"`
	CreatedAt          primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt          primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// FullName returns the coordinator's display name for email templates.
func (d MentorDetails) FullName() string {
	return d.FirstName + " " + d.LastName
}

// AtCapacity reports whether the mentor team already has a confirmed Fellow.
func (d MentorDetails) AtCapacity() bool {
	return len(d.ApprovedMentees) > 0
}
