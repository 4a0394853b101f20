package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SchedulerLock is a short-lived lease stored in the schedulerLocks collection
// so that only one instance runs a given background job at a time.
type SchedulerLock struct {
	ID         string             `json:"_id" bson:"_id"` // job name
	InstanceID string             `json:"instanceID" bson:"instanceID"`
	ExpiresAt  primitive.DateTime `json:"expiresAt" bson:"expiresAt"`
	AcquiredAt primitive.DateTime `json:"acquiredAt" bson:"acquiredAt"`
}
