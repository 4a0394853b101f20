package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Match request lifecycle statuses. A request holds exactly one status at a
// time; the last four are terminal and permit no further transition.
const (
	StatusPendingGuardianConsent = "pending_guardian_consent"
	StatusPendingMentorApproval  = "pending_mentor_approval"
	StatusConfirmed              = "confirmed"
	StatusDeclinedByGuardian     = "declined_by_guardian"
	StatusDeclinedByMentor       = "declined_by_mentor"
	StatusConsentWindowExpired   = "consent_window_expired"
)

// ActiveStatuses lists the statuses during which a mentee/mentor pair is
// considered to have a live request, blocking creation of a duplicate. Note
// confirmed counts here: a matched pair cannot open a second request.
var ActiveStatuses = []string{
	StatusPendingGuardianConsent,
	StatusPendingMentorApproval,
	StatusConfirmed,
}

// MatchRequest holds the structure for the matchRequests collection in mongo
type MatchRequest struct {
	ID      primitive.ObjectID  `json:"_id" bson:"_id"`
	Details MatchRequestDetails `json:"matchRequest" bson:"matchRequest"`
	Version int32               `json:"__v" bson:"__v"`
}

// MatchRequestDetails holds the structure for the inner matchRequest structure
// as defined in the matchRequests collection in mongo
type MatchRequestDetails struct {
	MenteeID                string              `json:"menteeID" bson:"menteeID"`
	MentorID                string              `json:"mentorID" bson:"mentorID"`
	AnswerID                string              `json:"answerID" bson:"answerID"`
	Status                  string              `json:"status" bson:"status"`
	RequestedAt             primitive.DateTime  `json:"requestedAt" bson:"requestedAt"`
	ConsentDeadline         primitive.DateTime  `json:"consentDeadline" bson:"consentDeadline"`
	GuardianConsentAt       *primitive.DateTime `json:"guardianConsentAt" bson:"guardianConsentAt"`
	MentorDecisionAt        *primitive.DateTime `json:"mentorDecisionAt" bson:"mentorDecisionAt"`
	ConfirmedAt             *primitive.DateTime `json:"confirmedAt" bson:"confirmedAt"`
	DeclinedAt              *primitive.DateTime `json:"declinedAt" bson:"declinedAt"`
	ExpiredAt               *primitive.DateTime `json:"expiredAt" bson:"expiredAt"`
	GuardianConsentReceived bool                `json:"guardianConsentReceived" bson:"guardianConsentReceived"`
	Guardian                *GuardianInfo       `json:"guardian" bson:"guardian"`
	RemindersSent           int                 `json:"remindersSent" bson:"remindersSent"`
	LastReminderAt          *primitive.DateTime `json:"lastReminderAt" bson:"lastReminderAt"`
	EmailsSent              EmailsSent          `json:"emailsSent" bson:"emailsSent"`
	CreatedAt               primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	UpdatedAt               primitive.DateTime  `json:"updatedAt" bson:"updatedAt"`
}

// GuardianInfo is the contact and emergency-contact snapshot captured at the
// moment the guardian records a consent decision, approved or declined. It is
// never present before a decision.
type GuardianInfo struct {
	Name                  string `json:"name" bson:"name"`
	Email                 string `json:"email" bson:"email"`
	Phone                 string `json:"phone" bson:"phone"`
	Relationship          string `json:"relationship" bson:"relationship"`
	EmergencyContactName  string `json:"emergencyContactName" bson:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone" bson:"emergencyContactPhone"`
}

// EmailsSent tracks which idempotency-sensitive notifications have been
// delivered for a request. A flag flips true only after a confirmed send, so
// an unset flag on a still-pending request marks that email retry-eligible.
type EmailsSent struct {
	UnderReviewToMentor      bool `json:"underReviewToMentor" bson:"underReviewToMentor"`
	ConsentNeededToMentee    bool `json:"consentNeededToMentee" bson:"consentNeededToMentee"`
	ConsentRequestToGuardian bool `json:"consentRequestToGuardian" bson:"consentRequestToGuardian"`
	FinalReminderToMentee    bool `json:"finalReminderToMentee" bson:"finalReminderToMentee"`
	FinalReminderToGuardian  bool `json:"finalReminderToGuardian" bson:"finalReminderToGuardian"`
}

// Terminal reports whether the request has reached a terminal status.
func (d MatchRequestDetails) Terminal() bool {
	switch d.Status {
	case StatusConfirmed, StatusDeclinedByGuardian, StatusDeclinedByMentor, StatusConsentWindowExpired:
		return true
	}
	return false
}
