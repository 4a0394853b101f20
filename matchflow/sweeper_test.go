package matchflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bennington-rising/bennington-rising-api/matchflow"
	"github.com/bennington-rising/bennington-rising-api/models"
	"github.com/bennington-rising/bennington-rising-api/notifications"
)

// the three scans are distinguished by their filter shape
func isResendFilter(f bson.M) bool {
	_, ok := f["$or"]
	return ok
}

func isReminderFilter(f bson.M) bool {
	_, ok := f["matchRequest.emailsSent.finalReminderToMentee"]
	return ok
}

func isExpiryFilter(f bson.M) bool {
	if isResendFilter(f) || isReminderFilter(f) {
		return false
	}
	_, ok := f["matchRequest.consentDeadline"]
	return ok
}

func TestSweepEmpty(t *testing.T) {
	e, m := newTestEngine(time.Now())

	m.matchDB.On("Find", mock.Anything, mock.Anything).Return([]models.MatchRequest{}, nil)

	result := e.Sweep(context.Background())

	assert.Equal(t, 0, result.Resends)
	assert.Equal(t, 0, result.Reminders)
	assert.Equal(t, 0, result.Expired)
	m.notifier.AssertExpectations(t)
}

func TestSweepResendScan(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	e, m := newTestEngine(now)

	// guardian email never made it out at creation time
	mr := *pendingMatchRequest(t, now.Add(-time.Hour))
	mr.Details.EmailsSent.UnderReviewToMentor = true
	mr.Details.EmailsSent.ConsentNeededToMentee = true

	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isResendFilter)).Return([]models.MatchRequest{mr}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isReminderFilter)).Return([]models.MatchRequest{}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isExpiryFilter)).Return([]models.MatchRequest{}, nil)
	m.menteeDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentee(t), nil)
	m.mentorDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentor(t), nil)
	m.notifier.On("SendConsentRequest", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(matched(1), nil)

	result := e.Sweep(context.Background())

	assert.Equal(t, 1, result.Resends)

	// only the missing email goes out again
	m.notifier.AssertCalled(t, "SendConsentRequest", mock.Anything, mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "SendMatchUnderReview", mock.Anything, mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "SendConsentNeeded", mock.Anything, mock.Anything, mock.Anything)

	m.matchDB.AssertCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.MatchedBy(func(u bson.M) bool {
		set, ok := u["$set"].(bson.M)
		return ok && set["matchRequest.emailsSent.consentRequestToGuardian"] == true
	}))
}

func TestSweepReminderScan(t *testing.T) {
	requested := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	now := requested.Add(matchflow.ReminderAfter + time.Minute)
	e, m := newTestEngine(now)

	mr := *pendingMatchRequest(t, requested)

	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isResendFilter)).Return([]models.MatchRequest{}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isReminderFilter)).Return([]models.MatchRequest{mr}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isExpiryFilter)).Return([]models.MatchRequest{}, nil)
	m.menteeDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentee(t), nil)
	m.mentorDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentor(t), nil)
	m.notifier.On("SendFinalReminderToMentee", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("SendFinalReminderToGuardian", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(matched(1), nil)

	result := e.Sweep(context.Background())

	assert.Equal(t, 1, result.Reminders)

	// the guardian reminder links back to the consent form
	m.notifier.AssertCalled(t, "SendFinalReminderToGuardian", mock.Anything,
		notifications.Recipient{Name: "Dana Lane", Email: "dana@example.com"},
		mock.MatchedBy(func(d notifications.FinalReminderGuardian) bool {
			return d.ConsentURL == "https://app.benningtonrising.org/consent/"+mr.ID.Hex()
		}))

	// bookkeeping: both flags flip, remindersSent increments once
	m.matchDB.AssertCalled(t, "UpdateOne", mock.Anything, bson.M{"_id": mr.ID}, mock.MatchedBy(func(u bson.M) bool {
		set, okSet := u["$set"].(bson.M)
		inc, okInc := u["$inc"].(bson.M)
		if !okSet || !okInc {
			return false
		}
		return set["matchRequest.emailsSent.finalReminderToMentee"] == true &&
			set["matchRequest.emailsSent.finalReminderToGuardian"] == true &&
			inc["matchRequest.remindersSent"] == 1
	}))
}

func TestSweepReminderScanGuardianAlreadyReminded(t *testing.T) {
	requested := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	now := requested.Add(matchflow.ReminderAfter + time.Minute)
	e, m := newTestEngine(now)

	// a previous sweep reached the guardian but the mentee send failed
	mr := *pendingMatchRequest(t, requested)
	mr.Details.EmailsSent.FinalReminderToGuardian = true

	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isResendFilter)).Return([]models.MatchRequest{}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isReminderFilter)).Return([]models.MatchRequest{mr}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isExpiryFilter)).Return([]models.MatchRequest{}, nil)
	m.menteeDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentee(t), nil)
	m.mentorDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentor(t), nil)
	m.notifier.On("SendFinalReminderToMentee", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(matched(1), nil)

	result := e.Sweep(context.Background())

	assert.Equal(t, 1, result.Reminders)
	m.notifier.AssertNotCalled(t, "SendFinalReminderToGuardian", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepExpiryScan(t *testing.T) {
	requested := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	now := requested.Add(matchflow.ConsentWindow + time.Hour)
	e, m := newTestEngine(now)

	mr := *pendingMatchRequest(t, requested)
	// past the reminder mark too, but the reminder flag is set so only the
	// expiry scan picks it up
	mr.Details.EmailsSent = models.EmailsSent{
		UnderReviewToMentor:      true,
		ConsentNeededToMentee:    true,
		ConsentRequestToGuardian: true,
		FinalReminderToMentee:    true,
		FinalReminderToGuardian:  true,
	}

	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isResendFilter)).Return([]models.MatchRequest{}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isReminderFilter)).Return([]models.MatchRequest{}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isExpiryFilter)).Return([]models.MatchRequest{mr}, nil)
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(matched(1), nil)
	m.menteeDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentee(t), nil)
	m.mentorDB.On("FindOne", mock.Anything, mock.Anything).Return(testMentor(t), nil)
	m.menteeDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(matched(1), nil)
	m.mentorDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(matched(1), nil)
	m.notifier.On("SendConsentWindowClosed", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result := e.Sweep(context.Background())

	assert.Equal(t, 1, result.Expired)

	m.matchDB.AssertCalled(t, "UpdateOne", mock.Anything,
		bson.M{"_id": mr.ID, "matchRequest.status": models.StatusPendingGuardianConsent},
		mock.MatchedBy(func(u bson.M) bool {
			set := u["$set"].(bson.M)
			_, hasExpiredAt := set["matchRequest.expiredAt"]
			return set["matchRequest.status"] == models.StatusConsentWindowExpired && hasExpiredAt
		}))

	// the stale pair comes off both requested lists
	m.menteeDB.AssertCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.MatchedBy(func(u bson.M) bool {
		pull, ok := u["$pull"].(bson.M)
		return ok && pull["mentee.requestedMentors"] == mentorHex
	}))
	m.mentorDB.AssertCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.MatchedBy(func(u bson.M) bool {
		pull, ok := u["$pull"].(bson.M)
		return ok && pull["mentor.menteeRequests"] == menteeHex
	}))

	m.notifier.AssertCalled(t, "SendConsentWindowClosed", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepExpiryLostRace(t *testing.T) {
	requested := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	now := requested.Add(matchflow.ConsentWindow + time.Hour)
	e, m := newTestEngine(now)

	mr := *pendingMatchRequest(t, requested)

	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isResendFilter)).Return([]models.MatchRequest{}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isReminderFilter)).Return([]models.MatchRequest{}, nil)
	m.matchDB.On("Find", mock.Anything, mock.MatchedBy(isExpiryFilter)).Return([]models.MatchRequest{mr}, nil)
	// the guardian's decline landed between the scan and the update
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(matched(0), nil)

	result := e.Sweep(context.Background())

	// the transition was a no-op but the scan itself did not error
	assert.Equal(t, 1, result.Expired)
	m.notifier.AssertNotCalled(t, "SendConsentWindowClosed", mock.Anything, mock.Anything, mock.Anything)
	m.menteeDB.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}
