package matchflow

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/models"
	"github.com/bennington-rising/bennington-rising-api/notifications"
)

// SweepResult reports what a single sweep did.
type SweepResult struct {
	Resends   int `json:"resends"`
	Reminders int `json:"reminders"`
	Expired   int `json:"expired"`
}

// Sweep runs the three periodic scans over in-flight match requests: retry
// unsent kickoff emails, send final reminders past the 36 hour mark, and
// force-expire requests past their consent deadline. The scans are
// independent; a failure in one is logged and does not stop the others.
// Sweep is idempotent: reminder sends are guarded by emailsSent flags and the
// expiry scan only selects requests still pending, so running it twice in a
// row does nothing the second time.
func (e *Engine) Sweep(ctx context.Context) SweepResult {
	runID := uuid.NewString()
	zap.S().Infow("match request sweep started", "runID", runID)

	result := SweepResult{
		Resends:   e.resendScan(ctx),
		Reminders: e.reminderScan(ctx),
		Expired:   e.expiryScan(ctx),
	}

	zap.S().Infow("match request sweep complete",
		"runID", runID,
		"resends", result.Resends,
		"reminders", result.Reminders,
		"expired", result.Expired,
	)
	return result
}

// resendScan retries kickoff emails whose emailsSent flag never flipped true.
// Requests past their deadline are left for the expiry scan.
func (e *Engine) resendScan(ctx context.Context) int {
	now := e.now()
	pending, err := e.MatchDB.Find(ctx, bson.M{
		"matchRequest.status":          models.StatusPendingGuardianConsent,
		"matchRequest.consentDeadline": bson.M{"$gte": primitive.NewDateTimeFromTime(now)},
		"$or": []bson.M{
			{"matchRequest.emailsSent.underReviewToMentor": false},
			{"matchRequest.emailsSent.consentNeededToMentee": false},
			{"matchRequest.emailsSent.consentRequestToGuardian": false},
		},
	})
	if err != nil {
		zap.S().Errorw("resend scan query failed", "error", err)
		return 0
	}

	resent := 0
	for i := range pending {
		mr := pending[i]
		mentee, err := e.getMentee(ctx, mr.Details.MenteeID)
		if err != nil {
			zap.S().Errorw("resend scan: failed to load mentee", "error", err, "matchRequestID", mr.ID.Hex())
			continue
		}
		mentor, err := e.getMentor(ctx, mr.Details.MentorID)
		if err != nil {
			zap.S().Errorw("resend scan: failed to load mentor", "error", err, "matchRequestID", mr.ID.Hex())
			continue
		}
		e.sendKickoffEmails(ctx, &mr, mentee, mentor)
		resent++
	}
	return resent
}

// reminderScan sends the one-time final reminder to mentee and guardian for
// requests that have sat in pending_guardian_consent for 36 hours. The
// finalReminderToMentee flag is the once-only guard; remindersSent increments
// only when that flag flips so repeated sweeps never double-count.
func (e *Engine) reminderScan(ctx context.Context) int {
	now := e.now()
	due, err := e.MatchDB.Find(ctx, bson.M{
		"matchRequest.status":                           models.StatusPendingGuardianConsent,
		"matchRequest.requestedAt":                      bson.M{"$lte": primitive.NewDateTimeFromTime(now.Add(-ReminderAfter))},
		"matchRequest.emailsSent.finalReminderToMentee": false,
	})
	if err != nil {
		zap.S().Errorw("reminder scan query failed", "error", err)
		return 0
	}

	reminded := 0
	for i := range due {
		mr := due[i]
		id := mr.ID.Hex()

		mentee, err := e.getMentee(ctx, mr.Details.MenteeID)
		if err != nil {
			zap.S().Errorw("reminder scan: failed to load mentee", "error", err, "matchRequestID", id)
			continue
		}
		mentorName := mr.Details.MentorID
		if mentor, err := e.getMentor(ctx, mr.Details.MentorID); err == nil {
			mentorName = mentor.Details.FullName()
		}

		flags := bson.M{}

		if err := e.Notifier.SendFinalReminderToMentee(ctx,
			notifications.Recipient{Name: mentee.Details.FullName(), Email: mentee.Details.Email},
			notifications.FinalReminderMentee{MenteeName: mentee.Details.FirstName, MentorName: mentorName},
		); err != nil {
			zap.S().Errorw("failed to send final reminder to mentee", "error", err, "matchRequestID", id)
		} else {
			flags["matchRequest.emailsSent.finalReminderToMentee"] = true
		}

		if !mr.Details.EmailsSent.FinalReminderToGuardian {
			if err := e.Notifier.SendFinalReminderToGuardian(ctx,
				notifications.Recipient{Name: mentee.Details.GuardianName, Email: mentee.Details.GuardianEmail},
				notifications.FinalReminderGuardian{
					GuardianName: mentee.Details.GuardianName,
					MenteeName:   mentee.Details.FullName(),
					ConsentURL:   e.ConsentFormURL(id),
				},
			); err != nil {
				zap.S().Errorw("failed to send final reminder to guardian", "error", err, "matchRequestID", id)
			} else {
				flags["matchRequest.emailsSent.finalReminderToGuardian"] = true
			}
		}

		if len(flags) == 0 {
			continue
		}

		nowDT := primitive.NewDateTimeFromTime(e.now())
		update := bson.M{"$set": flags}
		flags["matchRequest.lastReminderAt"] = nowDT
		flags["matchRequest.updatedAt"] = nowDT
		if _, ok := flags["matchRequest.emailsSent.finalReminderToMentee"]; ok {
			update["$inc"] = bson.M{"matchRequest.remindersSent": 1}
			reminded++
		}
		if _, err := e.MatchDB.UpdateOne(ctx, bson.M{"_id": mr.ID}, update); err != nil {
			zap.S().Errorw("failed to record reminder bookkeeping", "error", err, "matchRequestID", id)
		}
	}
	return reminded
}

// expiryScan force-expires requests whose consent deadline has passed. The
// status filter keeps it idempotent: already-expired requests never match.
func (e *Engine) expiryScan(ctx context.Context) int {
	now := e.now()
	overdue, err := e.MatchDB.Find(ctx, bson.M{
		"matchRequest.status":          models.StatusPendingGuardianConsent,
		"matchRequest.consentDeadline": bson.M{"$lt": primitive.NewDateTimeFromTime(now)},
	})
	if err != nil {
		zap.S().Errorw("expiry scan query failed", "error", err)
		return 0
	}

	expired := 0
	for i := range overdue {
		mr := overdue[i]
		if err := e.expire(ctx, &mr, now); err != nil {
			zap.S().Errorw("expiry scan: failed to expire match request", "error", err, "matchRequestID", mr.ID.Hex())
			continue
		}
		expired++
	}
	return expired
}
