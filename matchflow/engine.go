package matchflow

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/databases"
	"github.com/bennington-rising/bennington-rising-api/models"
	"github.com/bennington-rising/bennington-rising-api/notifications"
)

const (
	// ConsentWindow is how long a guardian has to respond after a request is
	// created. The deadline is fixed at creation and never moves.
	ConsentWindow = 48 * time.Hour

	// ReminderAfter is how long a request sits in pending_guardian_consent
	// before the sweeper sends the final reminder emails.
	ReminderAfter = 36 * time.Hour

	// AnswerMaxLen is the per-answer character limit on the request form.
	AnswerMaxLen = 150
)

const deadlineFormat = "Monday, January 2 at 3:04 PM MST"

// Engine owns the match request state machine. It orchestrates reads and
// writes against the directory and answer stores and triggers notification
// sends at transition points. Email failures are logged and never abort a
// state transition.
type Engine struct {
	MatchDB  databases.MatchRequestDatabase
	AnswerDB databases.AnswerDatabase
	MenteeDB databases.MenteeDatabase
	MentorDB databases.MentorDatabase
	Notifier notifications.Gateway

	// FrontendBaseURL is the web app origin used to build consent-form links.
	FrontendBaseURL string

	// Now is the clock, injectable for deterministic deadline tests.
	// Defaults to time.Now.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ConsentFormURL builds the guardian-facing consent link for a match request.
func (e *Engine) ConsentFormURL(matchRequestID string) string {
	return strings.TrimSuffix(e.FrontendBaseURL, "/") + "/consent/" + matchRequestID
}

func validateAnswer(field, answer string) error {
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrValidation, field)
	}
	if utf8.RuneCountInString(answer) > AnswerMaxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, AnswerMaxLen)
	}
	return nil
}

func (e *Engine) getMentee(ctx context.Context, menteeID string) (*models.Mentee, error) {
	oid, err := primitive.ObjectIDFromHex(menteeID)
	if err != nil {
		return nil, fmt.Errorf("mentee %q: %w", menteeID, ErrNotFound)
	}
	mentee, err := e.MenteeDB.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("mentee %q: %w", menteeID, ErrNotFound)
	}
	return mentee, nil
}

func (e *Engine) getMentor(ctx context.Context, mentorID string) (*models.Mentor, error) {
	oid, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return nil, fmt.Errorf("mentor %q: %w", mentorID, ErrNotFound)
	}
	mentor, err := e.MentorDB.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("mentor %q: %w", mentorID, ErrNotFound)
	}
	return mentor, nil
}

// GetMatchRequest returns a match request by its hex id.
func (e *Engine) GetMatchRequest(ctx context.Context, matchRequestID string) (*models.MatchRequest, error) {
	oid, err := primitive.ObjectIDFromHex(matchRequestID)
	if err != nil {
		return nil, fmt.Errorf("match request %q: %w", matchRequestID, ErrNotFound)
	}
	mr, err := e.MatchDB.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("match request %q: %w", matchRequestID, ErrNotFound)
	}
	return mr, nil
}

// CreateMatchRequest opens the workflow: it snapshots the mentor's custom
// question into a new Answer, creates the MatchRequest in
// pending_guardian_consent with a 48 hour consent deadline, records the
// request on both directory records, and attempts the three kickoff emails.
// Returns the new match request id.
func (e *Engine) CreateMatchRequest(ctx context.Context, menteeID, mentorID, mentorAnswer, programAnswer string) (string, error) {
	if err := validateAnswer("answer to the mentor's question", mentorAnswer); err != nil {
		return "", err
	}
	if err := validateAnswer("answer to the program question", programAnswer); err != nil {
		return "", err
	}

	mentee, err := e.getMentee(ctx, menteeID)
	if err != nil {
		return "", err
	}
	mentor, err := e.getMentor(ctx, mentorID)
	if err != nil {
		return "", err
	}

	count, err := e.MatchDB.CountDocuments(ctx, bson.M{
		"matchRequest.menteeID": menteeID,
		"matchRequest.mentorID": mentorID,
		"matchRequest.status":   bson.M{"$in": models.ActiveStatuses},
	})
	if err != nil {
		return "", fmt.Errorf("checking for existing request: %w", err)
	}
	if count > 0 {
		return "", ErrDuplicateRequest
	}

	now := e.now()
	nowDT := primitive.NewDateTimeFromTime(now)

	answer := models.Answer{
		ID: primitive.NewObjectID(),
		Details: models.AnswerDetails{
			MenteeID:        menteeID,
			MentorID:        mentorID,
			MentorQuestion:  mentor.Details.CustomQuestion,
			MenteeAnswer:    mentorAnswer,
			ProgramQuestion: models.ProgramQuestion,
			ProgramAnswer:   programAnswer,
			CreatedAt:       nowDT,
		},
	}
	if _, err := e.AnswerDB.InsertOne(ctx, answer); err != nil {
		return "", fmt.Errorf("creating answer: %w", err)
	}

	matchRequest := models.MatchRequest{
		ID: primitive.NewObjectID(),
		Details: models.MatchRequestDetails{
			MenteeID:        menteeID,
			MentorID:        mentorID,
			AnswerID:        answer.ID.Hex(),
			Status:          models.StatusPendingGuardianConsent,
			RequestedAt:     nowDT,
			ConsentDeadline: primitive.NewDateTimeFromTime(now.Add(ConsentWindow)),
			CreatedAt:       nowDT,
			UpdatedAt:       nowDT,
		},
	}
	if _, err := e.MatchDB.InsertOne(ctx, matchRequest); err != nil {
		return "", fmt.Errorf("creating match request: %w", err)
	}

	if _, err := e.MenteeDB.UpdateOne(ctx, bson.M{"_id": mentee.ID}, bson.M{
		"$addToSet": bson.M{"mentee.requestedMentors": mentorID},
		"$set":      bson.M{"mentee.updatedAt": nowDT},
	}); err != nil {
		return "", fmt.Errorf("recording request on mentee: %w", err)
	}
	if _, err := e.MentorDB.UpdateOne(ctx, bson.M{"_id": mentor.ID}, bson.M{
		"$addToSet": bson.M{"mentor.menteeRequests": menteeID},
		"$set":      bson.M{"mentor.updatedAt": nowDT},
	}); err != nil {
		return "", fmt.Errorf("recording request on mentor: %w", err)
	}

	e.sendKickoffEmails(ctx, &matchRequest, mentee, mentor)

	zap.S().Infow("match request created",
		"matchRequestID", matchRequest.ID.Hex(),
		"menteeID", menteeID,
		"mentorID", mentorID,
	)
	return matchRequest.ID.Hex(), nil
}

// sendKickoffEmails attempts the three creation-time notifications, skipping
// any whose emailsSent flag is already set. Flags flip true only on a
// confirmed send, which is what makes unsent ones retry-eligible for the
// sweeper's resend scan.
func (e *Engine) sendKickoffEmails(ctx context.Context, mr *models.MatchRequest, mentee *models.Mentee, mentor *models.Mentor) {
	id := mr.ID.Hex()
	deadline := mr.Details.ConsentDeadline.Time().UTC().Format(deadlineFormat)
	flags := bson.M{}

	if !mr.Details.EmailsSent.UnderReviewToMentor {
		err := e.Notifier.SendMatchUnderReview(ctx,
			notifications.Recipient{Name: mentor.Details.FullName(), Email: mentor.Details.Email},
			notifications.MatchUnderReview{
				MentorName:   mentor.Details.FirstName,
				MenteeName:   mentee.Details.FullName(),
				ProjectTitle: mentor.Details.ProjectTitle,
			})
		if err != nil {
			zap.S().Errorw("failed to send under-review email to mentor", "error", err, "matchRequestID", id)
		} else {
			flags["matchRequest.emailsSent.underReviewToMentor"] = true
		}
	}

	if !mr.Details.EmailsSent.ConsentNeededToMentee {
		err := e.Notifier.SendConsentNeeded(ctx,
			notifications.Recipient{Name: mentee.Details.FullName(), Email: mentee.Details.Email},
			notifications.ConsentNeeded{
				MenteeName: mentee.Details.FirstName,
				MentorName: mentor.Details.FullName(),
				Deadline:   deadline,
			})
		if err != nil {
			zap.S().Errorw("failed to send consent-needed email to mentee", "error", err, "matchRequestID", id)
		} else {
			flags["matchRequest.emailsSent.consentNeededToMentee"] = true
		}
	}

	if !mr.Details.EmailsSent.ConsentRequestToGuardian {
		err := e.Notifier.SendConsentRequest(ctx,
			notifications.Recipient{Name: mentee.Details.GuardianName, Email: mentee.Details.GuardianEmail},
			notifications.ConsentRequest{
				GuardianName: mentee.Details.GuardianName,
				MenteeName:   mentee.Details.FullName(),
				MentorName:   mentor.Details.FullName(),
				ProjectTitle: mentor.Details.ProjectTitle,
				ConsentURL:   e.ConsentFormURL(id),
				Deadline:     deadline,
			})
		if err != nil {
			zap.S().Errorw("failed to send consent-request email to guardian", "error", err, "matchRequestID", id)
		} else {
			flags["matchRequest.emailsSent.consentRequestToGuardian"] = true
		}
	}

	if len(flags) == 0 {
		return
	}
	flags["matchRequest.updatedAt"] = primitive.NewDateTimeFromTime(e.now())
	if _, err := e.MatchDB.UpdateOne(ctx, bson.M{"_id": mr.ID}, bson.M{"$set": flags}); err != nil {
		zap.S().Errorw("failed to record emailsSent flags", "error", err, "matchRequestID", id)
	}
}

// SubmitGuardianConsent records the guardian's decision. The decision must
// arrive while the request is still pending_guardian_consent and no later
// than the consent deadline; a late decision triggers the expiry transition
// and returns ErrWindowExpired.
func (e *Engine) SubmitGuardianConsent(ctx context.Context, matchRequestID string, approved bool, guardian models.GuardianInfo) error {
	mr, err := e.GetMatchRequest(ctx, matchRequestID)
	if err != nil {
		return err
	}
	if mr.Details.Status != models.StatusPendingGuardianConsent {
		return fmt.Errorf("%w: match request is %s", ErrInvalidStateTransition, mr.Details.Status)
	}

	now := e.now()
	if now.After(mr.Details.ConsentDeadline.Time()) {
		if err := e.expire(ctx, mr, now); err != nil {
			zap.S().Errorw("failed to expire match request on late consent", "error", err, "matchRequestID", matchRequestID)
		}
		return ErrWindowExpired
	}

	mentee, err := e.getMentee(ctx, mr.Details.MenteeID)
	if err != nil {
		return err
	}
	mentor, err := e.getMentor(ctx, mr.Details.MentorID)
	if err != nil {
		return err
	}

	nowDT := primitive.NewDateTimeFromTime(now)

	if approved {
		res, err := e.MatchDB.UpdateOne(ctx,
			bson.M{"_id": mr.ID, "matchRequest.status": models.StatusPendingGuardianConsent},
			bson.M{"$set": bson.M{
				"matchRequest.status":                  models.StatusPendingMentorApproval,
				"matchRequest.guardianConsentAt":       nowDT,
				"matchRequest.guardianConsentReceived": true,
				"matchRequest.guardian":                guardian,
				"matchRequest.updatedAt":               nowDT,
			}})
		if err != nil {
			return fmt.Errorf("recording guardian approval: %w", err)
		}
		if res.MatchedCount == 0 {
			// lost a race with another decision or the sweeper
			return ErrInvalidStateTransition
		}

		e.sendGuardianApprovedEmails(ctx, mr, mentee, mentor)

		zap.S().Infow("guardian approved match request", "matchRequestID", matchRequestID)
		return nil
	}

	res, err := e.MatchDB.UpdateOne(ctx,
		bson.M{"_id": mr.ID, "matchRequest.status": models.StatusPendingGuardianConsent},
		bson.M{"$set": bson.M{
			"matchRequest.status":     models.StatusDeclinedByGuardian,
			"matchRequest.declinedAt": nowDT,
			"matchRequest.guardian":   guardian,
			"matchRequest.updatedAt":  nowDT,
		}})
	if err != nil {
		return fmt.Errorf("recording guardian decline: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrInvalidStateTransition
	}

	if err := e.removeFromRequestedLists(ctx, mr.Details.MenteeID, mr.Details.MentorID, nowDT); err != nil {
		return err
	}

	if err := e.Notifier.SendConsentDeclined(ctx,
		notifications.Recipient{Name: mentee.Details.FullName(), Email: mentee.Details.Email},
		notifications.ConsentDeclined{MenteeName: mentee.Details.FirstName, MentorName: mentor.Details.FullName()},
	); err != nil {
		zap.S().Errorw("failed to send consent-declined email to mentee", "error", err, "matchRequestID", matchRequestID)
	}
	if err := e.Notifier.SendGuardianDeclined(ctx,
		notifications.Recipient{Name: mentor.Details.FullName(), Email: mentor.Details.Email},
		notifications.GuardianDeclined{MentorName: mentor.Details.FirstName, MenteeName: mentee.Details.FullName()},
	); err != nil {
		zap.S().Errorw("failed to send guardian-declined email to mentor", "error", err, "matchRequestID", matchRequestID)
	}

	zap.S().Infow("guardian declined match request", "matchRequestID", matchRequestID)
	return nil
}

func (e *Engine) sendGuardianApprovedEmails(ctx context.Context, mr *models.MatchRequest, mentee *models.Mentee, mentor *models.Mentor) {
	id := mr.ID.Hex()

	if err := e.Notifier.SendConsentApproved(ctx,
		notifications.Recipient{Name: mentee.Details.FullName(), Email: mentee.Details.Email},
		notifications.ConsentApproved{MenteeName: mentee.Details.FirstName, MentorName: mentor.Details.FullName()},
	); err != nil {
		zap.S().Errorw("failed to send consent-approved email to mentee", "error", err, "matchRequestID", id)
	}

	answer := &models.Answer{}
	answerOID, err := primitive.ObjectIDFromHex(mr.Details.AnswerID)
	if err == nil {
		answer, err = e.AnswerDB.FindOne(ctx, bson.M{"_id": answerOID})
	}
	if err != nil {
		zap.S().Errorw("failed to load answer for mentor email", "error", err, "matchRequestID", id)
		answer = &models.Answer{}
	}

	if err := e.Notifier.SendMatchRequest(ctx,
		notifications.Recipient{Name: mentor.Details.FullName(), Email: mentor.Details.Email},
		notifications.MatchRequestReview{
			MentorName:      mentor.Details.FirstName,
			MenteeName:      mentee.Details.FullName(),
			School:          mentee.Details.School,
			Grade:           mentee.Details.Grade,
			Bio:             mentee.Details.Bio,
			MentorQuestion:  answer.Details.MentorQuestion,
			MenteeAnswer:    answer.Details.MenteeAnswer,
			ProgramQuestion: answer.Details.ProgramQuestion,
			ProgramAnswer:   answer.Details.ProgramAnswer,
		},
	); err != nil {
		zap.S().Errorw("failed to send match-request email to mentor", "error", err, "matchRequestID", id)
	}
}

// SubmitMentorDecision records the mentor's approve/decline on a request the
// guardian has already consented to.
func (e *Engine) SubmitMentorDecision(ctx context.Context, matchRequestID string, approved bool) error {
	mr, err := e.GetMatchRequest(ctx, matchRequestID)
	if err != nil {
		return err
	}
	if mr.Details.Status != models.StatusPendingMentorApproval {
		return fmt.Errorf("%w: match request is %s", ErrInvalidStateTransition, mr.Details.Status)
	}

	mentee, err := e.getMentee(ctx, mr.Details.MenteeID)
	if err != nil {
		return err
	}
	mentor, err := e.getMentor(ctx, mr.Details.MentorID)
	if err != nil {
		return err
	}

	now := e.now()
	nowDT := primitive.NewDateTimeFromTime(now)

	if approved {
		res, err := e.MatchDB.UpdateOne(ctx,
			bson.M{"_id": mr.ID, "matchRequest.status": models.StatusPendingMentorApproval},
			bson.M{"$set": bson.M{
				"matchRequest.status":           models.StatusConfirmed,
				"matchRequest.mentorDecisionAt": nowDT,
				"matchRequest.confirmedAt":      nowDT,
				"matchRequest.updatedAt":        nowDT,
			}})
		if err != nil {
			return fmt.Errorf("recording mentor approval: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrInvalidStateTransition
		}

		// a confirmed pair moves from the requested lists to the approved
		// lists; it never appears in both
		if _, err := e.MenteeDB.UpdateOne(ctx, bson.M{"_id": mentee.ID}, bson.M{
			"$addToSet": bson.M{"mentee.approvedMentors": mr.Details.MentorID},
			"$pull":     bson.M{"mentee.requestedMentors": mr.Details.MentorID},
			"$set":      bson.M{"mentee.updatedAt": nowDT},
		}); err != nil {
			return fmt.Errorf("recording match on mentee: %w", err)
		}
		if _, err := e.MentorDB.UpdateOne(ctx, bson.M{"_id": mentor.ID}, bson.M{
			"$addToSet": bson.M{"mentor.approvedMentees": mr.Details.MenteeID},
			"$pull":     bson.M{"mentor.menteeRequests": mr.Details.MenteeID},
			"$set":      bson.M{"mentor.updatedAt": nowDT},
		}); err != nil {
			return fmt.Errorf("recording match on mentor: %w", err)
		}

		guardian := mr.Details.Guardian
		if guardian == nil {
			guardian = &models.GuardianInfo{}
		}
		if err := e.Notifier.SendMatchConfirmedToMentee(ctx,
			notifications.Recipient{Name: mentee.Details.FullName(), Email: mentee.Details.Email},
			notifications.MatchConfirmedMentee{
				MenteeName:   mentee.Details.FirstName,
				MentorName:   mentor.Details.FullName(),
				PartnerName:  mentor.Details.PartnerName,
				ProjectTitle: mentor.Details.ProjectTitle,
				MentorEmail:  mentor.Details.Email,
			},
		); err != nil {
			zap.S().Errorw("failed to send confirmation email to mentee", "error", err, "matchRequestID", matchRequestID)
		}
		if err := e.Notifier.SendMatchConfirmedToMentor(ctx,
			notifications.Recipient{Name: mentor.Details.FullName(), Email: mentor.Details.Email},
			notifications.MatchConfirmedMentor{
				MentorName:    mentor.Details.FirstName,
				MenteeName:    mentee.Details.FullName(),
				MenteeEmail:   mentee.Details.Email,
				GuardianName:  guardian.Name,
				GuardianEmail: guardian.Email,
				GuardianPhone: guardian.Phone,
			},
		); err != nil {
			zap.S().Errorw("failed to send confirmation email to mentor", "error", err, "matchRequestID", matchRequestID)
		}

		zap.S().Infow("match request confirmed", "matchRequestID", matchRequestID)
		return nil
	}

	res, err := e.MatchDB.UpdateOne(ctx,
		bson.M{"_id": mr.ID, "matchRequest.status": models.StatusPendingMentorApproval},
		bson.M{"$set": bson.M{
			"matchRequest.status":           models.StatusDeclinedByMentor,
			"matchRequest.mentorDecisionAt": nowDT,
			"matchRequest.declinedAt":       nowDT,
			"matchRequest.updatedAt":        nowDT,
		}})
	if err != nil {
		return fmt.Errorf("recording mentor decline: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrInvalidStateTransition
	}

	if err := e.removeFromRequestedLists(ctx, mr.Details.MenteeID, mr.Details.MentorID, nowDT); err != nil {
		return err
	}

	if err := e.Notifier.SendMatchDeclinedToMentee(ctx,
		notifications.Recipient{Name: mentee.Details.FullName(), Email: mentee.Details.Email},
		notifications.MatchDeclined{MenteeName: mentee.Details.FirstName, MentorName: mentor.Details.FullName()},
	); err != nil {
		zap.S().Errorw("failed to send decline email to mentee", "error", err, "matchRequestID", matchRequestID)
	}
	if err := e.Notifier.SendMatchDeclinedToMentor(ctx,
		notifications.Recipient{Name: mentor.Details.FullName(), Email: mentor.Details.Email},
		notifications.MatchDeclined{MenteeName: mentee.Details.FullName(), MentorName: mentor.Details.FirstName},
	); err != nil {
		zap.S().Errorw("failed to send decline email to mentor", "error", err, "matchRequestID", matchRequestID)
	}

	zap.S().Infow("mentor declined match request", "matchRequestID", matchRequestID)
	return nil
}

// removeFromRequestedLists clears the pair from both directory records when a
// request leaves the consent-pending path without being confirmed.
func (e *Engine) removeFromRequestedLists(ctx context.Context, menteeID, mentorID string, nowDT primitive.DateTime) error {
	menteeOID, err := primitive.ObjectIDFromHex(menteeID)
	if err != nil {
		return fmt.Errorf("mentee %q: %w", menteeID, ErrNotFound)
	}
	mentorOID, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return fmt.Errorf("mentor %q: %w", mentorID, ErrNotFound)
	}
	if _, err := e.MenteeDB.UpdateOne(ctx, bson.M{"_id": menteeOID}, bson.M{
		"$pull": bson.M{"mentee.requestedMentors": mentorID},
		"$set":  bson.M{"mentee.updatedAt": nowDT},
	}); err != nil {
		return fmt.Errorf("removing request from mentee: %w", err)
	}
	if _, err := e.MentorDB.UpdateOne(ctx, bson.M{"_id": mentorOID}, bson.M{
		"$pull": bson.M{"mentor.menteeRequests": menteeID},
		"$set":  bson.M{"mentor.updatedAt": nowDT},
	}); err != nil {
		return fmt.Errorf("removing request from mentor: %w", err)
	}
	return nil
}

// expire applies the consent-window-expired transition. Both the lazy check
// in SubmitGuardianConsent and the sweeper's expiry scan go through here, so
// the two paths always agree on the terminal state. The guarded filter makes
// it a no-op when the request has already left pending_guardian_consent.
func (e *Engine) expire(ctx context.Context, mr *models.MatchRequest, now time.Time) error {
	nowDT := primitive.NewDateTimeFromTime(now)
	res, err := e.MatchDB.UpdateOne(ctx,
		bson.M{"_id": mr.ID, "matchRequest.status": models.StatusPendingGuardianConsent},
		bson.M{"$set": bson.M{
			"matchRequest.status":    models.StatusConsentWindowExpired,
			"matchRequest.expiredAt": nowDT,
			"matchRequest.updatedAt": nowDT,
		}})
	if err != nil {
		return fmt.Errorf("expiring match request: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil
	}

	if err := e.removeFromRequestedLists(ctx, mr.Details.MenteeID, mr.Details.MentorID, nowDT); err != nil {
		return err
	}

	mentee, err := e.getMentee(ctx, mr.Details.MenteeID)
	if err != nil {
		zap.S().Errorw("failed to load mentee for expiry email", "error", err, "matchRequestID", mr.ID.Hex())
		return nil
	}
	mentorName := mr.Details.MentorID
	if mentor, err := e.getMentor(ctx, mr.Details.MentorID); err == nil {
		mentorName = mentor.Details.FullName()
	}
	if err := e.Notifier.SendConsentWindowClosed(ctx,
		notifications.Recipient{Name: mentee.Details.FullName(), Email: mentee.Details.Email},
		notifications.ConsentWindowClosed{MenteeName: mentee.Details.FirstName, MentorName: mentorName},
	); err != nil {
		zap.S().Errorw("failed to send window-closed email to mentee", "error", err, "matchRequestID", mr.ID.Hex())
	}

	zap.S().Infow("match request expired", "matchRequestID", mr.ID.Hex())
	return nil
}
