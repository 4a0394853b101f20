package notifications

// go generate: mockery --name Gateway

import "context"

// Recipient is an email address with an optional display name.
type Recipient struct {
	Name  string
	Email string
}

// MatchUnderReview is the template data for the heads-up sent to a mentor the
// moment a Fellow requests their team.
type MatchUnderReview struct {
	MentorName   string
	MenteeName   string
	ProjectTitle string
}

// ConsentNeeded is the template data for the mentee's "waiting on guardian"
// email.
type ConsentNeeded struct {
	MenteeName string
	MentorName string
	Deadline   string
}

// ConsentRequest is the template data for the guardian consent form email.
// ConsentURL carries the constructed consent-form link.
type ConsentRequest struct {
	GuardianName string
	MenteeName   string
	MentorName   string
	ProjectTitle string
	ConsentURL   string
	Deadline     string
}

// ConsentApproved is the template data for the mentee's approval notice.
type ConsentApproved struct {
	MenteeName string
	MentorName string
}

// MatchRequestReview is the template data for the full request forwarded to
// the mentor once the guardian approves.
type MatchRequestReview struct {
	MentorName      string
	MenteeName      string
	School          string
	Grade           string
	Bio             string
	MentorQuestion  string
	MenteeAnswer    string
	ProgramQuestion string
	ProgramAnswer   string
}

// ConsentDeclined is the template data for the mentee's decline notice.
type ConsentDeclined struct {
	MenteeName string
	MentorName string
}

// GuardianDeclined is the template data for the mentor's decline notice.
type GuardianDeclined struct {
	MentorName string
	MenteeName string
}

// MatchConfirmedMentee is the template data for the mentee's confirmation,
// carrying the team's contact details.
type MatchConfirmedMentee struct {
	MenteeName   string
	MentorName   string
	PartnerName  string
	ProjectTitle string
	MentorEmail  string
}

// MatchConfirmedMentor is the template data for the mentor's confirmation,
// carrying the Fellow's contact details and the guardian snapshot.
type MatchConfirmedMentor struct {
	MentorName    string
	MenteeName    string
	MenteeEmail   string
	GuardianName  string
	GuardianEmail string
	GuardianPhone string
}

// MatchDeclined is the template data for both decline notices after a mentor
// passes on a request.
type MatchDeclined struct {
	MenteeName string
	MentorName string
}

// FinalReminderMentee is the template data for the mentee's closing-window
// reminder.
type FinalReminderMentee struct {
	MenteeName string
	MentorName string
}

// FinalReminderGuardian is the template data for the guardian's
// closing-window reminder.
type FinalReminderGuardian struct {
	GuardianName string
	MenteeName   string
	ConsentURL   string
}

// ConsentWindowClosed is the template data for the mentee's expiry notice.
type ConsentWindowClosed struct {
	MenteeName string
	MentorName string
}

// Gateway sends the fixed catalog of transactional emails, one method per
// templated kind. Implementations return an error on a failed send and never
// panic past the caller; the workflow engine logs failures without letting
// them abort a state transition.
type Gateway interface {
	SendMatchUnderReview(ctx context.Context, to Recipient, data MatchUnderReview) error
	SendConsentNeeded(ctx context.Context, to Recipient, data ConsentNeeded) error
	SendConsentRequest(ctx context.Context, to Recipient, data ConsentRequest) error
	SendConsentApproved(ctx context.Context, to Recipient, data ConsentApproved) error
	SendMatchRequest(ctx context.Context, to Recipient, data MatchRequestReview) error
	SendConsentDeclined(ctx context.Context, to Recipient, data ConsentDeclined) error
	SendGuardianDeclined(ctx context.Context, to Recipient, data GuardianDeclined) error
	SendMatchConfirmedToMentee(ctx context.Context, to Recipient, data MatchConfirmedMentee) error
	SendMatchConfirmedToMentor(ctx context.Context, to Recipient, data MatchConfirmedMentor) error
	SendMatchDeclinedToMentee(ctx context.Context, to Recipient, data MatchDeclined) error
	SendMatchDeclinedToMentor(ctx context.Context, to Recipient, data MatchDeclined) error
	SendFinalReminderToMentee(ctx context.Context, to Recipient, data FinalReminderMentee) error
	SendFinalReminderToGuardian(ctx context.Context, to Recipient, data FinalReminderGuardian) error
	SendConsentWindowClosed(ctx context.Context, to Recipient, data ConsentWindowClosed) error
}
