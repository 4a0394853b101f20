package notifications

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	templates "github.com/bennington-rising/bennington-rising-api/templates/html"
)

const (
	fromName    = "Bennington Rising"
	fromAddress = "no-reply@benningtonrising.org"
)

// SendgridGateway is the production Gateway backed by the SendGrid v3 API.
type SendgridGateway struct {
	client *sendgrid.Client
}

// NewSendgridGateway creates a gateway using the given API key.
func NewSendgridGateway(apiKey string) *SendgridGateway {
	return &SendgridGateway{client: sendgrid.NewSendClient(apiKey)}
}

func (g *SendgridGateway) send(ctx context.Context, to Recipient, subject, htmlContent, plainText string) error {
	from := mail.NewEmail(fromName, fromAddress)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail(to.Name, to.Email), plainText, htmlContent)
	response, err := g.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// SendMatchUnderReview implements Gateway.
func (g *SendgridGateway) SendMatchUnderReview(ctx context.Context, to Recipient, data MatchUnderReview) error {
	return g.send(ctx, to,
		"A Fellow Wants to Join Your Team - Bennington Rising",
		templates.RenderMatchUnderReviewEmail(data.MentorName, data.MenteeName, data.ProjectTitle),
		fmt.Sprintf("%s has asked to join your team. We are waiting on guardian consent and will forward the full request once it is approved.", data.MenteeName))
}

// SendConsentNeeded implements Gateway.
func (g *SendgridGateway) SendConsentNeeded(ctx context.Context, to Recipient, data ConsentNeeded) error {
	return g.send(ctx, to,
		"One More Step: Guardian Consent Needed - Bennington Rising",
		templates.RenderConsentNeededEmail(data.MenteeName, data.MentorName, data.Deadline),
		fmt.Sprintf("Your request to join %s's team needs guardian consent by %s.", data.MentorName, data.Deadline))
}

// SendConsentRequest implements Gateway.
func (g *SendgridGateway) SendConsentRequest(ctx context.Context, to Recipient, data ConsentRequest) error {
	return g.send(ctx, to,
		"Your Consent is Needed - Bennington Rising",
		templates.RenderConsentRequestEmail(data.GuardianName, data.MenteeName, data.MentorName, data.ProjectTitle, data.ConsentURL, data.Deadline),
		fmt.Sprintf("%s has asked to join a Bennington Rising team. Please review the consent form by %s: %s", data.MenteeName, data.Deadline, data.ConsentURL))
}

// SendConsentApproved implements Gateway.
func (g *SendgridGateway) SendConsentApproved(ctx context.Context, to Recipient, data ConsentApproved) error {
	return g.send(ctx, to,
		"Guardian Consent Approved - Bennington Rising",
		templates.RenderConsentApprovedEmail(data.MenteeName, data.MentorName),
		fmt.Sprintf("Your guardian approved your request to join %s's team. The Team Coordinators are reviewing it now.", data.MentorName))
}

// SendMatchRequest implements Gateway.
func (g *SendgridGateway) SendMatchRequest(ctx context.Context, to Recipient, data MatchRequestReview) error {
	return g.send(ctx, to,
		"Match Request Ready for Review - Bennington Rising",
		templates.RenderMatchRequestEmail(data.MentorName, data.MenteeName, data.School, data.Grade, data.Bio,
			data.MentorQuestion, data.MenteeAnswer, data.ProgramQuestion, data.ProgramAnswer),
		fmt.Sprintf("%s's guardian approved their request to join your team. Log in to your dashboard to approve or decline.", data.MenteeName))
}

// SendConsentDeclined implements Gateway.
func (g *SendgridGateway) SendConsentDeclined(ctx context.Context, to Recipient, data ConsentDeclined) error {
	return g.send(ctx, to,
		"Update on Your Team Request - Bennington Rising",
		templates.RenderConsentDeclinedEmail(data.MenteeName, data.MentorName),
		"Your guardian did not approve your team request, so it has been closed.")
}

// SendGuardianDeclined implements Gateway.
func (g *SendgridGateway) SendGuardianDeclined(ctx context.Context, to Recipient, data GuardianDeclined) error {
	return g.send(ctx, to,
		"A Pending Request Was Closed - Bennington Rising",
		templates.RenderGuardianDeclinedEmail(data.MentorName, data.MenteeName),
		fmt.Sprintf("The request from %s was not approved by their guardian and has been closed.", data.MenteeName))
}

// SendMatchConfirmedToMentee implements Gateway.
func (g *SendgridGateway) SendMatchConfirmedToMentee(ctx context.Context, to Recipient, data MatchConfirmedMentee) error {
	return g.send(ctx, to,
		"You Have Been Matched! - Bennington Rising",
		templates.RenderMatchConfirmedMenteeEmail(data.MenteeName, data.MentorName, data.PartnerName, data.ProjectTitle, data.MentorEmail),
		fmt.Sprintf("Your request was accepted! Reach your Team Coordinators at %s.", data.MentorEmail))
}

// SendMatchConfirmedToMentor implements Gateway.
func (g *SendgridGateway) SendMatchConfirmedToMentor(ctx context.Context, to Recipient, data MatchConfirmedMentor) error {
	return g.send(ctx, to,
		"Your Team is Matched! - Bennington Rising",
		templates.RenderMatchConfirmedMentorEmail(data.MentorName, data.MenteeName, data.MenteeEmail, data.GuardianName, data.GuardianEmail, data.GuardianPhone),
		fmt.Sprintf("You confirmed %s as your team's Fellow. Their contact details are in this email.", data.MenteeName))
}

// SendMatchDeclinedToMentee implements Gateway.
func (g *SendgridGateway) SendMatchDeclinedToMentee(ctx context.Context, to Recipient, data MatchDeclined) error {
	return g.send(ctx, to,
		"Update on Your Team Request - Bennington Rising",
		templates.RenderMatchDeclinedMenteeEmail(data.MenteeName, data.MentorName),
		"The Team Coordinators were not able to accept your request this time. Other teams are still open.")
}

// SendMatchDeclinedToMentor implements Gateway.
func (g *SendgridGateway) SendMatchDeclinedToMentor(ctx context.Context, to Recipient, data MatchDeclined) error {
	return g.send(ctx, to,
		"Request Declined - Bennington Rising",
		templates.RenderMatchDeclinedMentorEmail(data.MentorName, data.MenteeName),
		fmt.Sprintf("You declined the request from %s, and we have let them know.", data.MenteeName))
}

// SendFinalReminderToMentee implements Gateway.
func (g *SendgridGateway) SendFinalReminderToMentee(ctx context.Context, to Recipient, data FinalReminderMentee) error {
	return g.send(ctx, to,
		"Final Reminder: Consent Window Closing - Bennington Rising",
		templates.RenderFinalReminderMenteeEmail(data.MenteeName, data.MentorName),
		"Your team request is still waiting on guardian consent and the window closes soon.")
}

// SendFinalReminderToGuardian implements Gateway.
func (g *SendgridGateway) SendFinalReminderToGuardian(ctx context.Context, to Recipient, data FinalReminderGuardian) error {
	return g.send(ctx, to,
		"Final Reminder: Consent Form Due - Bennington Rising",
		templates.RenderFinalReminderGuardianEmail(data.GuardianName, data.MenteeName, data.ConsentURL),
		fmt.Sprintf("%s's team request is still waiting on your consent: %s", data.MenteeName, data.ConsentURL))
}

// SendConsentWindowClosed implements Gateway.
func (g *SendgridGateway) SendConsentWindowClosed(ctx context.Context, to Recipient, data ConsentWindowClosed) error {
	return g.send(ctx, to,
		"Your Team Request Expired - Bennington Rising",
		templates.RenderConsentWindowClosedEmail(data.MenteeName, data.MentorName),
		"The guardian consent window for your team request closed without a response, so the request expired.")
}
