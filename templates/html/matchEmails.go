package templates

import "fmt"

// Render functions for the match-request lifecycle emails. Each returns the
// full HTML body; the caller owns subject lines and recipients.

// RenderMatchUnderReviewEmail notifies a mentor that a Fellow has requested
// their team and the request is awaiting guardian consent.
func RenderMatchUnderReviewEmail(mentorName, menteeName, projectTitle string) string {
	body := fmt.Sprintf(`Hi %s,

%s has asked to join your team for "%s".

Before you see their full request, we need a parent or guardian to sign off. We have sent the consent form to their guardian and will forward the request to you as soon as it comes back approved.

No action is needed from you right now.`, mentorName, menteeName, projectTitle)
	return RenderGenericEmail("A Fellow Wants to Join Your Team", body)
}

// RenderConsentNeededEmail tells a mentee their request was received and is
// waiting on their guardian.
func RenderConsentNeededEmail(menteeName, mentorName, deadline string) string {
	body := fmt.Sprintf(`Hi %s,

Your request to join %s's team is in! Before it goes to the Team Coordinators, your parent or guardian needs to approve it.

We emailed them a consent form. Please remind them to fill it out before %s, or the request will expire and you will need to submit it again.`, menteeName, mentorName, deadline)
	return RenderGenericEmail("One More Step: Guardian Consent Needed", body)
}

// RenderConsentRequestEmail asks a guardian to approve or decline a match
// request via the consent form link.
func RenderConsentRequestEmail(guardianName, menteeName, mentorName, projectTitle, consentURL, deadline string) string {
	body := fmt.Sprintf(`Hi %s,

%s has asked to join a Bennington Rising project team led by %s: "%s".

Bennington Rising pairs Fellows with volunteer Team Coordinators for a semester-long project. Before the coordinators review the request, we need your consent.

Please review and respond by %s. If we do not hear from you by then, the request will expire.`, guardianName, menteeName, mentorName, projectTitle, deadline)
	return RenderActionEmail("Your Consent is Needed", body, "Review Consent Form", consentURL)
}

// RenderConsentApprovedEmail tells a mentee their guardian approved and the
// mentor team is now reviewing.
func RenderConsentApprovedEmail(menteeName, mentorName string) string {
	body := fmt.Sprintf(`Hi %s,

Good news! Your guardian approved your request to join %s's team.

Your request and answers are now with the Team Coordinators. We will email you as soon as they make their decision.`, menteeName, mentorName)
	return RenderGenericEmail("Guardian Consent Approved", body)
}

// RenderMatchRequestEmail delivers the full request, including the Fellow's
// answers, to the mentor once consent is in.
func RenderMatchRequestEmail(mentorName, menteeName, school, grade, bio, mentorQuestion, menteeAnswer, programQuestion, programAnswer string) string {
	body := fmt.Sprintf(`Hi %s,

%s's guardian has approved their request to join your team, so it is now yours to review.

About the Fellow:
Name: %s
School: %s
Grade: %s
Bio: %s

Your question: %s
Their answer: %s

%s
Their answer: %s

Log in to your coordinator dashboard to approve or decline this request.`,
		mentorName, menteeName, menteeName, school, grade, bio, mentorQuestion, menteeAnswer, programQuestion, programAnswer)
	return RenderGenericEmail("Match Request Ready for Review", body)
}

// RenderConsentDeclinedEmail tells a mentee their guardian declined.
func RenderConsentDeclinedEmail(menteeName, mentorName string) string {
	body := fmt.Sprintf(`Hi %s,

Your guardian did not approve your request to join %s's team, so the request has been closed.

If you think this was a mistake, please talk it over with your guardian. You are welcome to browse other teams and submit a new request at any time.`, menteeName, mentorName)
	return RenderGenericEmail("Update on Your Team Request", body)
}

// RenderGuardianDeclinedEmail tells a mentor the pending request was closed by
// the guardian.
func RenderGuardianDeclinedEmail(mentorName, menteeName string) string {
	body := fmt.Sprintf(`Hi %s,

The request from %s to join your team was not approved by their guardian, so it has been closed. No action is needed from you.

Your team remains open for other Fellows to request.`, mentorName, menteeName)
	return RenderGenericEmail("A Pending Request Was Closed", body)
}

// RenderMatchConfirmedMenteeEmail gives the mentee their new team's details.
func RenderMatchConfirmedMenteeEmail(menteeName, mentorName, partnerName, projectTitle, mentorEmail string) string {
	body := fmt.Sprintf(`Hi %s,

You're in! %s and %s accepted your request to join "%s".

You can reach your Team Coordinators at %s. They will be in touch soon with details about your first team meeting.

Welcome to the team!`, menteeName, mentorName, partnerName, projectTitle, mentorEmail)
	return RenderGenericEmail("You Have Been Matched!", body)
}

// RenderMatchConfirmedMentorEmail gives the mentor the Fellow's contact info
// and the guardian snapshot captured at consent time.
func RenderMatchConfirmedMentorEmail(mentorName, menteeName, menteeEmail, guardianName, guardianEmail, guardianPhone string) string {
	body := fmt.Sprintf(`Hi %s,

You have confirmed %s as your team's Fellow. Here is their contact information:

Fellow: %s (%s)
Guardian: %s (%s, %s)

Please reach out within the next week to schedule your first team meeting, and keep the guardian copied on scheduling emails.`,
		mentorName, menteeName, menteeName, menteeEmail, guardianName, guardianEmail, guardianPhone)
	return RenderGenericEmail("Your Team is Matched!", body)
}

// RenderMatchDeclinedMenteeEmail tells the mentee the coordinators passed.
func RenderMatchDeclinedMenteeEmail(menteeName, mentorName string) string {
	body := fmt.Sprintf(`Hi %s,

The Team Coordinators for %s's project were not able to accept your request this time. This usually just means the team filled up.

Don't be discouraged! There are other teams looking for Fellows, and you can submit a new request right away.`, menteeName, mentorName)
	return RenderGenericEmail("Update on Your Team Request", body)
}

// RenderMatchDeclinedMentorEmail confirms to the mentor that their decline was
// recorded.
func RenderMatchDeclinedMentorEmail(mentorName, menteeName string) string {
	body := fmt.Sprintf(`Hi %s,

You declined the request from %s, and we have let them know. Their guardian's consent record has been closed out.

Your team remains open for other Fellows to request.`, mentorName, menteeName)
	return RenderGenericEmail("Request Declined", body)
}

// RenderFinalReminderMenteeEmail warns the mentee the consent window is
// closing.
func RenderFinalReminderMenteeEmail(menteeName, mentorName string) string {
	body := fmt.Sprintf(`Hi %s,

Just a heads up: your request to join %s's team is still waiting on guardian consent, and the window closes soon.

Please remind your parent or guardian to respond to the consent email today. If the window closes, the request expires and you will need to submit it again.`, menteeName, mentorName)
	return RenderGenericEmail("Final Reminder: Consent Window Closing", body)
}

// RenderFinalReminderGuardianEmail warns the guardian the consent window is
// closing, with the form link again.
func RenderFinalReminderGuardianEmail(guardianName, menteeName, consentURL string) string {
	body := fmt.Sprintf(`Hi %s,

This is a final reminder that %s's request to join a Bennington Rising team is still waiting on your consent, and the window closes soon.

If we do not hear from you before the deadline, the request will expire automatically.`, guardianName, menteeName)
	return RenderActionEmail("Final Reminder: Consent Form Due", body, "Review Consent Form", consentURL)
}

// RenderConsentWindowClosedEmail tells the mentee their request expired.
func RenderConsentWindowClosedEmail(menteeName, mentorName string) string {
	body := fmt.Sprintf(`Hi %s,

The 48-hour guardian consent window for your request to join %s's team has closed without a response, so the request has expired.

You can submit a new request whenever you are ready. Next time, give your guardian a heads up so they can watch for the consent email.`, menteeName, mentorName)
	return RenderGenericEmail("Your Team Request Expired", body)
}
