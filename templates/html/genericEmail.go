package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderGenericEmail generates branded HTML for a generic email.
// The subject is displayed in the header banner, and bodyContent is plain text
// that gets HTML-escaped and has newlines converted to <br> tags.
func RenderGenericEmail(subject, bodyContent string) string {
	return renderLayout(subject, textToHTML(bodyContent))
}

// RenderActionEmail is RenderGenericEmail plus a call-to-action button below
// the body. The URL is placed in an href attribute, so it is escaped with the
// stricter attribute rules.
func RenderActionEmail(subject, bodyContent, buttonLabel, buttonURL string) string {
	body := textToHTML(bodyContent) + fmt.Sprintf(`
      <div style="text-align: center; margin-top: 30px;">
        <a class="button" href="%s">%s</a>
      </div>
      <p style="font-size: 12px; color: #6b7280;">If the button does not work, copy this link into your browser: %s</p>`,
		html.EscapeString(buttonURL), html.EscapeString(buttonLabel), html.EscapeString(buttonURL))
	return renderLayout(subject, body)
}

func textToHTML(bodyContent string) string {
	// HTML-escape the body to prevent injection, then convert newlines to <br>
	escaped := html.EscapeString(bodyContent)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func renderLayout(subject, htmlBody string) string {
	// HTML-escape the subject for safe display in the header
	safeSubject := html.EscapeString(subject)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>%s</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f5f7; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #1d7a4f 0%%, #2aa36b 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #1f2937; line-height: 1.6; font-size: 15px; }
    .button { display: inline-block; background-color: #1d7a4f; color: #ffffff; padding: 12px 28px; border-radius: 6px; text-decoration: none; font-weight: 600; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
    .footer a { color: #1d7a4f; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      %s
    </div>
    <div class="footer">
      <p>&copy; Bennington Rising | <a href="https://www.benningtonrising.org">benningtonrising.org</a></p>
      <p><a href="https://www.benningtonrising.org/contact">Contact Support</a></p>
    </div>
  </div>
</body>
</html>`, safeSubject, safeSubject, htmlBody)
}
