package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// Message is a rendered email ready for a Mailer.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

const welcomeHTML = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome, {{.Name}}!</h2>
    <p>Thank you for signing up as a <strong>{{.Role}}</strong>. We are excited to have you on board!</p>
    <p>Feel free to explore our platform.</p>
    <p>Best Regards,<br>Your Job Portal Team</p>
</body>
</html>`

const applicationSubmittedHTML = `<html>
<body style="font-family: Arial, sans-serif; color: #333; padding: 20px; background-color: #f9f9f9; margin: 0;">
    <div style="max-width: 600px; margin: auto; background-color: #ffffff; border: 1px solid #e0e0e0; border-radius: 8px; padding: 20px;">
        <p style="font-size: 16px;">Dear Recruiter,</p>
        <p style="font-size: 16px;">
            <span style="color: #2c3e50; font-weight: bold;">{{.ApplicantName}}</span> has applied for the position of
            <span style="font-size: 18px; color: #2c3e50;">{{.JobTitle}}</span>.
        </p>
        <p style="font-size: 16px;">You can view this application in your Job Portal dashboard.</p>
        <p style="margin-top: 20px; font-size: 12px; color: #777;">Thank you, <br> Your Job Portal Team</p>
    </div>
</body>
</html>`

var (
	welcomeHTMLTmpl = htmltemplate.Must(htmltemplate.New("welcome").Parse(welcomeHTML))
	welcomeTextTmpl = texttemplate.Must(texttemplate.New("welcome").Parse(
		"Hi {{.Name}}, thank you for signing up as a {{.Role}}! We are excited to have you on board."))

	applicationHTMLTmpl = htmltemplate.Must(htmltemplate.New("application").Parse(applicationSubmittedHTML))
	applicationTextTmpl = texttemplate.Must(texttemplate.New("application").Parse(
		"{{.ApplicantName}} has applied for the position of {{.JobTitle}}."))
)

type welcomeData struct {
	Name string
	Role string
}

type applicationData struct {
	ApplicantName string
	JobTitle      string
}

func RenderWelcome(to, name, role string) (Message, error) {
	data := welcomeData{Name: name, Role: role}
	text, html, err := render(welcomeTextTmpl, welcomeHTMLTmpl, data)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "Welcome to Our Platform", Text: text, HTML: html}, nil
}

func RenderApplicationSubmitted(to, jobTitle, applicantName string) (Message, error) {
	data := applicationData{ApplicantName: applicantName, JobTitle: jobTitle}
	text, html, err := render(applicationTextTmpl, applicationHTMLTmpl, data)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: fmt.Sprintf("New Application for %s", jobTitle), Text: text, HTML: html}, nil
}

func render(text *texttemplate.Template, html *htmltemplate.Template, data any) (string, string, error) {
	var tb, hb bytes.Buffer
	if err := text.Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	if err := html.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	return tb.String(), hb.String(), nil
}
