package services

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/adampresley/adamgokit/email"
	"github.com/llpevents/website/pkg/models"
	"github.com/resend/resend-go/v2"
)

type MailServicer interface {
	SendContactNotification(message models.ContactMessage) error
	SendWelcome(toEmail string) error
}

type MailServiceConfig struct {
	ApiKey         string
	ContactToEmail string
	FromEmail      string
	FromName       string
}

type MailService struct {
	config MailServiceConfig
}

func NewMailService(config MailServiceConfig) MailService {
	return MailService{
		config: config,
	}
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<h1>New contact form submission</h1>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
<p><strong>Message:</strong></p>
<p style="white-space: pre-wrap;">{{.Message}}</p>
<p style="color: #888888;">Submitted from the llp-events.com contact form</p>
`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h1>Welcome to the mosh pit!</h1>
<p>Thanks for joining the LLP Events mailing list! You're now in the know for:</p>
<ul>
	<li>Concert announcements &amp; presale access</li>
	<li>Exclusive merch drops</li>
	<li>Contests &amp; giveaways</li>
	<li>Band applications &amp; more</li>
</ul>
`))

/*
SendContactNotification goes through the Resend client directly rather
than the email wrapper because the notification needs Reply-To set to
the submitter, so the inbox can answer without copy-pasting.
*/
func (s MailService) SendContactNotification(message models.ContactMessage) error {
	client := resend.NewClient(s.config.ApiKey)

	if _, err := client.Emails.Send(s.contactEmailRequest(message)); err != nil {
		return fmt.Errorf("error sending contact notification: %w", err)
	}

	return nil
}

func (s MailService) contactEmailRequest(message models.ContactMessage) *resend.SendEmailRequest {
	body := strings.Builder{}
	_ = contactTemplate.Execute(&body, message)

	return &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		To:      []string{s.config.ContactToEmail},
		Subject: fmt.Sprintf("Contact Form: %s", message.Name),
		Html:    body.String(),
		ReplyTo: message.Email,
	}
}

func (s MailService) SendWelcome(toEmail string) error {
	body := strings.Builder{}
	_ = welcomeTemplate.Execute(&body, nil)

	return s.send(
		"Welcome to LLP Events!",
		body.String(),
		email.EmailAddress{Email: toEmail},
	)
}

func (s MailService) send(subject, body string, to email.EmailAddress) error {
	service := email.NewResendService(&email.Config{
		ApiKey: s.config.ApiKey,
	})

	return service.Send(email.Mail{
		Body:       body,
		BodyIsHtml: true,
		From: email.EmailAddress{
			Email: s.config.FromEmail,
			Name:  s.config.FromName,
		},
		Subject: subject,
		To: []email.EmailAddress{
			to,
		},
	})
}
