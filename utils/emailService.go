package utils

import (
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"coursehub/config"
)

const senderName = "CourseHub"

// Mailer sends transactional email through SendGrid. Without an API key it only logs
// what it would have sent.
type Mailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{from: mail.NewEmail(senderName, cfg.EmailSender)}
	if cfg.SendGridKey != "" {
		m.client = sendgrid.NewSendClient(cfg.SendGridKey)
	} else {
		zap.L().Warn("SENDGRID_API_KEY not set, outgoing email will only be logged")
	}
	return m
}

// Enabled reports whether mail actually leaves the process
func (m *Mailer) Enabled() bool {
	return m != nil && m.client != nil
}

// SendEmail delivers one HTML message
func (m *Mailer) SendEmail(toEmail, toName, subject, htmlBody string) error {
	if !m.Enabled() {
		zap.L().Info("email skipped", zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}

	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail(toName, toEmail), subject, htmlBody)
	resp, err := m.client.Send(message)
	if err != nil {
		zap.L().Error("error sending email", zap.String("to", toEmail), zap.Error(err))
		return err
	}
	if resp.StatusCode >= 400 {
		zap.L().Error("sendgrid rejected email",
			zap.String("to", toEmail),
			zap.Int("status", resp.StatusCode),
			zap.String("body", resp.Body))
		return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
	}

	zap.L().Info("email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// HTML wrapper shared by every message
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F8FAFC; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #4F46E5; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #0F172A; line-height: 1.6; }
			.footer { background-color: #F1F5F9; padding: 20px; text-align: center; font-size: 12px; color: #64748B; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>COURSEHUB</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">&copy; CourseHub. You are receiving this because you interacted with our site.</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// WelcomeEmail renders the message sent after registration
func WelcomeEmail(name string) (subject, body string) {
	subject = "Welcome to CourseHub"
	body = fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account is ready. Browse the catalog and enroll in your first course from your dashboard.</p>
	`, html.EscapeString(name))
	return subject, getEmailTemplate("Welcome aboard!", body)
}

// WaitlistEmail renders the waitlist confirmation
func WaitlistEmail(name string) (subject, body string) {
	subject = "You're on the CourseHub waitlist"
	body = fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for joining the waitlist. We will let you know as soon as new courses open.</p>
	`, html.EscapeString(name))
	return subject, getEmailTemplate("You're on the list", body)
}

// ContactReceivedEmail renders the acknowledgement of a contact form submission
func ContactReceivedEmail(name, topic string) (subject, body string) {
	subject = "We received your message"
	body = fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for reaching out about <strong>%s</strong>. Our team usually replies within two business days.</p>
	`, html.EscapeString(name), html.EscapeString(topic))
	return subject, getEmailTemplate("Message received", body)
}

// SendWelcomeEmail sends WelcomeEmail in the background
func (m *Mailer) SendWelcomeEmail(email, name string) {
	subject, body := WelcomeEmail(name)
	go m.SendEmail(email, name, subject, body)
}

// SendWaitlistEmail sends WaitlistEmail in the background
func (m *Mailer) SendWaitlistEmail(email, name string) {
	subject, body := WaitlistEmail(name)
	go m.SendEmail(email, name, subject, body)
}

// SendContactReceivedEmail sends ContactReceivedEmail in the background
func (m *Mailer) SendContactReceivedEmail(email, name, topic string) {
	subject, body := ContactReceivedEmail(name, topic)
	go m.SendEmail(email, name, subject, body)
}
