package utils

import (
	"edusphere/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account.
// Callers treat delivery as best-effort; failures are logged, never surfaced.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Printf("Email sender not configured, skipping %q to %v", subject, to)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: EduSphere <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email %q to %v: %v", subject, to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A3C6E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A3C6E; line-height: 1.6; }
			.content h2 { color: #1A3C6E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4C8BF5; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDUSPHERE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 EduSphere. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendRegistrationEmail confirms a registration was received and is pending review.
func SendRegistrationEmail(email, name string) {
	subject := "Registration Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for registering with <strong>EduSphere</strong>.</p>
		<p>Your registration is pending review. We will notify you as soon as it has been processed.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome to EduSphere", body))
}

// SendAcceptanceEmail notifies a user that their registration was accepted.
func SendAcceptanceEmail(email, name string) {
	subject := "Registration Accepted"
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your registration has been <strong>accepted</strong>! You can now log in.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("You're In!", body))
}

// SendRejectionEmail notifies a user that their registration was not accepted.
func SendRejectionEmail(email, name string) {
	subject := "Registration Not Accepted"
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>We regret to inform you that your registration was not accepted.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Registration Update", body))
}

// SendReplyEmail notifies a contact-form sender that an admin replied.
func SendReplyEmail(email, name, subject, reply string) {
	mailSubject := "Re: " + subject
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have replied to your message:</p>
		<div class="info-box">%s</div>
	`, name, reply)

	go SendEmail([]string{email}, mailSubject, getEmailTemplate("New Reply from EduSphere", body))
}
