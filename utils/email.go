package utils

import (
	"fmt"
	"log"

	"elearn/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers one message through SendGrid. Callers run it in a
// goroutine: notification failures are logged and never surfaced, and a
// failed send must not roll back the write that triggered it.
func sendEmail(cfg *config.Config, toName, toEmail, subject, htmlBody string) {
	if cfg.SendGridKey == "" {
		log.Printf("Email disabled, skipping %q to %s", subject, toEmail)
		return
	}

	from := mail.NewEmail("E-Learning Platform", cfg.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(cfg.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email %q to %s: %v", subject, toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email %q to %s rejected with status %d", subject, toEmail, resp.StatusCode)
	}
}

func SendRegistrationEmail(cfg *config.Config, email, name string) {
	body := fmt.Sprintf(
		"<p>Hello, %s!</p><p>Thank you for registering with our e-learning platform. We're excited to have you on board.</p>",
		name,
	)
	go sendEmail(cfg, name, email, "Welcome to our e-learning platform!", body)
}

func SendEnrollmentEmail(cfg *config.Config, email, name, courseTitle string) {
	body := fmt.Sprintf(
		"<p>You have successfully enrolled in the course: %s.</p>",
		courseTitle,
	)
	go sendEmail(cfg, name, email, "You've enrolled in a new course!", body)
}

func SendPasswordChangedEmail(cfg *config.Config, email, name string) {
	body := fmt.Sprintf(
		"<p>Hello, %s!</p><p>Your password was just changed. If this wasn't you, please contact support immediately.</p>",
		name,
	)
	go sendEmail(cfg, name, email, "Your password has been changed", body)
}
