// utils/notification_utils.go
package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// SendAgentDecisionEmail notifies an applicant about the outcome of their
// agent registration request. Delivery failure is logged, never fatal.
func SendAgentDecisionEmail(toEmail, fullName string, approved bool) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &smtpPort)
	}

	if smtpHost == "" || smtpUser == "" {
		log.Printf("SMTP not configured, skipping decision email to %s", toEmail)
		return
	}

	subject := "Your AutoNest agent application was rejected"
	body := fmt.Sprintf("Hi %s,\n\nUnfortunately your agent registration request was rejected. You may contact support for details.\n\nAutoNest Team", fullName)
	if approved {
		subject = "Welcome to AutoNest - agent application approved"
		body = fmt.Sprintf("Hi %s,\n\nYour agent registration request has been approved. You can now log in with your registered email and password to receive assigned tasks.\n\nAutoNest Team", fullName)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send agent decision email to %s: %v", toEmail, err)
	}
}
