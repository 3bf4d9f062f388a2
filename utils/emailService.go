package utils

import (
	"codemaster/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email. When a SendGrid API key is configured it
// goes through SendGrid, otherwise plain SMTP. Errors are returned so callers
// can log them; notification sends never fail the request that triggered them.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridApiKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("CodeMaster", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email: %d %s", resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid rejected email: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CodeMaster <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outbound emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A1A2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4E9F3D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CODEMASTER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CodeMaster. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to CodeMaster"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>CodeMaster</strong>! Your account has been created successfully.</p>
		<p>Browse the catalog, add courses to your cart and start learning today.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Manual payment submitted (to admin)
func SendPaymentSubmittedEmail(orderID uint, amount float64, userEmail, utr, proofURL string) {
	subject := fmt.Sprintf("Payment Verification Needed: Order #%d", orderID)
	body := fmt.Sprintf(`
		<p>A new manual UPI payment is waiting for verification.</p>
		<div class="info-box">
			<strong>Order:</strong> #%d<br>
			<strong>Amount:</strong> ₹%.2f<br>
			<strong>User:</strong> %s<br>
			<strong>UTR:</strong> %s<br>
			<strong>Proof:</strong> %s
		</div>
		<p>Please review and approve or reject it from the admin dashboard.</p>
	`, orderID, amount, userEmail, utr, proofURL)

	go SendEmail([]string{config.AppConfig.AdminEmail}, subject, getEmailTemplate("New Order Pending Verification", body))
}

// 3. Order decision (to user)
func SendOrderStatusEmail(email string, orderID uint, amount float64, status string) {
	var subject, body string
	if status == "completed" {
		subject = fmt.Sprintf("Payment Approved: Order #%d", orderID)
		body = fmt.Sprintf(`
			<p>Good news! Your payment of <strong>₹%.2f</strong> for order <strong>#%d</strong> has been verified.</p>
			<p>You are now enrolled in your courses. Happy learning!</p>
		`, amount, orderID)
	} else {
		subject = fmt.Sprintf("Payment Rejected: Order #%d", orderID)
		body = fmt.Sprintf(`
			<p>Unfortunately we could not verify your payment of <strong>₹%.2f</strong> for order <strong>#%d</strong>.</p>
			<p>The order has been cancelled. If you believe this is a mistake, please contact support with your UTR number.</p>
		`, amount, orderID)
	}

	go SendEmail([]string{email}, subject, getEmailTemplate("Order Update", body))
}
