package infrastructure

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional mail through SendGrid. Without an API key
// it stays disabled and every send is a logged no-op.
type Mailer struct {
	apiKey     string
	senderName string
	senderMail string
}

func NewMailer() *Mailer {
	return &Mailer{
		apiKey:     os.Getenv("EMAIL_API_KEY"),
		senderName: GetEnvAsString("EMAIL_SENDER_NAME", "Toolbox"),
		senderMail: os.Getenv("EMAIL_SENDER"),
	}
}

func (m *Mailer) SendWelcome(ctx context.Context, recipientEmail, alias string) error {
	if m.apiKey == "" {
		log.Printf("Mailer disabled, skipping welcome mail for %s", alias)
		return nil
	}

	from := mail.NewEmail(m.senderName, m.senderMail)
	subject := "Welcome to the toolbox"
	to := mail.NewEmail(alias, recipientEmail)

	plainTextContent := fmt.Sprintf("Hi %s, your account is ready. Add your first tool and join a group near you.", alias)
	htmlContent := fmt.Sprintf("Hi <strong>%s</strong>, your account is ready. Add your first tool and join a group near you.", alias)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Println("Failed to send welcome email:", err)
		return err
	}

	log.Println("Welcome email sent. Status Code:", response.StatusCode)
	return nil
}
