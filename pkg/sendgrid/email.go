package sendgrid

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	validate  *validator.Validate
}

const mailSendEndpoint = "/v3/mail/send"

type EmailOption func(*emailService)

// WithHost sends through another API host, e.g. https://api.eu.sendgrid.com
// for EU data residency. An empty host keeps the default.
func WithHost(host string) EmailOption {
	return func(e *emailService) {
		if host != "" {
			e.client.Request.BaseURL = strings.TrimSuffix(host, "/") + mailSendEndpoint
		}
	}
}

func NewEmailService(apiKey string, fromEmail string, fromName string, opts ...EmailOption) EmailService {
	e := &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		validate:  validator.New(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Send implements EmailService.
func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {

	if err := e.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid email request: %w", err)
	}

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail("", req.To)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)

	for _, cc := range req.CC {
		personalization.AddCCs(mail.NewEmail("", cc))
	}

	for _, bcc := range req.BCC {
		personalization.AddBCCs(mail.NewEmail("", bcc))
	}

	personalization.Subject = req.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)

	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// LowStockNotifier mails the logged in user when one of their items runs low.
type LowStockNotifier struct {
	emails EmailService
}

func NewLowStockNotifier(emails EmailService) *LowStockNotifier {
	return &LowStockNotifier{emails: emails}
}

func (n *LowStockNotifier) NotifyLowStock(ctx context.Context, alert *models.LowStockAlert) error {

	sneaker := alert.Sneaker

	req := &models.EmailNotificationRequest{
		To:      alert.User.Email,
		Subject: fmt.Sprintf("Low stock: %s", sneaker.Name),
		Content: fmt.Sprintf("Hi %s, only %d pairs of %s (%s) are left in stock.",
			alert.User.Name, sneaker.Quantity, sneaker.Name, sneaker.Category),
		HTMLContent: fmt.Sprintf("<p>Hi %s,</p><p>only <strong>%d</strong> pairs of <strong>%s</strong> (%s) are left in stock.</p>",
			html.EscapeString(alert.User.Name), sneaker.Quantity, html.EscapeString(sneaker.Name), sneaker.Category),
	}

	if err := n.emails.Send(ctx, req); err != nil {
		return fmt.Errorf("failed to send low stock alert: %w", err)
	}

	slog.Info("Low stock alert sent",
		slog.String("sneakerId", sneaker.ID),
		slog.Int("quantity", sneaker.Quantity),
	)

	return nil
}
