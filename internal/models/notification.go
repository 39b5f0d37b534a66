package models

type NotificationType string

const (
	NotificationTypeLowStock NotificationType = "low_stock"
)

// LowStockAlert is raised when an item drops to or below LowStockThreshold.
type LowStockAlert struct {
	Type    NotificationType `json:"type"`
	User    User             `json:"user"`
	Sneaker Sneaker          `json:"sneaker"`
}

type EmailNotificationRequest struct {
	To          string   `json:"to" validate:"required,email"`
	CC          []string `json:"cc,omitempty" validate:"omitempty,dive,email"`
	BCC         []string `json:"bcc,omitempty" validate:"omitempty,dive,email"`
	Subject     string   `json:"subject" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	HTMLContent string   `json:"html_content,omitempty"`
}
