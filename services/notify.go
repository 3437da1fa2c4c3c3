// file: services/notify.go
package services

import (
	"fmt"
	"net/smtp"

	"InnoHub/config"
	"InnoHub/logger"
	"InnoHub/models"

	"gorm.io/gorm"
)

// Notifier fans domain events out to users. Delivery is best-effort:
// failures are logged, never surfaced to the caller.
type Notifier interface {
	SendToRoles(roles []models.UserRole, eventKind, title, body string)
	SendToUser(userID uint32, eventKind, title, body string)
}

// Mailer sends one plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}

// FeedNotifier persists in-app notification rows and, when a mailer is
// configured, mirrors user-directed notifications by email.
type FeedNotifier struct {
	db     *gorm.DB
	mailer Mailer
}

func NewFeedNotifier(db *gorm.DB, mailer Mailer) *FeedNotifier {
	return &FeedNotifier{db: db, mailer: mailer}
}

func (n *FeedNotifier) SendToRoles(roles []models.UserRole, eventKind, title, body string) {
	var users []models.User
	if err := n.db.Where("role IN ? AND status = ?", roles, models.StatusActive).Find(&users).Error; err != nil {
		logger.Error("Failed to resolve notification recipients", "event", eventKind, "error", err)
		return
	}
	if len(users) == 0 {
		return
	}

	rows := make([]models.Notification, 0, len(users))
	for _, u := range users {
		rows = append(rows, models.Notification{
			UserID:    u.ID,
			EventKind: eventKind,
			Title:     title,
			Body:      body,
		})
	}
	if err := n.db.Create(&rows).Error; err != nil {
		logger.Error("Failed to write notifications", "event", eventKind, "error", err)
	}
}

func (n *FeedNotifier) SendToUser(userID uint32, eventKind, title, body string) {
	row := models.Notification{
		UserID:    userID,
		EventKind: eventKind,
		Title:     title,
		Body:      body,
	}
	if err := n.db.Create(&row).Error; err != nil {
		logger.Error("Failed to write notification", "event", eventKind, "user_id", userID, "error", err)
	}

	if n.mailer == nil {
		return
	}
	var user models.User
	if err := n.db.First(&user, userID).Error; err != nil {
		return
	}
	if err := n.mailer.Send(user.Email, title, body); err != nil {
		logger.Warn("Failed to send notification email", "user_id", userID, "error", err)
	}
}

// SMTPMailer delivers via a plain SMTP relay.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewSMTPMailerFromConfig returns nil when no SMTP host is configured, in
// which case the notifier stays feed-only.
func NewSMTPMailerFromConfig() *SMTPMailer {
	if config.App.SMTPHost == "" {
		return nil
	}
	return &SMTPMailer{
		host: config.App.SMTPHost,
		port: config.App.SMTPPort,
		user: config.App.SMTPUser,
		pass: config.App.SMTPPass,
		from: config.App.MailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	message := []byte(fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\n\n%s", subject, body))
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message)
}
