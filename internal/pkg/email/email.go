package email

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Service defines the interface for outbound email operations.
type Service interface {
	// SendEventNotification sends an event announcement to the given
	// recipients. Delivery is best-effort; callers must not fail their
	// primary operation on an error from here.
	SendEventNotification(recipients []string, eventTitle, eventDate, notificationType string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPService implements Service over plain SMTP
type SMTPService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPService creates a new SMTP-backed email service
func NewSMTPService(config SMTPConfig, logger zerolog.Logger) *SMTPService {
	return &SMTPService{
		config: config,
		logger: logger,
	}
}

var subjectByType = map[string]string{
	"created":   "New Event at SD13 Academy",
	"updated":   "Event Update - SD13 Academy",
	"cancelled": "Event Cancelled - SD13 Academy",
}

// SendEventNotification sends an event announcement to subscribers.
// When SMTP credentials are not configured, the intent is logged and the
// send is reported as successful; this mirrors how the system is run in
// development and on installs without an SMTP relay.
func (s *SMTPService) SendEventNotification(recipients []string, eventTitle, eventDate, notificationType string) error {
	if len(recipients) == 0 {
		return nil
	}

	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Int("recipients", len(recipients)).
			Str("event", eventTitle).
			Str("type", notificationType).
			Msg("SMTP credentials not configured - event notification not sent")
		return nil
	}

	subject, ok := subjectByType[notificationType]
	if !ok {
		subject = "Event Notification - SD13 Academy"
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">%s</h2>
				<p><strong>%s</strong></p>
				<p>Date: %s</p>
				<p>Visit our website for full details and registration.</p>
				<p>SD13 Sports Academy</p>
			</div>
		</body>
		</html>
	`, subject, eventTitle, eventDate)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           s.config.FromEmail,
		"Bcc":          strings.Join(recipients, ", "),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	to := append([]string{s.config.FromEmail}, recipients...)
	if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, to, []byte(message)); err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send event notification email")
		return fmt.Errorf("failed to send event notification email: %w", err)
	}

	s.logger.Info().
		Int("recipients", len(recipients)).
		Str("event", eventTitle).
		Str("type", notificationType).
		Msg("Event notification email sent")
	return nil
}
