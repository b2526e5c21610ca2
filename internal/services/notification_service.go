// internal/services/notification_service.go
package services

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tab1k/tbd-back/internal/config"
	"github.com/tab1k/tbd-back/internal/models"
)

// Sender is the outbound mail capability.
type Sender interface {
	Send(subject, body, from string, recipients []string) error
}

// NotificationService dispatches best-effort notifications about new contact
// requests. A failed or skipped send is logged and recorded but never
// surfaces to the caller; the submission it belongs to has already succeeded.
type NotificationService struct {
	db     *gorm.DB
	cfg    config.EmailConfig
	sender Sender
	log    *logrus.Entry
}

func NewNotificationService(db *gorm.DB, cfg config.EmailConfig, sender Sender) *NotificationService {
	if sender == nil {
		sender = &smtpSender{cfg: cfg}
	}
	return &NotificationService{
		db:     db,
		cfg:    cfg,
		sender: sender,
		log:    logrus.WithField("component", "notification_service"),
	}
}

func (s *NotificationService) NotifyNewRequest(r *models.Request) {
	logEntry := s.log.WithFields(logrus.Fields{
		"request_id": r.ID,
		"operation":  "notify_new_request",
	})

	if len(s.cfg.Recipients) == 0 {
		logEntry.Warn("notification recipients not configured, skipping send")
		s.record(r, models.NotificationStatusSkipped, "no recipients configured")
		return
	}

	subject := fmt.Sprintf("Новая заявка: %s - %s", r.Name, r.Phone)
	body := fmt.Sprintf(
		"Поступила новая заявка с сайта.\n\nДата: %s\nИмя: %s\nТелефон: %s\n",
		r.CreatedAt.Format("02.01.2006 15:04"),
		r.Name,
		r.Phone,
	)

	if err := s.sender.Send(subject, body, s.cfg.FromEmail, s.cfg.Recipients); err != nil {
		logEntry.WithError(err).Error("failed to send request notification")
		s.record(r, models.NotificationStatusFailed, err.Error())
		return
	}

	s.record(r, models.NotificationStatusSent, "")
}

func (s *NotificationService) record(r *models.Request, status models.NotificationStatus, errText string) {
	entry := &models.NotificationLog{
		RequestID:  r.ID,
		Recipients: s.cfg.Recipients,
		Status:     status,
		Error:      errText,
	}
	if err := s.db.Create(entry).Error; err != nil {
		s.log.WithError(err).Error("failed to record notification log")
	}
}

// smtpSender delivers mail over plain SMTP. The whole session runs under a
// single deadline so a slow or silent mail server turns into a failed send
// instead of a hung submission.
type smtpSender struct {
	cfg config.EmailConfig
}

func (s *smtpSender) Send(subject, body, from string, recipients []string) error {
	if s.cfg.SMTPHost == "" {
		return fmt.Errorf("smtp host not configured")
	}

	msg := []byte(fmt.Sprintf(
		"To: %s\r\nFrom: %s <%s>\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		strings.Join(recipients, ", "), s.cfg.FromName, from, subject, body,
	))

	timeout := time.Duration(s.cfg.SendTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to smtp server: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("failed to set smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("failed to open smtp session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.SMTPHost}); err != nil {
			return fmt.Errorf("starttls failed: %w", err)
		}
	}
	if ok, _ := client.Extension("AUTH"); ok && s.cfg.SMTPUsername != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("mail command failed: %w", err)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt command failed: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data command failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}
