package notification

import (
	"context"
	"fmt"
	"time"

	"medicore/config"
	"medicore/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailNotifier delivers transactional mail over SMTP.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewEmailNotifier(logger *zap.Logger) *EmailNotifier {
	cfg := config.AppConfig
	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
		logger: logger,
	}
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	n.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (n *EmailNotifier) SendWelcome(ctx context.Context, user *models.User) error {
	body := fmt.Sprintf(`<h2>Welcome, %s</h2>
<p>Your account has been created. You can now book appointments, view your
medical records and manage your profile online.</p>`, user.Name)
	return n.send(ctx, user.Email, "Welcome to MediCore", body)
}

func (n *EmailNotifier) SendAppointmentConfirmation(ctx context.Context, patient *models.User, appt *models.Appointment, doctorName string) error {
	body := fmt.Sprintf(`<h2>Appointment Confirmed</h2>
<p>Dear %s,</p>
<p>Your appointment with Dr. %s is scheduled for <strong>%s</strong>
(%d minutes).</p>
<p>Reason for visit: %s</p>`,
		patient.Name, doctorName,
		appt.StartTime.Format("Monday, 2 January 2006 at 15:04"),
		appt.DurationMinutes, appt.ReasonForVisit)
	return n.send(ctx, patient.Email, "Your appointment is booked", body)
}

func (n *EmailNotifier) SendAppointmentReminder(ctx context.Context, patient *models.User, appt *models.Appointment, doctorName string) error {
	until := time.Until(appt.StartTime).Round(time.Hour)
	body := fmt.Sprintf(`<h2>Appointment Reminder</h2>
<p>Dear %s,</p>
<p>This is a reminder that your appointment with Dr. %s is in about %s,
on <strong>%s</strong>.</p>`,
		patient.Name, doctorName, until,
		appt.StartTime.Format("Monday, 2 January 2006 at 15:04"))
	return n.send(ctx, patient.Email, "Upcoming appointment reminder", body)
}
