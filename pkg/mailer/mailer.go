package mailer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"taskstreak-backend/internal/task/domain"
	"taskstreak-backend/pkg/config"
)

// Mailer sends reminder emails over SMTP.
type Mailer struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

// Sender is the interface the reminder schedulers depend on.
type Sender interface {
	SendTaskReminder(email, name string, tasks []*domain.Task) error
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:        cfg.EmailFrom,
		frontendURL: cfg.FrontendURL,
	}
}

// SendTaskReminder emails the user a list of their pending tasks.
func (m *Mailer) SendTaskReminder(email, name string, tasks []*domain.Task) error {
	if m.from == "" {
		return errors.New("mailer not configured: EMAIL_FROM is empty")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "🔔 TaskStreak Daily Reminder - Pending Tasks")
	msg.SetBody("text/html", m.reminderBody(name, tasks))

	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) reminderBody(name string, tasks []*domain.Task) string {
	var items strings.Builder
	for i, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = " | Due: " + t.DueDate.Format("02 Jan 2006")
		}
		fmt.Fprintf(&items,
			`<div style="padding:10px;margin:5px 0;background:#f3f4f6;border-left:4px solid #667eea;">`+
				`<strong>%d. %s</strong><br><small>Priority: %s%s</small></div>`,
			i+1, t.Title, strings.ToUpper(string(t.Priority)), due)
	}

	plural := ""
	if len(tasks) != 1 {
		plural = "s"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;line-height:1.6;color:#333;">
  <div style="max-width:600px;margin:0 auto;padding:20px;">
    <div style="background:#667eea;color:white;padding:30px;text-align:center;border-radius:10px 10px 0 0;">
      <h1>🔥 TaskStreak</h1>
      <p>Daily Task Reminder</p>
    </div>
    <div style="background:#f9fafb;padding:30px;border-radius:0 0 10px 10px;">
      <h2>Hi %s! 👋</h2>
      <p>You have <strong>%d</strong> pending task%s for today:</p>
      %s
      <p>Don't break your streak! Complete your tasks and keep building momentum. 💪</p>
      <center><a href="%s/tasks" style="display:inline-block;background:#667eea;color:white;padding:12px 30px;text-decoration:none;border-radius:6px;">View My Tasks</a></center>
      <div style="text-align:center;margin-top:20px;color:#666;font-size:12px;">
        <p>You're receiving this email because you have pending tasks in TaskStreak.</p>
        <p>© %d TaskStreak. Keep building your productivity streak!</p>
      </div>
    </div>
  </div>
</body>
</html>`, name, len(tasks), plural, items.String(), m.frontendURL, time.Now().Year())
}
