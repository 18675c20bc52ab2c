package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/config"
)

// AccountMail is the data rendered into the account notification templates.
type AccountMail struct {
	To       string
	FullName string
	UserCode string
	Password string
}

var accountTemplate = template.Must(template.New("account").Parse(`<html>
<body>
<p>Hello {{.FullName}},</p>
<p>Your LMS account has been created.</p>
<p>Username: <b>{{.UserCode}}</b><br>Password: <b>{{.Password}}</b></p>
<p>Please change your password after the first login.</p>
</body>
</html>`))

var accountUpdateTemplate = template.Must(template.New("accountUpdate").Parse(`<html>
<body>
<p>Hello {{.FullName}},</p>
<p>Your LMS account details were updated.</p>
<p>Username: <b>{{.UserCode}}</b></p>
<p>If you did not request this change, contact the administrator.</p>
</body>
</html>`))

// Mailer sends templated account mail over SMTP.
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &Mailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: auth,
		from: cfg.MailFrom,
	}
}

func (m *Mailer) SendAccountMail(mail AccountMail) error {
	return m.send(mail.To, "Your LMS account", accountTemplate, mail)
}

func (m *Mailer) SendAccountUpdateMail(mail AccountMail) error {
	return m.send(mail.To, "Your LMS account was updated", accountUpdateTemplate, mail)
}

func (m *Mailer) send(to, subject string, tpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render mail template: %w", err)
	}

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		body.String())

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
