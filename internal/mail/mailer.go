package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dicon-MoodLight/moodlight-server/internal/config"
)

// Notifier delivers confirmation codes out of band. The SMTP implementation
// is constructed once at startup and injected; nothing here is ambient state.
type Notifier interface {
	SendConfirmCode(ctx context.Context, to, code string) error
}

const confirmTemplate = `<div style="font-family:sans-serif;max-width:480px;margin:0 auto">
  <h2>MoodLight 인증 코드</h2>
  <p>아래 코드를 입력해 이메일 인증을 완료해 주세요.</p>
  <p style="font-size:32px;letter-spacing:8px;font-weight:bold">{{.Code}}</p>
</div>`

type SMTPNotifier struct {
	host     string
	port     string
	address  string
	password string
	fromName string
	tmpl     *template.Template
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		host:     cfg.EmailHost,
		port:     cfg.EmailPort,
		address:  cfg.EmailAddress,
		password: cfg.EmailPassword,
		fromName: cfg.EmailFromName,
		tmpl:     template.Must(template.New("confirm").Parse(confirmTemplate)),
	}
}

func (n *SMTPNotifier) SendConfirmCode(ctx context.Context, to, code string) error {
	var body bytes.Buffer
	if err := n.tmpl.Execute(&body, map[string]string{"Code": code}); err != nil {
		return fmt.Errorf("render confirm mail: %w", err)
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", n.fromName, n.address),
		fmt.Sprintf("To: %s", to),
		"Subject: MoodLight email confirmation",
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		body.String(),
	}, "\r\n")

	if err := n.send(to, []byte(msg)); err != nil {
		return fmt.Errorf("send confirm mail: %w", err)
	}

	slog.Info("confirmation email sent", "to", to)
	return nil
}

func (n *SMTPNotifier) send(to string, msg []byte) error {
	addr := net.JoinHostPort(n.host, n.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// Deadline covers the whole SMTP conversation.
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, n.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: n.host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", n.address, n.password, n.host)
	if err := c.Auth(auth); err != nil {
		return err
	}

	if err := c.Mail(n.address); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
