// Package mail sends plain SMTP messages with a small fluent builder.
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/htoohtoo/storefront/config"
)

type Message struct {
	from    string
	to      []string
	subject string
	body    string
	html    bool
}

func New() *Message {
	return &Message{from: config.Get("MAIL_FROM", "noreply@htoohtoo.com")}
}

func (m *Message) From(addr string) *Message   { m.from = addr; return m }
func (m *Message) To(addrs ...string) *Message { m.to = append(m.to, addrs...); return m }
func (m *Message) Subject(s string) *Message   { m.subject = s; return m }
func (m *Message) Body(body string) *Message   { m.body = body; m.html = false; return m }
func (m *Message) HTML(body string) *Message   { m.body = body; m.html = true; return m }

// Send delivers the message through the configured SMTP host. With no
// MAIL_HOST set it is a no-op, so development runs never need a mail server.
func (m *Message) Send() error {
	host := config.Get("MAIL_HOST", "")
	if host == "" {
		return nil
	}
	if len(m.to) == 0 {
		return errors.New("mail: no recipients")
	}

	addr := host + ":" + config.Get("MAIL_PORT", "587")

	contentType := "text/plain"
	if m.html {
		contentType = "text/html"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", m.subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\nContent-Type: %s; charset=\"UTF-8\"\r\n\r\n", contentType)
	b.WriteString(m.body)

	var auth smtp.Auth
	if user := config.Get("MAIL_USERNAME", ""); user != "" {
		auth = smtp.PlainAuth("", user, config.Get("MAIL_PASSWORD", ""), host)
	}

	return smtp.SendMail(addr, auth, m.from, m.to, []byte(b.String()))
}
