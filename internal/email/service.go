// Package email provides email sending capabilities via SMTP.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"folio/api/internal/store"
)

// Config holds SMTP configuration
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Service provides email sending
type Service struct {
	config Config
	server string
	auth   smtp.Auth
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewService creates a new email service
func NewService(config Config) *Service {
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	return &Service{
		config: config,
		server: config.Host + ":" + config.Port,
		auth:   auth,
		send:   smtp.SendMail,
	}
}

// IsConfigured returns true if email is configured
func (s *Service) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != ""
}

// SendHTMLEmail sends an HTML email with a plain text fallback part
func (s *Service) SendHTMLEmail(to []string, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	boundary := "boundary-folio"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary)
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "Please view this email in an HTML-capable email client.\r\n")
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "%s\r\n", htmlBody)
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	return s.send(s.server, s.auth, s.config.From, to, msg.Bytes())
}

// InquiryData holds data for the inquiry notification template
type InquiryData struct {
	AppName     string
	OwnerName   string
	Email       string
	Phone       string
	Country     string
	Category    string
	ProductName string
	Description string
}

// SendInquiryNotification tells a portfolio owner a new inquiry arrived.
func (s *Service) SendInquiryNotification(to, ownerName string, inquiry store.Inquiry) error {
	data := InquiryData{
		AppName:     "Folio",
		OwnerName:   ownerName,
		Email:       inquiry.Email,
		Phone:       inquiry.Phone,
		Country:     inquiry.Country,
		Category:    inquiry.Category,
		ProductName: inquiry.ProductName,
		Description: inquiry.Description,
	}

	subject := "New inquiry on your portfolio"
	html, err := renderTemplate(inquiryEmailTemplate, data)
	if err != nil {
		return fmt.Errorf("render inquiry template: %w", err)
	}

	return s.SendHTMLEmail([]string{to}, subject, html)
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t := template.Must(template.New("email").Parse(tmpl))
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const inquiryEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New inquiry on {{.AppName}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #0066cc; padding-bottom: 10px; margin-bottom: 20px; }
        .detail { margin: 8px 0; }
        .label { color: #666; font-size: 12px; text-transform: uppercase; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.AppName}}</h1>
    </div>

    <h2>Hi {{.OwnerName}},</h2>

    <p>A visitor just sent an inquiry through your portfolio page.</p>

    <div class="detail"><div class="label">Email</div>{{.Email}}</div>
    {{if .Phone}}<div class="detail"><div class="label">Phone</div>{{.Phone}}</div>{{end}}
    {{if .Country}}<div class="detail"><div class="label">Country</div>{{.Country}}</div>{{end}}
    {{if .Category}}<div class="detail"><div class="label">Category</div>{{.Category}}</div>{{end}}
    {{if .ProductName}}<div class="detail"><div class="label">Project</div>{{.ProductName}}</div>{{end}}
    {{if .Description}}<div class="detail"><div class="label">Message</div>{{.Description}}</div>{{end}}

    <div class="footer">
        <p>You receive this message because someone filled in the contact form on your {{.AppName}} page.</p>
    </div>
</body>
</html>`
