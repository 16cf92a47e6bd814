package email

import (
	"net/smtp"
	"strings"
	"testing"

	"folio/api/internal/store"
)

func TestServiceIsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{
			name:     "empty config",
			config:   Config{},
			expected: false,
		},
		{
			name: "missing host",
			config: Config{
				Port: "587",
				From: "test@example.com",
			},
			expected: false,
		},
		{
			name: "missing port",
			config: Config{
				Host: "smtp.example.com",
				From: "test@example.com",
			},
			expected: false,
		},
		{
			name: "missing from",
			config: Config{
				Host: "smtp.example.com",
				Port: "587",
			},
			expected: false,
		},
		{
			name: "fully configured",
			config: Config{
				Host: "smtp.example.com",
				Port: "587",
				From: "test@example.com",
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.config)
			if svc.IsConfigured() != tt.expected {
				t.Errorf("IsConfigured() = %v, want %v", svc.IsConfigured(), tt.expected)
			}
		})
	}
}

func TestRenderInquiryTemplate(t *testing.T) {
	data := InquiryData{
		AppName:     "Folio",
		OwnerName:   "Brooklyn",
		Email:       "buyer@example.com",
		Category:    "Web Design",
		Description: "I need a landing page",
	}

	html, err := renderTemplate(inquiryEmailTemplate, data)
	if err != nil {
		t.Fatalf("renderTemplate failed: %v", err)
	}

	if !strings.Contains(html, "Folio") {
		t.Error("template should contain app name")
	}
	if !strings.Contains(html, "Brooklyn") {
		t.Error("template should contain owner name")
	}
	if !strings.Contains(html, "buyer@example.com") {
		t.Error("template should contain sender email")
	}
	if !strings.Contains(html, "I need a landing page") {
		t.Error("template should contain the message")
	}
	if strings.Contains(html, "Phone") {
		t.Error("empty fields should be skipped")
	}
}

func TestSendInquiryNotification(t *testing.T) {
	svc := NewService(Config{
		Host:     "smtp.example.com",
		Port:     "587",
		From:     "noreply@example.com",
		FromName: "Folio",
	})

	var gotTo []string
	var gotMsg []byte
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotTo = to
		gotMsg = msg
		return nil
	}

	err := svc.SendInquiryNotification("brooklyn@example.com", "Brooklyn", store.Inquiry{
		Email:       "buyer@example.com",
		Category:    "Branding",
		Description: "Logo refresh",
	})
	if err != nil {
		t.Fatalf("SendInquiryNotification failed: %v", err)
	}

	if len(gotTo) != 1 || gotTo[0] != "brooklyn@example.com" {
		t.Errorf("unexpected recipients: %v", gotTo)
	}
	body := string(gotMsg)
	if !strings.Contains(body, "Subject: New inquiry on your portfolio") {
		t.Error("message should carry the inquiry subject")
	}
	if !strings.Contains(body, "buyer@example.com") {
		t.Error("message should contain the sender email")
	}
	if !strings.Contains(body, "From: Folio <noreply@example.com>") {
		t.Error("message should carry the display from header")
	}
}

func TestSendHTMLEmailUnconfigured(t *testing.T) {
	svc := NewService(Config{})
	if err := svc.SendHTMLEmail([]string{"a@example.com"}, "s", "<p>hi</p>"); err == nil {
		t.Fatal("expected error for unconfigured service")
	}
}
