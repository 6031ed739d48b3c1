package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"travel_crm_go/config"
	"travel_crm_go/services/i18n"

	"github.com/resend/resend-go/v2"
)

// EmailTemplateDir holds <name>[_<lang>].html and .txt templates
var EmailTemplateDir = "templates/emails"

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// buildEmailWithFallback loads a localized template and falls back to English
func buildEmailWithFallback(templateName string, lang string, tmplData interface{}, toEmail string) *Email {
	htmlBody, textBody, err := loadTemplate(templateName, lang, tmplData)
	if err != nil {
		log.Printf("Error loading %s email template for lang %s: %v", templateName, lang, err)
		if lang != "en" {
			htmlBody, textBody, err = loadTemplate(templateName, "en", tmplData)
			if err != nil {
				log.Printf("Error loading default 'en' template for %s: %v", templateName, err)
			}
		}
	}

	return &Email{
		To:       []string{toEmail},
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// loadTemplate renders templateName_lang.{html,txt}, falling back to templateName.{html,txt}
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	read := func(ext string) (string, []byte, error) {
		path := filepath.Join(EmailTemplateDir, fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		content, err := os.ReadFile(path)
		if err != nil {
			path = filepath.Join(EmailTemplateDir, templateName+ext)
			content, err = os.ReadFile(path)
			if err != nil {
				return path, nil, fmt.Errorf("failed to read template %s: %w", path, err)
			}
		}
		return path, content, nil
	}

	path, content, err := read(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := template.New(filepath.Base(path)).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", path, err)
	}

	// Plain text bodies must not be HTML-escaped
	path, content, err = read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(filepath.Base(path)).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", path, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("✅ Email logged successfully (development mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email in a goroutine so handlers never wait on Resend
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// RegistrationEmailData is shared by the sales notification and the welcome email
type RegistrationEmailData struct {
	CompanyName string
	Email       string
	Language    string
	AppURL      string
}

// BuildRegistrationNotificationEmail tells the sales inbox about a modal signup
func BuildRegistrationNotificationEmail(salesEmail string, data RegistrationEmailData) *Email {
	email := buildEmailWithFallback("registration_notification", "en", data, salesEmail)
	email.Subject = i18n.Translate("en", "email.subject.registration", map[string]interface{}{"company": data.CompanyName})
	return email
}

// BuildWelcomeEmail confirms the signup to the registrant in their language
func BuildWelcomeEmail(data RegistrationEmailData) *Email {
	email := buildEmailWithFallback("welcome", data.Language, data, data.Email)
	email.Subject = i18n.Translate(data.Language, "email.subject.welcome", map[string]interface{}{"company": data.CompanyName})
	return email
}
