package services

import (
	"os"
	"path/filepath"
	"testing"
	"travel_crm_go/config"
	"travel_crm_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTemplateDir points EmailTemplateDir at a temp dir for the test
func useTemplateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := EmailTemplateDir
	EmailTemplateDir = dir
	t.Cleanup(func() { EmailTemplateDir = old })
	return dir
}

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadTemplate(t *testing.T) {
	dir := useTemplateDir(t)
	writeTemplate(t, dir, "test_template.html", "<p>Hello {{.CompanyName}}</p>")
	writeTemplate(t, dir, "test_template.txt", "Hello {{.CompanyName}}")
	writeTemplate(t, dir, "test_template_hi.html", "<p>नमस्ते {{.CompanyName}}</p>")
	writeTemplate(t, dir, "test_template_hi.txt", "नमस्ते {{.CompanyName}}")

	data := RegistrationEmailData{CompanyName: "Trips & Tours"}

	t.Run("Load Base Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "en", data)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello Trips &amp; Tours")
		assert.Equal(t, "Hello Trips & Tours", text, "text bodies are not HTML-escaped")
	})

	t.Run("Load Localized Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "hi", data)
		assert.NoError(t, err)
		assert.Contains(t, html, "नमस्ते")
		assert.Contains(t, text, "नमस्ते")
	})

	t.Run("Fallback to Base when Localized Missing", func(t *testing.T) {
		html, _, err := loadTemplate("test_template", "fr", data)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello")
	})

	t.Run("Template Not Found", func(t *testing.T) {
		_, _, err := loadTemplate("non_existent", "en", data)
		assert.Error(t, err)
	})
}

func TestBuildRegistrationEmails(t *testing.T) {
	require.NoError(t, i18n.Load())
	dir := useTemplateDir(t)
	writeTemplate(t, dir, "registration_notification.html", "<p>{{.CompanyName}} ({{.Email}})</p>")
	writeTemplate(t, dir, "registration_notification.txt", "{{.CompanyName}} ({{.Email}})")
	writeTemplate(t, dir, "welcome.html", "<p>Welcome {{.CompanyName}}</p>")
	writeTemplate(t, dir, "welcome.txt", "Welcome {{.CompanyName}}")

	data := RegistrationEmailData{CompanyName: "Wanderlust", Email: "hi@wanderlust.in", Language: "hi"}

	notification := BuildRegistrationNotificationEmail("sales@travelcrm.app", data)
	assert.Equal(t, []string{"sales@travelcrm.app"}, notification.To)
	assert.Equal(t, "New signup: Wanderlust", notification.Subject)
	assert.Equal(t, "Wanderlust (hi@wanderlust.in)", notification.TextBody)

	welcome := BuildWelcomeEmail(data)
	assert.Equal(t, []string{"hi@wanderlust.in"}, welcome.To)
	assert.Contains(t, welcome.Subject, "Wanderlust")
	assert.Equal(t, "Welcome Wanderlust", welcome.TextBody, "falls back to the base template")
}

func TestSendEmail_TestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	email := &Email{To: []string{"test@example.com"}, Subject: "Test", HTMLBody: "Body"}

	assert.NoError(t, SendEmail(cfg, email))
}

func TestSendEmail_NoApiKey(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false}
	email := &Email{To: []string{"test@example.com"}, Subject: "Test", HTMLBody: "Body"}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY not configured")
}

func TestSendEmail_NoBody(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false, ResendAPIKey: "key"}
	email := &Email{To: []string{"test@example.com"}, Subject: "Test"}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must have either HTMLBody or TextBody")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Hello", truncate("Hello World", 5))
	assert.Equal(t, "Hello World", truncate("Hello World", 20))
}
