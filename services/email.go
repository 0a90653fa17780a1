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

	"expedientes_app_go/config"

	"github.com/resend/resend-go/v2"
)

// emailTemplateDir is where loadTemplate looks for <name>.html and <name>.txt
var emailTemplateDir = "templates/emails"

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// buildEmailWithFallback renders templateName from disk. When the files are
// missing or broken, fallbackText is rendered instead and sent as plain text.
func buildEmailWithFallback(templateName string, tmplData interface{}, fallbackText string, toEmail string) *Email {
	htmlBody, textBody, err := loadTemplate(templateName, tmplData)
	if err != nil {
		log.Printf("[WARNING] Error loading %s email template, using built-in text: %v", templateName, err)
		htmlBody = ""
		textBody, err = renderText(templateName, fallbackText, tmplData)
		if err != nil {
			log.Printf("[WARNING] Error rendering built-in %s email: %v", templateName, err)
		}
	}

	return &Email{
		To: []string{toEmail},
		// Subject is set by caller
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// loadTemplate loads and executes templateName.html and templateName.txt from emailTemplateDir
func loadTemplate(templateName string, data interface{}) (html string, text string, err error) {
	read := func(ext string) (string, string, error) {
		path := filepath.Join(emailTemplateDir, templateName+ext)
		content, err := os.ReadFile(path)
		if err != nil {
			return "", path, fmt.Errorf("failed to read template %s: %w", path, err)
		}
		return string(content), path, nil
	}

	htmlSrc, htmlPath, err := read(".html")
	if err != nil {
		return "", "", err
	}
	tmpl, err := template.New(filepath.Base(htmlPath)).Parse(htmlSrc)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", htmlPath, err)
	}
	var htmlBuf bytes.Buffer
	if err := tmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", htmlPath, err)
	}

	textSrc, textPath, err := read(".txt")
	if err != nil {
		return "", "", err
	}
	textContent, err := renderText(filepath.Base(textPath), textSrc, data)
	if err != nil {
		return "", "", err
	}

	return htmlBuf.String(), textContent, nil
}

// renderText executes a plain text template; no HTML escaping is applied
func renderText(name, src string, data interface{}) (string, error) {
	tmpl, err := texttemplate.New(name).Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("[INFO] Email logged (test mode, not sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	fromAddress := fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom)

	params := &resend.SendEmailRequest{
		From:    fromAddress,
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("[INFO] Email sent via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode, not sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// AgendaEntry is one line of the agenda digest
type AgendaEntry struct {
	When     string
	Title    string
	Case     string
	Priority string
}

// AgendaDigestEmailData contains data for the agenda digest template
type AgendaDigestEmailData struct {
	UserName string
	Date     string
	AppURL   string
	Overdue  []AgendaEntry
	DueToday []AgendaEntry
	Upcoming []AgendaEntry
	Hearings []AgendaEntry
}

const agendaDigestFallback = `Hola {{.UserName}},

Agenda del {{.Date}}
{{if .Overdue}}
Plazos vencidos:
{{range .Overdue}}- {{.When}} {{.Title}} ({{.Case}})
{{end}}{{end}}{{if .DueToday}}
Vencen hoy:
{{range .DueToday}}- {{.When}} {{.Title}} ({{.Case}})
{{end}}{{end}}{{if .Upcoming}}
Próximos 7 días:
{{range .Upcoming}}- {{.When}} {{.Title}} ({{.Case}})
{{end}}{{end}}{{if .Hearings}}
Audiencias:
{{range .Hearings}}- {{.When}} {{.Title}} ({{.Case}})
{{end}}{{end}}
{{.AppURL}}
`

// BuildAgendaDigestEmail creates the daily agenda email for one user
func BuildAgendaDigestEmail(userEmail string, data AgendaDigestEmailData) *Email {
	email := buildEmailWithFallback("agenda_digest", data, agendaDigestFallback, userEmail)
	email.Subject = fmt.Sprintf("Agenda del %s: %d vencidos, %d para hoy", data.Date, len(data.Overdue), len(data.DueToday))
	return email
}
