package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
}

func NewEmailService(apiKey, fromAddress, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(apiKey),
		from:         fromAddress,
		fromName:     fromName,
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	templateData := map[string]interface{}{
		"FullName": fullName,
		"Email":    email,
		"Year":     time.Now().Year(),
	}

	html, err := s.parseTemplate("welcome.html", templateData)
	if err != nil {
		s.logger.Error("failed to parse welcome template", zap.String("email", email), zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Welcome to Snapfolio!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send welcome email", zap.String("email", email), zap.Error(err))
		return err
	}

	s.logger.Info("welcome email sent", zap.String("email", email), zap.String("id", resp.Id))
	return nil
}

// SendNewMediaEmail yeni bir yükleme sonrası host'u bilgilendirir
func (s *EmailService) SendNewMediaEmail(email, eventName, mediaType, mediaURL string) error {
	templateData := map[string]interface{}{
		"EventName": eventName,
		"MediaType": mediaType,
		"MediaURL":  mediaURL,
		"Year":      time.Now().Year(),
	}

	html, err := s.parseTemplate("new-media.html", templateData)
	if err != nil {
		s.logger.Error("failed to parse new media template", zap.String("email", email), zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: fmt.Sprintf("New Media Uploaded to \"%s\"", eventName),
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send new media email", zap.String("email", email), zap.Error(err))
		return err
	}

	s.logger.Info("new media email sent", zap.String("email", email), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}
