package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	notificationDomain "github.com/ourshop/shop/internal/notification/domain"
)

//go:embed templates/password_reset.html
var templateFS embed.FS

var passwordResetTemplate = template.Must(
	template.ParseFS(templateFS, "templates/password_reset.html"),
)

type passwordResetData struct {
	Recipient string
	Password  string
}

// PasswordResetEmail builds the password recovery message carrying the new password.
func PasswordResetEmail(recipient, password string) (notificationDomain.Email, error) {
	if recipient == "" {
		return notificationDomain.Email{}, notificationDomain.ErrInvalidRecipient
	}

	var html bytes.Buffer
	if err := passwordResetTemplate.Execute(&html, passwordResetData{
		Recipient: recipient,
		Password:  password,
	}); err != nil {
		return notificationDomain.Email{}, fmt.Errorf("failed to render password reset email: %w", err)
	}

	return notificationDomain.Email{
		To:      recipient,
		Subject: notificationDomain.PasswordRecoverySubject,
		Text: fmt.Sprintf(
			"We received a request to reset the password of your OurShop account.\n\nYour new password is: %s\n",
			password,
		),
		HTML: html.String(),
	}, nil
}
