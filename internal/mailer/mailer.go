package mailer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gopkg.in/gomail.v2"

	"github.com/thierrygoms/barberapp-server/internal/config"
)

const resetTokenTTL = time.Hour

type Mailer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// ResetLink builds the deep link the email carries: the app opens its reset
// screen with a short-lived signed token identifying the account.
func (m *Mailer) ResetLink(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     email,
		"purpose": "password_reset",
		"exp":     time.Now().Add(resetTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(m.cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	return m.cfg.ResetURL + "?token=" + token, nil
}

func (m *Mailer) SendPasswordReset(email string) error {
	link, err := m.ResetLink(email)
	if err != nil {
		return fmt.Errorf("reset link: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPUser)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Recuperação de senha - Sua Barbearia")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Olá! Você solicitou a recuperação de sua senha. "+
			"Clique no link abaixo para redefinir sua senha:\n\n%s\n\n"+
			"Se você não solicitou essa recuperação, desconsidere este e-mail.",
		link,
	))

	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP port: %w", err)
	}

	d := gomail.NewDialer(m.cfg.SMTPHost, port, m.cfg.SMTPUser, m.cfg.SMTPPass)
	return d.DialAndSend(msg)
}
