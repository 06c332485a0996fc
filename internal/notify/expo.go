package notify

import (
	"fmt"

	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
)

// Sender delivers one push message to one device token.
type Sender interface {
	Send(token, title, body string) error
}

type ExpoSender struct {
	client *expo.PushClient
}

func NewExpoSender() *ExpoSender {
	return &ExpoSender{client: expo.NewPushClient(nil)}
}

// ValidateToken rejects strings that are not Expo push tokens before they
// reach the database.
func ValidateToken(token string) error {
	_, err := expo.NewExponentPushToken(token)
	return err
}

func (s *ExpoSender) Send(token, title, body string) error {
	pushToken, err := expo.NewExponentPushToken(token)
	if err != nil {
		return fmt.Errorf("invalid push token %q: %w", token, err)
	}

	response, err := s.client.Publish(&expo.PushMessage{
		To:       []expo.ExponentPushToken{pushToken},
		Title:    title,
		Body:     body,
		Sound:    "default",
		Priority: expo.DefaultPriority,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	if err := response.ValidateResponse(); err != nil {
		return fmt.Errorf("push rejected for %q: %w", token, err)
	}
	return nil
}
