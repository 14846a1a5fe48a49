package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Sender delivers HTML email through the Gmail API of an authorized mailbox.
type Sender struct {
	service *gmail.Service
	from    string
}

// NewSender builds a Gmail client from an offline refresh token.
func NewSender(ctx context.Context, clientID, clientSecret, refreshToken, from string) (*Sender, error) {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}

	token := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now(), // Force refresh
	}

	service, err := gmail.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &Sender{service: service, from: from}, nil
}

func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(buildMessage(s.from, to, subject, body)),
	}
	if _, err := s.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send gmail message: %w", err)
	}
	return nil
}

// buildMessage renders an RFC 2822 message with an HTML body.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	if from != "" && from != "me" {
		b.WriteString("From: " + from + "\r\n")
	}
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString("\r\n")
	b.WriteString(wrap(base64.StdEncoding.EncodeToString([]byte(body)), 76))
	return []byte(b.String())
}

func wrap(s string, width int) string {
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width] + "\r\n")
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
