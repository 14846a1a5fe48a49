package twilio

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender delivers SMS through the Twilio messaging API.
type Sender struct {
	client *twilio.RestClient
	from   string
}

func NewSender(accountSID, authToken, from string) (*Sender, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio credentials")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Sender{client: client, from: from}, nil
}

// Send ignores the subject, SMS has none. The SDK takes no context, the
// dispatcher bounds the call instead.
func (t *Sender) Send(_ context.Context, to, _, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(to)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	return nil
}
