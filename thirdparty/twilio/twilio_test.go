package twilio_test

import (
	"testing"

	"github.com/muhammadheryan/home-service/thirdparty/twilio"
	"github.com/stretchr/testify/assert"
)

func TestNewSender(t *testing.T) {
	_, err := twilio.NewSender("", "token", "+15005550006")
	assert.Error(t, err)

	s, err := twilio.NewSender("AC123", "token", "+15005550006")
	assert.NoError(t, err)
	assert.NotNil(t, s)
}
