package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/home-service/constant"
	cerr "github.com/muhammadheryan/home-service/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrOTPExpired)

	assert.Equal(t, "otp code has expired", err.Error())
	assert.Equal(t, "0008", err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.ErrorHTTPCode())
	assert.Equal(t, constant.ErrOTPExpired, err.Type())
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("verify: %w", cerr.SetCustomError(constant.ErrNotFound))

	assert.True(t, cerr.IsType(wrapped, constant.ErrNotFound))
	assert.False(t, cerr.IsType(wrapped, constant.ErrOTPMismatch))
	assert.False(t, cerr.IsType(fmt.Errorf("plain"), constant.ErrNotFound))
	assert.False(t, cerr.IsType(nil, constant.ErrNotFound))
}

func TestEveryTypeIsMapped(t *testing.T) {
	for errType := constant.Successful; errType <= constant.ErrTooManyRequests; errType++ {
		assert.NotEmpty(t, constant.ErrorTypeMessage[errType], "message for %d", errType)
		assert.NotEmpty(t, constant.ErrorTypeCode[errType], "code for %d", errType)
		assert.NotZero(t, constant.ErrorTypeHTTPCode[errType], "http code for %d", errType)
	}
}
