package verification_test

import (
	"testing"

	"github.com/muhammadheryan/home-service/application/verification"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	"github.com/stretchr/testify/assert"
)

func TestCanProceed(t *testing.T) {
	none := &model.ServiceEntity{}
	email := &model.ServiceEntity{EmailVerified: true}
	phone := &model.ServiceEntity{PhoneVerified: true}
	both := &model.ServiceEntity{EmailVerified: true, PhoneVerified: true}

	tests := []struct {
		name   string
		policy constant.VerificationPolicy
		rec    *model.ServiceEntity
		want   bool
	}{
		{name: "any: nothing verified", policy: constant.VerificationAny, rec: none, want: false},
		{name: "any: email verified", policy: constant.VerificationAny, rec: email, want: true},
		{name: "any: phone verified", policy: constant.VerificationAny, rec: phone, want: true},
		{name: "email: phone only", policy: constant.VerificationEmail, rec: phone, want: false},
		{name: "email: email only", policy: constant.VerificationEmail, rec: email, want: true},
		{name: "phone: email only", policy: constant.VerificationPhone, rec: email, want: false},
		{name: "phone: phone only", policy: constant.VerificationPhone, rec: phone, want: true},
		{name: "all: one channel", policy: constant.VerificationAll, rec: email, want: false},
		{name: "all: both channels", policy: constant.VerificationAll, rec: both, want: true},
		{name: "nil record", policy: constant.VerificationAny, rec: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verification.CanProceed(tt.policy, tt.rec))
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := verification.ParsePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, constant.VerificationAny, p)

	p, err = verification.ParsePolicy("all")
	assert.NoError(t, err)
	assert.Equal(t, constant.VerificationAll, p)

	_, err = verification.ParsePolicy("sometimes")
	assert.Error(t, err)
}
