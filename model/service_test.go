package model_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	"github.com/stretchr/testify/assert"
)

func TestServiceEntity_PreferredContact(t *testing.T) {
	tests := []struct {
		name         string
		entity       model.ServiceEntity
		verifiedOnly bool
		wantChannel  constant.Channel
		wantDest     string
		wantOK       bool
	}{
		{
			name:        "verified email wins",
			entity:      model.ServiceEntity{Email: "a@b.co", EmailVerified: true, PhoneNumber: "+12015550123", PhoneVerified: true},
			wantChannel: constant.ChannelEmail, wantDest: "a@b.co", wantOK: true,
		},
		{
			name:        "verified phone before unverified email",
			entity:      model.ServiceEntity{Email: "a@b.co", PhoneNumber: "+12015550123", PhoneVerified: true},
			wantChannel: constant.ChannelPhone, wantDest: "+12015550123", wantOK: true,
		},
		{
			name:         "nothing verified",
			entity:       model.ServiceEntity{Email: "a@b.co"},
			verifiedOnly: true,
		},
		{
			name:        "unverified fallback",
			entity:      model.ServiceEntity{PhoneNumber: "+12015550123"},
			wantChannel: constant.ChannelPhone, wantDest: "+12015550123", wantOK: true,
		},
		{
			name: "no contact",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel, dest, ok := tt.entity.PreferredContact(tt.verifiedOnly)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantChannel, channel)
			assert.Equal(t, tt.wantDest, dest)
		})
	}
}

func TestServiceUpdate_Columns(t *testing.T) {
	name := "Layla"
	verified := false
	status := constant.ServiceStatusFinished
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	upd := &model.ServiceUpdate{
		FullName:      &name,
		EmailVerified: &verified,
		PeriodDate:    &date,
		Status:        &status,
	}

	assert.Equal(t, []model.ColumnValue{
		{Column: "email_verified", Value: false},
		{Column: "full_name", Value: "Layla"},
		{Column: "period_date", Value: date},
		{Column: "status", Value: "finished"},
	}, upd.Columns())

	assert.Empty(t, (&model.ServiceUpdate{}).Columns())
}

func TestDeleteFilter_Empty(t *testing.T) {
	assert.True(t, model.DeleteFilter{}.Empty())
	assert.False(t, model.DeleteFilter{ID: "x"}.Empty())
	assert.False(t, model.DeleteFilter{UnverifiedOnly: true}.Empty())
}
