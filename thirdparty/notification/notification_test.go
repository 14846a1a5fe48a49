package notification_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	"github.com/muhammadheryan/home-service/thirdparty/notification"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type senderFunc func(ctx context.Context, to, subject, body string) error

func (f senderFunc) Send(ctx context.Context, to, subject, body string) error {
	return f(ctx, to, subject, body)
}

func TestDispatcher_Dispatch(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger.Set(zap.New(core))

	var delivered []string
	ok := senderFunc(func(_ context.Context, to, subject, _ string) error {
		delivered = append(delivered, to+"|"+subject)
		return nil
	})
	failing := senderFunc(func(context.Context, string, string, string) error {
		return stderrors.New("smtp down")
	})
	blocking := senderFunc(func(context.Context, string, string, string) error {
		time.Sleep(time.Second)
		return nil
	})

	tests := []struct {
		name    string
		senders map[constant.Channel]notification.Sender
		n       model.Notification
		wantErr bool
	}{
		{
			name:    "success: email routed to email sender",
			senders: map[constant.Channel]notification.Sender{constant.ChannelEmail: ok},
			n:       model.Notification{Channel: constant.ChannelEmail, Destination: "a@example.com", Subject: "hi"},
		},
		{
			name:    "error: sender fails",
			senders: map[constant.Channel]notification.Sender{constant.ChannelPhone: failing},
			n:       model.Notification{Channel: constant.ChannelPhone, Destination: "+12015550123"},
			wantErr: true,
		},
		{
			name:    "error: channel without sender",
			senders: map[constant.Channel]notification.Sender{constant.ChannelEmail: ok},
			n:       model.Notification{Channel: constant.ChannelPhone, Destination: "+12015550123"},
			wantErr: true,
		},
		{
			name:    "error: empty destination",
			senders: map[constant.Channel]notification.Sender{constant.ChannelEmail: ok},
			n:       model.Notification{Channel: constant.ChannelEmail},
			wantErr: true,
		},
		{
			name:    "error: sender exceeds timeout",
			senders: map[constant.Channel]notification.Sender{constant.ChannelEmail: blocking},
			n:       model.Notification{Channel: constant.ChannelEmail, Destination: "a@example.com"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := notification.NewDispatcher(50*time.Millisecond, metrics.Noop(), tt.senders)

			err := d.Dispatch(context.Background(), tt.n)
			if tt.wantErr {
				assert.True(t, errors.IsType(err, constant.ErrDeliveryFailure))
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.Equal(t, []string{"a@example.com|hi"}, delivered)
	assert.Equal(t, 4, logs.FilterMessage("[Dispatch] err send").Len())
}
