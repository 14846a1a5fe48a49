package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"go.uber.org/zap"
)

// Sender delivers one rendered message to one destination.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Dispatcher routes a notification to the sender of its channel. Every
// failure, including a timeout, is reported as ErrDeliveryFailure.
type Dispatcher interface {
	Dispatch(ctx context.Context, n model.Notification) error
}

type dispatcher struct {
	senders map[constant.Channel]Sender
	timeout time.Duration
	metrics *metrics.Metrics
}

func NewDispatcher(timeout time.Duration, m *metrics.Metrics, senders map[constant.Channel]Sender) Dispatcher {
	if m == nil {
		m = metrics.Noop()
	}
	return &dispatcher{
		senders: senders,
		timeout: timeout,
		metrics: m,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, n model.Notification) error {
	err := d.send(ctx, n)
	if err != nil {
		d.metrics.Notifications.WithLabelValues(string(n.Channel), "failed").Inc()
		logger.FromContext(ctx).Error("[Dispatch] err send",
			zap.String("channel", string(n.Channel)),
			zap.String("error", err.Error()),
		)
		return errors.SetCustomError(constant.ErrDeliveryFailure)
	}

	d.metrics.Notifications.WithLabelValues(string(n.Channel), "sent").Inc()
	return nil
}

func (d *dispatcher) send(ctx context.Context, n model.Notification) error {
	sender, ok := d.senders[n.Channel]
	if !ok || sender == nil {
		return fmt.Errorf("no sender for channel %q", n.Channel)
	}
	if n.Destination == "" {
		return fmt.Errorf("empty destination")
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	// some SDKs ignore the context, so the deadline is enforced here
	done := make(chan error, 1)
	go func() {
		done <- sender.Send(ctx, n.Destination, n.Subject, n.Body)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogSender writes messages to the log instead of delivering them.
// It stands in for a channel whose credentials are not configured.
type LogSender struct {
	Channel constant.Channel
}

func (l LogSender) Send(ctx context.Context, to, subject, body string) error {
	logger.FromContext(ctx).Info("notification not delivered, sender not configured",
		zap.String("channel", string(l.Channel)),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_length", len(body)),
	)
	return nil
}
