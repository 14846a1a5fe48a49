package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	expirationExchange   = "service_expiration_exchange"
	expirationQueue      = "service_expiration_queue"
	expirationRoutingKey = "service_expiration"
)

// ServiceExpirationMessage asks for an unverified service request to be purged once ExpiresAt passes.
type ServiceExpirationMessage struct {
	ServiceID string    `json:"service_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ExpirationPublisher interface {
	PublishServiceExpiration(msg ServiceExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	// Declare the delayed exchange
	err := channel.ExchangeDeclare(
		expirationExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	// Declare the queue
	_, err = channel.QueueDeclare(
		expirationQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	// Bind queue to exchange
	return channel.QueueBind(
		expirationQueue,      // queue name
		expirationRoutingKey, // routing key
		expirationExchange,   // exchange
		false,                // no-wait
		nil,                  // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishServiceExpiration(msg ServiceExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		expirationExchange,   // exchange
		expirationRoutingKey, // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, time.Now()),
			},
		},
	)
}

func delayMillis(expiresAt, now time.Time) int64 {
	delay := expiresAt.Sub(now).Milliseconds()
	if delay < 0 {
		return 0
	}
	return delay
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NoopPublisher drops messages; the periodic sweep still purges unverified records.
type NoopPublisher struct{}

func (NoopPublisher) PublishServiceExpiration(ServiceExpirationMessage) error {
	return nil
}
