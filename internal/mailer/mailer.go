// Package mailer publishes invite email events to the message broker.
package mailer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Pranshu-project/zyro/config"
	"github.com/Pranshu-project/zyro/internal/entities"
)

// Mailer hands invite emails to the delivery worker via RabbitMQ.
type Mailer interface {
	SendInvite(inv entities.Invitation) error
	Close()
}

// InviteEmailEvent is the payload consumed by the email worker.
type InviteEmailEvent struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RawToken  string    `json:"raw_token"`
	Reinvite  bool      `json:"reinvite"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher is the amqp-backed Mailer.
type Publisher struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	exchange   string
	routingKey string
	log        *zap.SugaredLogger
}

// NewPublisher connects to the broker and declares the events exchange.
func NewPublisher(cfg config.RabbitMQConfig, log *zap.SugaredLogger) (*Publisher, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		log:        log.Named("mailer"),
	}, nil
}

// SendInvite publishes one invite email event with persistent delivery.
func (p *Publisher) SendInvite(inv entities.Invitation) error {
	event := InviteEmailEvent{
		UserID:    inv.UserID,
		Name:      inv.Name,
		Email:     inv.Email,
		RawToken:  inv.RawToken,
		Reinvite:  inv.Reinvite,
		CreatedAt: time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal invite event: %w", err)
	}

	err = p.channel.Publish(
		p.exchange,
		p.routingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish invite event: %w", err)
	}

	p.log.Infow("invite email queued", "user_id", inv.UserID, "reinvite", inv.Reinvite)
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Noop drops invite emails, for deployments without a broker.
type Noop struct {
	log *zap.SugaredLogger
}

// NewNoop constructs a disabled Mailer.
func NewNoop(log *zap.SugaredLogger) *Noop {
	return &Noop{log: log.Named("mailer")}
}

// SendInvite logs and discards the invitation.
func (n *Noop) SendInvite(inv entities.Invitation) error {
	n.log.Warnw("mailer disabled, invite email not sent", "user_id", inv.UserID, "email", inv.Email)
	return nil
}

// Close is a no-op.
func (n *Noop) Close() {}
