// Package amqp publica los eventos de auditoría del ledger en RabbitMQ para
// consumidores externos (SIEM, archivado). La publicación es best-effort:
// el caller registra el error y sigue; el append nunca se revierte.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/tu-usuario/asset-ledger/internal/application/ledger"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

var _ ledger.AuditPublisher = (*AuditPublisher)(nil)

// AuditPublisher cliente AMQP con exchange direct y cola durable.
type AuditPublisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

// NewAuditPublisher conecta al broker y declara exchange, cola y binding.
func NewAuditPublisher(url, exchangeName, queueName string) (*AuditPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &AuditPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

func (p *AuditPublisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		p.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = p.channel.QueueBind(
		p.queueName,
		p.queueName, // routing key = nombre de cola (exchange direct)
		p.exchangeName,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// auditMessage payload JSON del evento en el broker.
type auditMessage struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Base      string    `json:"base,omitempty"`
	Equipment string    `json:"equipment,omitempty"`
	Quantity  int64     `json:"quantity"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// Publish envía el evento como mensaje persistente, con timeout de 5s.
func (p *AuditPublisher) Publish(ctx context.Context, event *entity.AuditEvent) error {
	body, err := json.Marshal(auditMessage{
		ID:        event.ID,
		Action:    event.Action,
		Actor:     event.Actor,
		Base:      event.BaseID,
		Equipment: event.EquipmentID,
		Quantity:  event.Quantity,
		Details:   event.Details,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal audit message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,
		p.queueName,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *AuditPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
