package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Alert kinds for manual remediation. Each marks a degraded step that left
// the system usable but incomplete.
const (
	AlertProvisioningFailed = "SPREADSHEET_PROVISIONING_FAILED"
	AlertOrphanSpreadsheet  = "ORPHAN_SPREADSHEET"
	AlertWelcomeEmailFailed = "WELCOME_EMAIL_FAILED"
	AlertLeadAppendFailed   = "LEAD_APPEND_FAILED"
	AlertLeadEmailFailed    = "LEAD_EMAIL_FAILED"
)

// OperatorAlert is the follow-up work item published when a best-effort
// step fails. Processing the core flow never waits on a consumer.
type OperatorAlert struct {
	Kind        string    `json:"kind"`
	AccountID   string    `json:"account_id,omitempty"`
	CheckoutRef string    `json:"checkout_ref,omitempty"`
	Detail      string    `json:"detail"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type AlertPublisherInterface interface {
	PublishAlert(ctx context.Context, alert OperatorAlert) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishAlert(ctx context.Context, alert OperatorAlert) error {
	if alert.OccurredAt.IsZero() {
		alert.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal operator alert: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish operator alert: %w", err)
	}
	return nil
}
