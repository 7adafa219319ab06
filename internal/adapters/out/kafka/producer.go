// Package kafka publishes workflow traffic to the message broker: committed
// events for real-time consumers and inbox rows for the external delivery
// channel. Everything sent here is best effort; the database rows written by
// the same workflow remain the source of truth.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/notification"

	"github.com/IBM/sarama"
)

// orderEventMessage is the wire envelope of one committed workflow event.
type orderEventMessage struct {
	ActorID      string    `json:"actor_id,omitempty"`
	ActorRole    string    `json:"actor_role"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	OrderID      string    `json:"order_id"`
	Before       string    `json:"before,omitempty"`
	After        string    `json:"after,omitempty"`
	Message      string    `json:"message"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// notificationMessage is the wire envelope of one inbox row handed to the
// delivery channel.
type notificationMessage struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	OrderID     string    `json:"order_id"`
	Action      string    `json:"action"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// Producer sends workflow messages through one synchronous Kafka producer.
// Events are keyed by order so consumers see each order's history in commit
// order; notifications are keyed by recipient for the same reason.
type Producer struct {
	producer           sarama.SyncProducer
	eventsTopic        string
	notificationsTopic string
}

// NewProducer connects to the broker and returns a producer publishing
// events and notifications to the given topics.
func NewProducer(brokers []string, eventsTopic, notificationsTopic string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("connect to kafka brokers: %w", err)
	}

	return newProducer(producer, eventsTopic, notificationsTopic), nil
}

func newProducer(producer sarama.SyncProducer, eventsTopic, notificationsTopic string) *Producer {
	return &Producer{
		producer:           producer,
		eventsTopic:        eventsTopic,
		notificationsTopic: notificationsTopic,
	}
}

// PublishOrderEvent publishes one committed workflow event to the events
// topic.
func (p *Producer) PublishOrderEvent(_ context.Context, event audit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	envelope := orderEventMessage{
		ActorRole:    event.ActorRole().String(),
		Action:       string(event.Action()),
		ResourceType: string(event.ResourceType()),
		ResourceID:   event.ResourceID().String(),
		OrderID:      event.OrderID().String(),
		Before:       event.Before(),
		After:        event.After(),
		Message:      event.Message(),
		OccurredAt:   time.Now(),
	}
	if !event.IsSystem() {
		envelope.ActorID = event.ActorID().String()
	}

	return p.send(p.eventsTopic, event.OrderID().String(), envelope)
}

// Deliver hands one inbox row to the delivery channel behind the
// notifications topic.
func (p *Producer) Deliver(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	envelope := notificationMessage{
		ID:          n.ID().String(),
		RecipientID: n.RecipientID().String(),
		OrderID:     n.OrderID().String(),
		Action:      n.Action(),
		Message:     n.Message(),
		CreatedAt:   n.CreatedAt(),
	}

	return p.send(p.notificationsTopic, n.RecipientID().String(), envelope)
}

// Close shuts the underlying producer down, flushing buffered messages.
func (p *Producer) Close() error {
	return p.producer.Close()
}

func (p *Producer) send(topic string, key string, envelope any) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal message for topic %s: %w", topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send message to topic %s: %w", topic, err)
	}

	return nil
}
