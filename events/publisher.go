package events

import (
	"encoding/json"
	"log"
	"time"

	"lexbot/types"

	"github.com/IBM/sarama"
)

// MessageEvent is published after each chat message is stored.
type MessageEvent struct {
	SessionID string     `json:"session_id"`
	MessageID string     `json:"message_id"`
	UserID    string     `json:"user_id"`
	Role      types.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

// Publisher emits chat activity events to Kafka. A nil *Publisher is valid
// and publishes nothing, so callers never branch on whether Kafka is
// configured. Publish failures are logged, never propagated into the chat
// flow.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a Kafka publisher. Returns nil with no error when
// brokers is empty (publishing disabled).
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Publisher{producer: producer, topic: topic}, nil
}

// MessageStored publishes a MessageEvent keyed by session id, so all events
// for one session land on one partition in order.
func (p *Publisher) MessageStored(sessionID, messageID, userID string, role types.Role) {
	if p == nil {
		return
	}

	evt := MessageEvent{
		SessionID: sessionID,
		MessageID: messageID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		log.Printf("Failed to marshal chat event: %v", err)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(sessionID),
		Value: sarama.ByteEncoder(b),
	})
	if err != nil {
		log.Printf("Failed to publish chat event: %v", err)
	}
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
