package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/streadway/amqp"
)

// AMQPNotifier publishes notification jobs to a durable queue; a worker
// consumes them and sends the actual emails.
type AMQPNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

var _ Notifier = &AMQPNotifier{}

// Message is the wire shape of one notification job.
type Message struct {
	EventType  string                 `json:"event_type"`
	CampaignID int64                  `json:"campaign_id"`
	UserID     int64                  `json:"user_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	EnqueuedAt time.Time              `json:"enqueued_at"`
}

// NewAMQPNotifier dials the broker and declares the queue.
func NewAMQPNotifier(url, queue string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQPNotifier{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

// Notify ...
func (n *AMQPNotifier) Notify(
	_ context.Context, eventType string, campaignID, userID int64,
	payload map[string]interface{},
) error {
	body, err := json.Marshal(Message{
		EventType:  eventType,
		CampaignID: campaignID,
		UserID:     userID,
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.channel.Publish(
		"",      // default exchange
		n.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Close ...
func (n *AMQPNotifier) Close() error {
	_ = n.channel.Close()
	return n.conn.Close()
}
