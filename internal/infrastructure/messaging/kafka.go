package messaging

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
)

type Client struct {
	Brokers []string
}

func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func publishJSON(ctx context.Context, w messageWriter, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data, Time: time.Now().UTC()})
}

// Publisher sends order events and customer notifications to Kafka. With no
// brokers configured it only logs them.
type Publisher struct {
	events        messageWriter
	notifications messageWriter
}

var (
	_ interfaces.IOrderEventPublisher = (*Publisher)(nil)
	_ interfaces.ICustomerNotifier    = (*Publisher)(nil)
)

func NewPublisher(client *Client, eventsTopic, notificationsTopic string) *Publisher {
	if client == nil || !client.Enabled() {
		log.Printf("[messaging][kafka] no brokers configured, events are logged only")
		return &Publisher{}
	}
	return &Publisher{
		events:        client.NewWriter(eventsTopic),
		notifications: client.NewWriter(notificationsTopic),
	}
}

// PublishOrderEvent is keyed by gateway order id so events of one order stay ordered.
func (p *Publisher) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	if p.events == nil {
		log.Printf("[messaging][kafka] order event type=%s order_id=%s status=%s", event.Type, event.GatewayID, event.Status)
		return nil
	}
	return publishJSON(ctx, p.events, event.GatewayID, event)
}

func (p *Publisher) Notify(ctx context.Context, n entities.CustomerNotification) error {
	if p.notifications == nil {
		log.Printf("[messaging][kafka] notification code=%s email=%s message=%q", n.OrderCode, n.Email, n.Message)
		return nil
	}
	return publishJSON(ctx, p.notifications, n.OrderCode, n)
}

func (p *Publisher) Close() error {
	for _, w := range []messageWriter{p.events, p.notifications} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}
