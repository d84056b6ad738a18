package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeBookingCreated   = "booking_created"
	TypePaymentSubmitted = "payment_submitted"
	TypeBookingConfirmed = "booking_confirmed"
	TypePaymentRejected  = "payment_rejected"
	TypeBookingCancelled = "booking_cancelled"
)

type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	BookingCode   string    `json:"booking_code"`
	UserID        string    `json:"user_id"`
	Seats         int       `json:"seats"`
	TotalAmount   float64   `json:"total_amount"`
	TravelDate    time.Time `json:"travel_date"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Producer publishes booking lifecycle events. Callers hold it as a nil-able
// collaborator; publishing never fails a booking operation.
type Producer struct {
	writer *kafka.Writer
	topic  string
	log    *zap.Logger
}

func NewProducer(brokers []string, topic string, log *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
		log:    log.With(zap.String("component", "event_producer")),
	}
}

func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.BookingID),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", event.Type),
			zap.String("booking_id", event.BookingID),
		)
		return err
	}

	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
