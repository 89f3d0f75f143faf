package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
)

// SMSMessage is the payload published for the SMS delivery worker
type SMSMessage struct {
	Phone       string    `json:"phone"`
	Code        string    `json:"code"`
	RequestedAt time.Time `json:"requested_at"`
}

// SMSGateway publishes OTP delivery jobs to NSQ. The actual delivery worker
// is an external collaborator.
type SMSGateway struct {
	producer *nsq.Producer
	topic    string
}

// NewSMSGateway creates an NSQ-backed SMS gateway
func NewSMSGateway(address, topic string) (*SMSGateway, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &SMSGateway{producer: producer, topic: topic}, nil
}

// SendSMS publishes a delivery job for the code
func (g *SMSGateway) SendSMS(ctx context.Context, phone, code string) error {
	msg := SMSMessage{
		Phone:       phone,
		Code:        code,
		RequestedAt: time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal SMS message: %w", err)
	}

	if err := g.producer.Publish(g.topic, payload); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDeliveryFailed, err)
	}

	return nil
}

// Stop closes the underlying producer
func (g *SMSGateway) Stop() {
	g.producer.Stop()
}
