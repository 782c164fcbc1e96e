package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// AcceptedMessage is the payload published for every accepted request; the
// confirmation worker consumes it.
type AcceptedMessage struct {
	Kind          string `json:"kind" validate:"required,oneof=booking event kitchen"`
	ID            string `json:"id" validate:"required"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Publisher wraps an SQS client and a queue URL.
type Publisher struct {
	SQS      SQSAPI
	QueueURL string
}

// NewPublisher returns a Publisher bound to a queue URL.
func NewPublisher(sqsClient SQSAPI, queueURL string) *Publisher {
	return &Publisher{
		SQS:      sqsClient,
		QueueURL: queueURL,
	}
}

// SendAccepted publishes an accepted-request message. Kind and id are also
// attached as message attributes so consumers can filter without decoding
// the body.
func (p *Publisher) SendAccepted(ctx context.Context, msg AcceptedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	bodyStr := string(body)
	input := &sqs.SendMessageInput{
		QueueUrl:    &p.QueueURL,
		MessageBody: &bodyStr,
	}

	attrs := map[string]string{
		"kind": msg.Kind,
		"id":   msg.ID,
	}
	if msg.CorrelationID != "" {
		attrs["correlation_id"] = msg.CorrelationID
	}
	msgAttrs := map[string]sqstypes.MessageAttributeValue{}
	for k, v := range attrs {
		v := v
		msgAttrs[k] = sqstypes.MessageAttributeValue{
			DataType:    awsString("String"),
			StringValue: &v,
		}
	}
	input.MessageAttributes = msgAttrs

	if _, err := p.SQS.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// awsString helper
func awsString(s string) *string { return &s }
