package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/sewalink/sewalink-functions/pkg/api"
	"github.com/sewalink/sewalink-functions/pkg/mapping"
	"github.com/sewalink/sewalink-functions/pkg/models"
)

// SQSNotifier implements the Notifier interface using AWS SQS.
type SQSNotifier struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSNotifier creates a new SQSNotifier.
func NewSQSNotifier(client *sqs.Client, queueURL string) *SQSNotifier {
	return &SQSNotifier{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Notifier = (*SQSNotifier)(nil)

// giftEvent is the message envelope published to the gift events queue.
type giftEvent struct {
	Event string    `json:"event"`
	Gift  *api.Gift `json:"gift"`
}

// GiftSent publishes a gift.sent event to the queue.
func (n *SQSNotifier) GiftSent(ctx context.Context, gift *models.GiftRecord) error {
	body, err := json.Marshal(giftEvent{Event: "gift.sent", Gift: mapping.ToApiGift(gift)})
	if err != nil {
		return fmt.Errorf("failed to marshal gift event for SQS: %w", err)
	}

	_, err = n.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send gift event to SQS: %w", err)
	}

	return nil
}
