package sqssender

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HamsavardhanS/Zyno-Sample/internal/notification/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// API is the subset of *sqs.Client the sender uses.
type API interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender publishes each notification as a JSON message for a downstream
// email/SMS worker.
type Sender struct {
	client   API
	queueURL string
}

func New(client API, queueURL string) *Sender {
	return &Sender{client: client, queueURL: queueURL}
}

// NewFromEnv loads the default AWS credential chain for region.
func NewFromEnv(ctx context.Context, region, queueURL string) (*Sender, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("sqs sender: queue url is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(sqs.NewFromConfig(cfg), queueURL), nil
}

func (s *Sender) Send(ctx context.Context, msg domain.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"channel": {DataType: aws.String("String"), StringValue: aws.String(string(msg.Channel))},
		},
	})
	if err != nil {
		return fmt.Errorf("sqs send %s: %w", msg.Channel, err)
	}
	return nil
}
