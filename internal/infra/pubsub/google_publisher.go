package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"beacon/internal/domain/constants"
	"beacon/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishReminder publishes a reminder to Google Pub/Sub
func (p *googlePubSubPublisher) PublishReminder(ctx context.Context, message *service.ReminderMessage) error {
	attributes := map[string]string{
		"type":            constants.NotificationTypeEventReminder,
		"notification_id": message.NotificationID,
		"user_id":         message.UserID,
		"event_id":        message.EventID,
	}
	if message.RequestID != "" {
		attributes["request_id"] = message.RequestID
	}

	p.logger.Info("[GooglePubSub] Publishing reminder",
		slog.String("notification_id", message.NotificationID),
		slog.String("user_id", message.UserID),
	)

	return p.publish(ctx, message, attributes)
}

// PublishEventCreated announces a new event on Google Pub/Sub
func (p *googlePubSubPublisher) PublishEventCreated(ctx context.Context, message *service.EventCreatedMessage) error {
	attributes := map[string]string{
		"type":     constants.MessageTypeEventCreated,
		"event_id": message.EventID,
	}
	if message.RequestID != "" {
		attributes["request_id"] = message.RequestID
	}

	p.logger.Info("[GooglePubSub] Publishing event announcement",
		slog.String("event_id", message.EventID),
	)

	return p.publish(ctx, message, attributes)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, payload any, attributes map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	result := p.publisher.Publish(ctx, msg)

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Message published",
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
