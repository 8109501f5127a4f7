package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/domain/constants"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishReminder publishes a reminder by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishReminder(ctx context.Context, message *service.ReminderMessage) error {
	attributes := map[string]string{
		"type":            constants.NotificationTypeEventReminder,
		"notification_id": message.NotificationID,
		"user_id":         message.UserID,
		"event_id":        message.EventID,
	}
	if message.RequestID != "" {
		attributes["request_id"] = message.RequestID
	}

	p.logger.Info("[LocalPubSub] Publishing reminder",
		slog.String("endpoint", p.endpoint),
		slog.String("notification_id", message.NotificationID),
		slog.String("user_id", message.UserID),
	)

	return p.push(ctx, message, message.NotificationID, message.RequestID, attributes)
}

// PublishEventCreated announces a new event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishEventCreated(ctx context.Context, message *service.EventCreatedMessage) error {
	attributes := map[string]string{
		"type":     constants.MessageTypeEventCreated,
		"event_id": message.EventID,
	}
	if message.RequestID != "" {
		attributes["request_id"] = message.RequestID
	}

	p.logger.Info("[LocalPubSub] Publishing event announcement",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", message.EventID),
	)

	return p.push(ctx, message, message.EventID, message.RequestID, attributes)
}

// push wraps the payload in the Pub/Sub push envelope and POSTs it.
func (p *localHTTPPublisher) push(ctx context.Context, payload any, messageID, requestID string, attributes map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/" + constants.NotificationTopic + "-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = messageID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("local endpoint returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
