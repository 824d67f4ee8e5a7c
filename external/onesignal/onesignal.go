package onesignal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultEndpoint = "https://onesignal.com"

	allPlayersNotSubscribed = "All included players are not subscribed"
)

var ErrAllPlayersNotSubscribed = errors.New("all included players are not subscribed")

func IsErrAllPlayersNotSubscribed(err error) bool {
	return errors.Is(err, ErrAllPlayersNotSubscribed)
}

// NotificationRequest is the body of the create notification api
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"android_channel_id,omitempty"`
}

type NotificationResponse struct {
	ID         string          `json:"id"`
	Recipients int             `json:"recipients"`
	Errors     json.RawMessage `json:"errors,omitempty"`
}

type OneSignalClient struct {
	client *resty.Client
}

// NewClient returns a OneSignal rest client. A nil httpClient uses the
// default one of resty.
func NewClient(httpClient *http.Client, endpoint, apiKey string) *OneSignalClient {
	var c *resty.Client
	if httpClient != nil {
		c = resty.NewWithClient(httpClient)
	} else {
		c = resty.New()
	}

	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c.SetBaseURL(endpoint).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Basic "+apiKey)

	return &OneSignalClient{client: c}
}

func (o *OneSignalClient) SendNotification(ctx context.Context, req *NotificationRequest) error {
	var result NotificationResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/notifications")
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("send notification: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}

	// errors is a list of messages when nobody receives the notification
	var messages []string
	if len(result.Errors) > 0 && json.Unmarshal(result.Errors, &messages) == nil {
		for _, m := range messages {
			if m == allPlayersNotSubscribed {
				return ErrAllPlayersNotSubscribed
			}
		}
	}

	return nil
}
