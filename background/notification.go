package background

import (
	"context"

	"github.com/bitmark-inc/flo-api/external/onesignal"
)

//go:generate mockgen -source=notification.go -destination=../mocks/notification.go -package=mocks

type NotificationCenter interface {
	NotifyAccountByText(userID string, headings, contents map[string]string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// NotifyAccountByText will send message to a user by raw headings, contents and data
func (o *OnesignalNotificationCenter) NotifyAccountByText(userID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "user_id",
			"relation": "=",
			"value":    userID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}
