package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/notification"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// NotificationsClient is the notification service module.
type NotificationsClient struct {
	t *transport.Client
}

var _ storage.NotificationStore = (*NotificationsClient)(nil)

func (c *NotificationsClient) CreateNotification(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	var out notification.Notification
	if err := c.t.Post(ctx, "/api/notifications", n, &out); err != nil {
		return notification.Notification{}, err
	}
	return out, nil
}

func (c *NotificationsClient) ListNotifications(ctx context.Context, userID string) ([]notification.Notification, error) {
	query := url.Values{}
	if userID != "" {
		query.Set("userId", userID)
	}
	var out []notification.Notification
	if err := c.t.Get(ctx, "/api/notifications", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *NotificationsClient) MarkNotificationsRead(ctx context.Context, userID string, ids ...string) (int, error) {
	body := struct {
		UserID string   `json:"userId"`
		IDs    []string `json:"ids"`
	}{UserID: userID, IDs: ids}
	var out struct {
		Marked int `json:"marked"`
	}
	if err := c.t.Post(ctx, "/api/notifications/read", body, &out); err != nil {
		return 0, err
	}
	return out.Marked, nil
}

func (c *NotificationsClient) CountUnread(ctx context.Context, userID string) (int, error) {
	query := url.Values{}
	query.Set("userId", userID)
	var out struct {
		Count int `json:"count"`
	}
	if err := c.t.Get(ctx, "/api/notifications/unread-count", &out, &transport.RequestOptions{Query: query}); err != nil {
		return 0, err
	}
	return out.Count, nil
}
