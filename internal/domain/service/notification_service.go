package service

import (
	"context"
)

// NotificationService pushes order, product and account updates to the
// mobile apps of clients, merchants and couriers.
type NotificationService interface {
	// SendBatchNotification pushes the same message to several devices.
	// Tokens FCM reports as unregistered or malformed come back in invalidTokens.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification pushes a message to the device registered by one user.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
