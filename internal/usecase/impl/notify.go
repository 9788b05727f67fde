package impl

import (
	"context"
	"log/slog"

	"market/internal/domain/entity"
	"market/internal/domain/service"
)

// pushToUser sends a best-effort push notification. Users without a device
// token are skipped and delivery failures are only logged.
func pushToUser(ctx context.Context, logger *slog.Logger, notifier service.NotificationService, user *entity.User, title, body string, data map[string]string) {
	if notifier == nil || user == nil || user.FCMToken == "" {
		return
	}

	if err := notifier.SendSingleNotification(ctx, user.FCMToken, title, body, data); err != nil {
		logger.Warn("Push notification failed",
			slog.String("userID", user.ID.String()),
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}
