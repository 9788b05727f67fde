package notification

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/domain/service"

	"go.uber.org/fx"
)

// noopNotifier is used when Firebase is not configured.
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) SendSingleNotification(_ context.Context, _, title, _ string, _ map[string]string) error {
	n.logger.Debug("[NoopNotifier] Push disabled, skipping", slog.String("title", title))

	return nil
}

func (n *noopNotifier) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	n.logger.Debug("[NoopNotifier] Push disabled, skipping batch",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, nil, nil
}

// NotifierParams holds dependencies for the NotificationService, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the Firebase notifier when configured and a
// no-op notifier otherwise.
func NewNotificationService(params NotifierParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, using no-op notifier")

		return &noopNotifier{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging notifier", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseService(params.Ctx, cfg)
}
