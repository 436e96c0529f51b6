package notifications

import (
	"context"

	"github.com/lunaville/storefront-backend/pkg/logger"
)

// Notification carries the short copy surfaced to the shopper after a cart
// mutation.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notifier receives cart event notifications. Implementations must not block
// the mutation path; failures are swallowed by the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier emits notifications into the structured log. It stands in for a
// push channel until one exists.
type LogNotifier struct {
	logg *logger.Logger
}

// NewLogNotifier wires the log-backed notifier.
func NewLogNotifier(logg *logger.Logger) *LogNotifier {
	return &LogNotifier{logg: logg}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	if l == nil || l.logg == nil {
		return
	}
	ctx = l.logg.WithFields(ctx, map[string]any{
		"notification_title": n.Title,
		"notification_body":  n.Description,
	})
	l.logg.Info(ctx, "cart notification")
}
