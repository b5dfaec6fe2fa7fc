package notification

import (
	"context"

	"skillbridge/models"
)

// Sink receives user-facing booking feedback. Delivery is fire-and-forget:
// implementations log their own failures and never report them to the caller.
type Sink interface {
	Notify(ctx context.Context, kind models.NotificationKind, message string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, kind models.NotificationKind, message string)

func (f SinkFunc) Notify(ctx context.Context, kind models.NotificationKind, message string) {
	f(ctx, kind, message)
}

// MultiSink fans a notification out to every sink in order.
type MultiSink []Sink

func (m MultiSink) Notify(ctx context.Context, kind models.NotificationKind, message string) {
	for _, s := range m {
		if s != nil {
			s.Notify(ctx, kind, message)
		}
	}
}
