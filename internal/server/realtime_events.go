package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"bloghub/internal/observability"
)

// PublishUserEvent delivers a {type, payload} event to userID's websocket clients.
// With Redis configured the event goes through the notifier only, and every
// instance (this one included) delivers it from its subscription. Without Redis
// it is broadcast on the local hub.
func (s *Server) PublishUserEvent(ctx context.Context, userID uint, eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		observability.Logger.WarnContext(ctx, "failed to marshal event",
			slog.String("event", eventType),
			slog.String("error", err.Error()),
		)
		return
	}
	message := string(eventJSON)

	if s.notifier != nil && s.notifier.Enabled() {
		if err := s.notifier.PublishUser(context.WithoutCancel(ctx), userID, message); err != nil {
			observability.Logger.WarnContext(ctx, "failed to publish event",
				slog.String("event", eventType),
				slog.Uint64("user_id", uint64(userID)),
				slog.String("error", err.Error()),
			)
			s.hub.Broadcast(userID, message)
		}
		return
	}
	s.hub.Broadcast(userID, message)
}
