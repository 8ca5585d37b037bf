package server

import (
	"context"
	"log/slog"

	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// websocketAuth authenticates the upgrade request. Browsers cannot set headers
// on a websocket handshake, so a ?token= query parameter is accepted as well.
func (s *Server) websocketAuth() fiber.Handler {
	auth := middleware.AuthRequired(s.identity)
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return models.RespondWithError(c, fiber.StatusUpgradeRequired,
				models.NewValidationError("websocket upgrade required"))
		}
		if c.Get(fiber.HeaderAuthorization) == "" {
			if token := c.Query("token"); token != "" {
				c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			}
		}
		return auth(c)
	}
}

// WebsocketHandler streams notification events to the authenticated user.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userID").(uint)
		if !ok {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}

		user, err := s.userRepo.GetByID(context.Background(), userID)
		if err != nil {
			observability.Logger.Warn("websocket user lookup failed",
				slog.Uint64("user_id", uint64(userID)),
				slog.String("error", err.Error()),
			)
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			observability.Logger.Warn("websocket registration refused",
				slog.Uint64("user_id", uint64(userID)),
				slog.String("error", err.Error()),
			)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		observability.Logger.Debug("websocket connected",
			slog.Uint64("user_id", uint64(userID)),
			slog.String("username", user.Username),
		)

		go client.WritePump()
		client.ReadPump()
	})
}
