package server

import (
	"bloghub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NotificationsRequest pages the caller's notification feed.
type NotificationsRequest struct {
	Page            int    `json:"page"`
	Filter          string `json:"filter" validate:"omitempty,notification_filter"`
	DeletedDocCount int    `json:"deletedDocCount" validate:"gte=0"`
}

// NotificationsCountRequest counts the caller's notifications.
type NotificationsCountRequest struct {
	Filter string `json:"filter" validate:"omitempty,notification_filter"`
}

// NewNotification godoc
// @Summary Check for unseen notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /new-notification [get]
// @Security BearerAuth
func (s *Server) NewNotification(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	available, err := s.notificationService.HasNew(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"new_notification_available": available})
}

// Notifications godoc
// @Summary List notifications
// @Description Returns one page newest first and marks the caller's notifications seen.
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body NotificationsRequest true "Page, filter and deleted count"
// @Success 200 {object} map[string][]models.Notification
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /notifications [post]
// @Security BearerAuth
func (s *Server) Notifications(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req NotificationsRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	items, err := s.notificationService.List(ctx, service.ListNotificationsInput{
		RecipientID:     userID,
		Filter:          req.Filter,
		Page:            req.Page,
		DeletedDocCount: req.DeletedDocCount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"notifications": items})
}

// AllNotificationsCount godoc
// @Summary Count notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body NotificationsCountRequest true "Filter"
// @Success 200 {object} map[string]int64
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /all-notifications-count [post]
// @Security BearerAuth
func (s *Server) AllNotificationsCount(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req NotificationsCountRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	total, err := s.notificationService.Count(ctx, userID, req.Filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"totalDocs": total})
}
