package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/store"
)

// NotificationHandler serves the in-app notification feed for any signed-in
// user.
type NotificationHandler struct {
	Store *store.Store
}

func NewNotificationHandler(st *store.Store) *NotificationHandler {
	if st == nil {
		panic("nil store passed to NewNotificationHandler")
	}
	return &NotificationHandler{Store: st}
}

// List handles GET /v1/notifications. Pass ?unread=true to hide read
// entries.
func (h *NotificationHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	unreadOnly := c.QueryParam("unread") == "true"
	items := h.Store.NotificationsForUser(c.Request().Context(), uid, unreadOnly)
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// MarkRead handles POST /v1/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	n, err := h.Store.NotificationByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	}
	if n.UserID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	updated, err := h.Store.MarkNotificationRead(ctx, n.ID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	}
	return c.JSON(http.StatusOK, updated)
}

// MarkAllRead handles POST /v1/notifications/read-all and reports how many
// entries changed.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	count := h.Store.MarkAllNotificationsRead(c.Request().Context(), uid)
	return c.JSON(http.StatusOK, echo.Map{"marked": count})
}
