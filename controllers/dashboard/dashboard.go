package dashboardController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"coursehub/middleware"
	"coursehub/services/dashboard"
	"coursehub/services/ledger"
)

type Handler struct {
	ledger *ledger.Ledger
	now    func() time.Time
}

func New(l *ledger.Ledger) *Handler {
	return &Handler{ledger: l, now: time.Now}
}

func (h *Handler) GetStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	enrollments, err := h.ledger.ListByUser(c.UserContext(), user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, dashboard.Compute(enrollments))
}

func (h *Handler) GetActivity(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	enrollments, err := h.ledger.ListByUser(c.UserContext(), user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, dashboard.MonthlyActivity(enrollments, h.now()))
}
