package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workout-service/internal/worker"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// ActivityHandler exposes the recent-activity audit trail to admins.
type ActivityHandler struct {
	activity *worker.ActivityWorker
}

// NewActivityHandler constructs handler.
func NewActivityHandler(activity *worker.ActivityWorker) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// Recent handles GET /activity/recent.
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 20))

	entries, err := h.activity.Recent(c.Context(), limit)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.JSON(fiber.Map{"activity": entries})
}
