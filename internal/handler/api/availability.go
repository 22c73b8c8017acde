package api

import (
	"net/http"

	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	days, err := h.q.OpenSlots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpenDays(days))
}
