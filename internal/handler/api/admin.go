package api

import (
	"errors"
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds     commands.AdminCommands
	bookings queries.BookingQueries
	admin    queries.AdminQueries
}

func NewAdminHandler(cmds commands.AdminCommands, bookings queries.BookingQueries, admin queries.AdminQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, bookings: bookings, admin: admin}
}

func (h *AdminHandler) ApplyEvent(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return
	}
	var req reqdto.ApplyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.ApplyEvent(c.Request.Context(), customerID, req.Event); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No booking for customer", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Transition not permitted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) Remove(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return
	}
	if _, err := h.cmds.Remove(c.Request.Context(), customerID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Remove failed", nil)
		return
	}
	// Removing an absent booking succeeds; the outcome is the same.
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	views, err := h.bookings.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

func (h *AdminHandler) ListPending(c *gin.Context) {
	views, err := h.bookings.ListPending(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pending bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load statistics", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}

func (h *AdminHandler) WaitingList(c *gin.Context) {
	views, err := h.admin.WaitingList(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load waiting list", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWaitingList(views))
}
