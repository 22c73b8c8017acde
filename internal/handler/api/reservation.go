package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.BookingQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.BookingQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot already taken", nil)
		case errors.Is(err, errs.ErrCustomerHasActiveBooking):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer already has an active booking", nil)
		case errors.Is(err, errs.ErrUnknownSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown day or slot", nil)
		case errors.Is(err, errs.ErrSlotInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot already passed", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return
	}
	view, err := h.q.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No booking for customer", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No booking for customer", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cancel failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseCustomerID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("customer_id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id", nil)
		return 0, err
	}
	return id, nil
}
