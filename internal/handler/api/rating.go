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

type RatingHandler struct {
	cmds commands.RatingCommands
	q    queries.RatingQueries
}

func NewRatingHandler(cmds commands.RatingCommands, q queries.RatingQueries) *RatingHandler {
	return &RatingHandler{cmds: cmds, q: q}
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req reqdto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Rate(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No booking for customer", nil)
		case errors.Is(err, errs.ErrBookingNotCompleted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not completed yet", nil)
		case errors.Is(err, errs.ErrRatingAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already rated", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRateResult(result))
}

func (h *RatingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load ratings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingList(views))
}
