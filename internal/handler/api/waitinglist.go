package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNotQueued = errs.New("customer not on waiting list")

type WaitingListHandler struct {
	cmds commands.WaitingListCommands
}

func NewWaitingListHandler(cmds commands.WaitingListCommands) *WaitingListHandler {
	return &WaitingListHandler{cmds: cmds}
}

func (h *WaitingListHandler) Join(c *gin.Context) {
	var req reqdto.JoinWaitingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Join(c.Request.Context(), req.ToCommand()); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Join failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WaitingListHandler) Leave(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return
	}
	removed, err := h.cmds.Leave(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Leave failed", nil)
		return
	}
	if !removed {
		httperr.AbortWithError(c, http.StatusNotFound, errNotQueued, "Customer is not on the waiting list", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
