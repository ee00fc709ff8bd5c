package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "catrental/internal/adapter/http/dto/request"
	response "catrental/internal/adapter/http/dto/response"
	"catrental/internal/domain/entities"
	"catrental/internal/usecase"
	"catrental/pkg"

	"github.com/gin-gonic/gin"
)

var errDeclineReasonRequired = pkg.NewDomainErrorSimple("DECLINE_REASON_REQUIRED", "A reason is required to decline a transfer", http.StatusBadRequest)

type TransferHandler struct {
	usecase usecase.ITransferUseCase
}

func NewTransferHandler(uc usecase.ITransferUseCase) *TransferHandler {
	return &TransferHandler{usecase: uc}
}

// Approve godoc
// @Summary      Approve a pending transfer
// @Description  Claims the machine only if it is still Ready. A lost race answers 409.
// @Tags         transfers
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Transfer ID"
// @Success      200 {object} response.ApprovalResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /transfers/{id}/approve [patch]
func (h *TransferHandler) Approve(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	result, err := h.usecase.Approve(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, mapTransferError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(result.Transfer, result.Machine, result.OrderStatus))
}

// Decline godoc
// @Summary      Decline a pending transfer
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Transfer ID"
// @Param        payload body request.DeclineTransferRequest true "Reason"
// @Success      200 {object} response.TransferResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /transfers/{id}/decline [patch]
func (h *TransferHandler) Decline(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var payload request.DeclineTransferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errDeclineReasonRequired)
		return
	}

	transfer, err := h.usecase.Decline(c.Request.Context(), caller, c.Param("id"), payload.ResolveReason())
	if err != nil {
		respondError(c, mapTransferError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransfer(transfer))
}

// List godoc
// @Summary      List the dealership's transfers
// @Tags         transfers
// @Produce      json
// @Security     Bearer
// @Param        status query string false "pending, approved or declined"
// @Success      200 {array} response.TransferResponse
// @Router       /transfers [get]
func (h *TransferHandler) List(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	status := entities.TransferStatus(strings.TrimSpace(c.Query("status")))
	transfers, err := h.usecase.List(c.Request.Context(), caller, status)
	if err != nil {
		respondError(c, mapTransferError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransfers(transfers))
}

func mapTransferError(err error) *pkg.AppError {
	if appErr, ok := mapForbidden(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrDeclineReasonRequired):
		return errDeclineReasonRequired
	case errors.Is(err, usecase.ErrInvalidTransferID), errors.Is(err, usecase.ErrInvalidTransferStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransferNotFound):
		return pkg.NewDomainErrorSimple("TRANSFER_NOT_FOUND", "Transfer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineNoLongerAvailable):
		return pkg.NewDomainErrorSimple("MACHINE_NO_LONGER_AVAILABLE", "Machine no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransferNotPending):
		return pkg.NewDomainErrorSimple("TRANSFER_NOT_PENDING", "Transfer is not pending", http.StatusConflict)
	default:
		return internalError(err)
	}
}
