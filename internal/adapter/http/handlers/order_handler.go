package handlers

import (
	"errors"
	"net/http"

	request "catrental/internal/adapter/http/dto/request"
	response "catrental/internal/adapter/http/dto/response"
	"catrental/internal/usecase"
	"catrental/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// insufficientMachinesBody is the 409 body of a shortage, carrying the counts
// next to the usual error envelope.
type insufficientMachinesBody struct {
	pkg.HTTPError
	Found  int `json:"found"`
	Needed int `json:"needed"`
}

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// PlaceOrder godoc
// @Summary      Place an order
// @Description  Allocates the nearest Ready machines of the requested type and creates one pending transfer per machine.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload body request.PlaceOrderRequest true "Order"
// @Success      201 {object} response.PlaceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidOrderPayload)
		return
	}

	result, err := h.usecase.PlaceOrder(c.Request.Context(), caller, usecase.PlaceOrderCommand{
		MachineType:  payload.ResolveMachineType(),
		Quantity:     payload.ResolveQuantity(),
		Destination:  payload.Destination(),
		CheckInDate:  payload.CheckInDate,
		CheckOutDate: payload.CheckOutDate,
	})
	if err != nil {
		var shortage *usecase.InsufficientMachinesError
		if errors.As(err, &shortage) {
			appErr := mapOrderError(err)
			c.JSON(appErr.HTTPStatus, insufficientMachinesBody{
				HTTPError: appErr.ToHTTPError(),
				Found:     shortage.Found,
				Needed:    shortage.Needed,
			})
			return
		}
		respondError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromPlacedOrder(result.Order, result.Transfers))
}

// ListMyOrders godoc
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	orders, err := h.usecase.ListMyOrders(c.Request.Context(), caller)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get one of the caller's orders with its transfers
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderDetailResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	result, err := h.usecase.GetOrder(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.OrderDetailResponse{
		Order:     response.FromOrder(result.Order),
		Transfers: response.FromTransfers(result.Transfers),
	})
}

func mapOrderError(err error) *pkg.AppError {
	if appErr, ok := mapForbidden(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidMachineType),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidDestination),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrCheckInNotInFuture):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientMachines):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_MACHINES", "Not enough machines of this type are available", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
