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

type RentalRequestHandler struct {
	usecase usecase.IRentalRequestUseCase
}

func NewRentalRequestHandler(uc usecase.IRentalRequestUseCase) *RentalRequestHandler {
	return &RentalRequestHandler{usecase: uc}
}

// Create godoc
// @Summary      Open a request about a rented machine
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload body request.CreateRentalRequestRequest true "Request"
// @Success      201 {object} response.RentalRequestResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /requests [post]
func (h *RentalRequestHandler) Create(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var payload request.CreateRentalRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), caller, usecase.CreateRentalRequestCommand{
		MachineID: payload.MachineID,
		Type:      payload.ResolveType(),
		Comments:  payload.Comments,
		Date:      payload.Date,
	})
	if err != nil {
		respondError(c, mapRentalRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRentalRequest(created))
}

// List godoc
// @Summary      List requests, newest first
// @Description  Customers see their own requests; admins see requests on their dealership's machines.
// @Tags         requests
// @Produce      json
// @Security     Bearer
// @Param        status query string false "In-Progress, Approved or Denied"
// @Success      200 {array} response.RentalRequestResponse
// @Router       /requests [get]
func (h *RentalRequestHandler) List(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	status := entities.RentalRequestStatus(strings.TrimSpace(c.Query("status")))
	requests, err := h.usecase.List(c.Request.Context(), caller, status)
	if err != nil {
		respondError(c, mapRentalRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRentalRequests(requests))
}

// Resolve godoc
// @Summary      Approve or deny an open request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Request ID"
// @Param        payload body request.ResolveRentalRequestRequest true "Decision"
// @Success      200 {object} response.RentalRequestResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /requests/{id} [patch]
func (h *RentalRequestHandler) Resolve(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var payload request.ResolveRentalRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	resolved, err := h.usecase.Resolve(c.Request.Context(), caller, c.Param("id"), payload.ResolveStatus(), payload.AdminComments)
	if err != nil {
		respondError(c, mapRentalRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRentalRequest(resolved))
}

func mapRentalRequestError(err error) *pkg.AppError {
	if appErr, ok := mapForbidden(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidMachineID),
		errors.Is(err, usecase.ErrInvalidRentalRequestID),
		errors.Is(err, usecase.ErrInvalidRentalRequestType),
		errors.Is(err, usecase.ErrInvalidRentalRequestStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRentalRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRentalRequestResolved):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_RESOLVED", "Request was already resolved", http.StatusConflict)
	default:
		return internalError(err)
	}
}
