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

var errInvalidMachinePayload = pkg.NewDomainErrorSimple("INVALID_MACHINE_INPUT", "Invalid machine payload", http.StatusBadRequest)

type MachineHandler struct {
	usecase usecase.IMachineUseCase
}

func NewMachineHandler(uc usecase.IMachineUseCase) *MachineHandler {
	return &MachineHandler{usecase: uc}
}

// Register godoc
// @Summary      Register a Ready machine in the caller's dealership
// @Tags         machines
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload body request.RegisterMachineRequest true "Machine"
// @Success      201 {object} response.MachineResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /machines [post]
func (h *MachineHandler) Register(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var payload request.RegisterMachineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidMachinePayload)
		return
	}

	m, err := h.usecase.Register(c.Request.Context(), caller, usecase.RegisterMachineCommand{
		ID:       strings.TrimSpace(payload.MachineID),
		Type:     strings.TrimSpace(payload.MachineType),
		Location: payload.Location(),
		SiteID:   strings.TrimSpace(payload.SiteID),
	})
	if err != nil {
		respondError(c, mapMachineError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMachine(m))
}

// List godoc
// @Summary      List the dealership fleet
// @Tags         machines
// @Produce      json
// @Security     Bearer
// @Param        status query string false "Ready, In-transit, Occupied or Maintenance"
// @Success      200 {array} response.MachineResponse
// @Router       /machines [get]
func (h *MachineHandler) List(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	status := entities.MachineStatus(strings.TrimSpace(c.Query("status")))
	machines, err := h.usecase.List(c.Request.Context(), caller, status)
	if err != nil {
		respondError(c, mapMachineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMachines(machines))
}

// Get godoc
// @Summary      Get a machine of the dealership
// @Tags         machines
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Machine ID"
// @Success      200 {object} response.MachineResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /machines/{id} [get]
func (h *MachineHandler) Get(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	m, err := h.usecase.Get(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, mapMachineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

// ChangeStatus godoc
// @Summary      Move a machine along its lifecycle
// @Tags         machines
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Machine ID"
// @Param        payload body request.ChangeMachineStatusRequest true "Target status"
// @Success      200 {object} response.MachineResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /machines/{id}/status [patch]
func (h *MachineHandler) ChangeStatus(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var payload request.ChangeMachineStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidMachinePayload)
		return
	}

	m, err := h.usecase.ChangeStatus(c.Request.Context(), caller, c.Param("id"), payload.ResolveStatus())
	if err != nil {
		respondError(c, mapMachineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

// RecordUsage godoc
// @Summary      Record telemetry for an occupied machine
// @Tags         machines
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Machine ID"
// @Param        payload body request.RecordUsageRequest true "Usage"
// @Success      200 {object} response.MachineResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /machines/{id}/usage [put]
func (h *MachineHandler) RecordUsage(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var payload request.RecordUsageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidMachinePayload)
		return
	}

	m, err := h.usecase.RecordUsage(c.Request.Context(), caller, c.Param("id"), payload.ToUsage())
	if err != nil {
		respondError(c, mapMachineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

func mapMachineError(err error) *pkg.AppError {
	if appErr, ok := mapForbidden(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidMachineID),
		errors.Is(err, usecase.ErrInvalidMachineType),
		errors.Is(err, usecase.ErrInvalidMachineStatus),
		errors.Is(err, usecase.ErrInvalidMachineLocation),
		errors.Is(err, usecase.ErrInvalidUsage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineAlreadyExists):
		return pkg.NewDomainErrorSimple("MACHINE_ALREADY_EXISTS", "Machine already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrMachineStatusChanged):
		return pkg.NewDomainErrorSimple("MACHINE_STATUS_CHANGED", "Machine status changed concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrMachineNotOccupied):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_OCCUPIED", "Machine is not occupied", http.StatusConflict)
	default:
		return internalError(err)
	}
}
