package handlers

import (
	"net/http"

	response "catrental/internal/adapter/http/dto/response"
	"catrental/internal/usecase"
	"catrental/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// AdminStats godoc
// @Summary      Dealership fleet counters
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200 {object} response.AdminDashboardResponse
// @Failure      403 {object} pkg.HTTPError
// @Router       /admin/dashboard/stats [get]
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	stats, err := h.usecase.AdminStats(c.Request.Context(), caller)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdminDashboard(stats))
}

// RecentMachines godoc
// @Summary      Most recently updated dealership machines
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.MachineResponse
// @Router       /admin/machines/recent [get]
func (h *DashboardHandler) RecentMachines(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	machines, err := h.usecase.RecentMachines(c.Request.Context(), caller)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMachines(machines))
}

// CustomerStats godoc
// @Summary      Counters for the calling customer
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200 {object} response.CustomerDashboardResponse
// @Router       /customer/dashboard/stats [get]
func (h *DashboardHandler) CustomerStats(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	stats, err := h.usecase.CustomerStats(c.Request.Context(), caller)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerDashboard(stats))
}

func mapDashboardError(err error) *pkg.AppError {
	if appErr, ok := mapForbidden(err); ok {
		return appErr
	}
	return internalError(err)
}
