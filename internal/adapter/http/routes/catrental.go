package routes

import (
	"catrental/internal/adapter/http/handlers"
	"catrental/internal/adapter/http/middleware"
	"catrental/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders          = "/orders"
	PathTransfers       = "/transfers"
	PathHealthScore     = "/health-score"
	PathMachines        = "/machines"
	PathRecommendations = "/recommendations"
	PathRequests        = "/requests"
	PathAdmin           = "/admin"
	PathCustomer        = "/customer"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders, middleware.RequireRole(entities.RoleCustomer))
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("", h.ListMyOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

func addTransferRoutes(rg *gin.RouterGroup, h *handlers.TransferHandler) {
	transfers := rg.Group(PathTransfers, middleware.RequireRole(entities.RoleAdmin))
	{
		transfers.GET("", h.List)
		transfers.PATCH("/:id/approve", h.Approve)
		transfers.PATCH("/:id/decline", h.Decline)
	}
}

func addHealthScoreRoutes(rg *gin.RouterGroup, h *handlers.HealthScoreHandler) {
	scores := rg.Group(PathHealthScore)
	{
		// Admins or the user themself; checked by the use case.
		scores.GET("/:user_id", h.Summary)
		scores.POST("/:user_id/calculate", middleware.RequireRole(entities.RoleAdmin), h.Calculate)
		scores.GET("/:user_id/logs", middleware.RequireRole(entities.RoleAdmin), h.History)
	}
}

func addMachineRoutes(rg *gin.RouterGroup, h *handlers.MachineHandler) {
	machines := rg.Group(PathMachines, middleware.RequireRole(entities.RoleAdmin))
	{
		machines.POST("", h.Register)
		machines.GET("", h.List)
		machines.GET("/:id", h.Get)
		machines.PATCH("/:id/status", h.ChangeStatus)
		machines.PUT("/:id/usage", h.RecordUsage)
	}
}

func addRecommendationRoutes(rg *gin.RouterGroup, h *handlers.RecommendationHandler) {
	rg.GET(PathRecommendations, h.Get)
}

func addRentalRequestRoutes(rg *gin.RouterGroup, h *handlers.RentalRequestHandler) {
	requests := rg.Group(PathRequests)
	{
		// Scoped to the caller's own or dealership requests by the use case.
		requests.GET("", h.List)
		requests.POST("", middleware.RequireRole(entities.RoleCustomer), h.Create)
		requests.PATCH("/:id", middleware.RequireRole(entities.RoleAdmin), h.Resolve)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/dashboard/stats", h.AdminStats)
		admin.GET("/machines/recent", h.RecentMachines)
	}
	rg.GET(PathCustomer+"/dashboard/stats", middleware.RequireRole(entities.RoleCustomer), h.CustomerStats)
}
