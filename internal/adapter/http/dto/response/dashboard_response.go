package response

import "catrental/internal/usecase"

type AdminDashboardResponse struct {
	TotalMachines       int `json:"total_machines"`
	ActiveMachines      int `json:"active_machines"`
	MaintenanceMachines int `json:"maintenance_machines"`
	PendingRequests     int `json:"pending_requests"`
}

type CustomerDashboardResponse struct {
	MyMachines      int `json:"my_machines"`
	ActiveOrders    int `json:"active_orders"`
	PendingRequests int `json:"pending_requests"`
	CompletedOrders int `json:"completed_orders"`
}

func FromAdminDashboard(s usecase.AdminDashboardStats) AdminDashboardResponse {
	return AdminDashboardResponse(s)
}

func FromCustomerDashboard(s usecase.CustomerDashboardStats) CustomerDashboardResponse {
	return CustomerDashboardResponse(s)
}
