package usecase

import (
	"context"
	"sort"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"
)

const RecentMachinesLimit = 5

type AdminDashboardStats struct {
	TotalMachines       int
	ActiveMachines      int
	MaintenanceMachines int
	PendingRequests     int
}

type CustomerDashboardStats struct {
	MyMachines      int
	ActiveOrders    int
	PendingRequests int
	CompletedOrders int
}

// IDashboardUseCase serves the landing-page counters:
//   - GET /v1/admin/dashboard/stats => AdminStats()
//   - GET /v1/admin/machines/recent => RecentMachines()
//   - GET /v1/customer/dashboard/stats => CustomerStats()
type IDashboardUseCase interface {
	AdminStats(ctx context.Context, caller entities.Caller) (AdminDashboardStats, error)
	RecentMachines(ctx context.Context, caller entities.Caller) ([]entities.Machine, error)
	CustomerStats(ctx context.Context, caller entities.Caller) (CustomerDashboardStats, error)
}

type DashboardUseCase struct {
	machines interfaces.IMachineRepository
	orders   interfaces.IOrderRepository
	requests interfaces.IRentalRequestRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(machines interfaces.IMachineRepository, orders interfaces.IOrderRepository, requests interfaces.IRentalRequestRepository) *DashboardUseCase {
	return &DashboardUseCase{machines: machines, orders: orders, requests: requests}
}

// AdminStats counts the dealership fleet. Active means In-transit or Occupied.
func (u *DashboardUseCase) AdminStats(ctx context.Context, caller entities.Caller) (AdminDashboardStats, error) {
	if !caller.IsAdmin() {
		return AdminDashboardStats{}, ErrForbidden
	}
	fleet, err := u.machines.ListByDealerID(ctx, caller.DealershipID, "")
	if err != nil {
		return AdminDashboardStats{}, err
	}
	pending, err := u.requests.ListByDealerID(ctx, caller.DealershipID, entities.RentalRequestInProgress)
	if err != nil {
		return AdminDashboardStats{}, err
	}

	stats := AdminDashboardStats{TotalMachines: len(fleet), PendingRequests: len(pending)}
	for _, m := range fleet {
		switch m.Status {
		case entities.MachineStatusInTransit, entities.MachineStatusOccupied:
			stats.ActiveMachines++
		case entities.MachineStatusMaintenance:
			stats.MaintenanceMachines++
		}
	}
	return stats, nil
}

// RecentMachines returns the dealership's most recently updated machines.
func (u *DashboardUseCase) RecentMachines(ctx context.Context, caller entities.Caller) ([]entities.Machine, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	fleet, err := u.machines.ListByDealerID(ctx, caller.DealershipID, "")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(fleet, func(i, j int) bool {
		return fleet[i].UpdatedAt.After(fleet[j].UpdatedAt)
	})
	if len(fleet) > RecentMachinesLimit {
		fleet = fleet[:RecentMachinesLimit]
	}
	return fleet, nil
}

// CustomerStats counts what the caller holds. Machines count while In-transit
// or Occupied; open orders are Pending, Approved or InProgress.
func (u *DashboardUseCase) CustomerStats(ctx context.Context, caller entities.Caller) (CustomerDashboardStats, error) {
	if !caller.IsCustomer() {
		return CustomerDashboardStats{}, ErrForbidden
	}

	var stats CustomerDashboardStats
	for _, status := range []entities.MachineStatus{entities.MachineStatusInTransit, entities.MachineStatusOccupied} {
		held, err := u.machines.ListByUserAndStatus(ctx, caller.UserID, status)
		if err != nil {
			return CustomerDashboardStats{}, err
		}
		stats.MyMachines += len(held)
	}

	orders, err := u.orders.ListByUserID(ctx, caller.UserID)
	if err != nil {
		return CustomerDashboardStats{}, err
	}
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusPending, entities.OrderStatusApproved, entities.OrderStatusInProgress:
			stats.ActiveOrders++
		case entities.OrderStatusCompleted:
			stats.CompletedOrders++
		}
	}

	pending, err := u.requests.ListByUserID(ctx, caller.UserID, entities.RentalRequestInProgress)
	if err != nil {
		return CustomerDashboardStats{}, err
	}
	stats.PendingRequests = len(pending)
	return stats, nil
}
