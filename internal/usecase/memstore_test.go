package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"
)

// memStore is an in-memory stand-in for the DynamoDB tables. Every
// conditional method checks and writes under one lock, mirroring a single
// conditional UpdateItem.
type memStore struct {
	mu        sync.Mutex
	machines  map[string]entities.Machine
	orders    map[string]entities.Order
	transfers map[string]entities.Transfer
	users     map[string]entities.User
	logs      []entities.HealthScoreLog
	requests  map[string]entities.RentalRequest
}

func newMemStore() *memStore {
	return &memStore{
		machines:  map[string]entities.Machine{},
		orders:    map[string]entities.Order{},
		transfers: map[string]entities.Transfer{},
		users:     map[string]entities.User{},
		requests:  map[string]entities.RentalRequest{},
	}
}

func (s *memStore) machineRepo() interfaces.IMachineRepository   { return memMachines{s} }
func (s *memStore) orderRepo() interfaces.IOrderRepository       { return memOrders{s} }
func (s *memStore) transferRepo() interfaces.ITransferRepository { return memTransfers{s} }
func (s *memStore) userRepo() interfaces.IUserRepository         { return memUsers{s} }
func (s *memStore) logRepo() interfaces.IHealthScoreLogRepository {
	return memLogs{s}
}
func (s *memStore) requestRepo() interfaces.IRentalRequestRepository {
	return memRentalRequests{s}
}

type memMachines struct{ s *memStore }

func (r memMachines) Create(_ context.Context, m entities.Machine) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.machines[m.ID]; exists {
		return entities.Machine{}, nil
	}
	r.s.machines[m.ID] = m
	return m, nil
}

func (r memMachines) GetByID(_ context.Context, id string) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.machines[id], nil
}

func (r memMachines) ListAvailableByType(_ context.Context, machineType string, checkIn time.Time) ([]entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	needle := strings.ToLower(machineType)
	var out []entities.Machine
	for _, m := range r.s.machines {
		if m.Status != entities.MachineStatusReady || !strings.Contains(strings.ToLower(m.Type), needle) {
			continue
		}
		if m.CheckOutDate != nil && m.CheckInDate != nil && m.CheckInDate.After(checkIn) {
			continue
		}
		out = append(out, m)
	}
	// Map iteration order is random; the allocator must not depend on it.
	return out, nil
}

func (r memMachines) ListByUserAndStatus(_ context.Context, userID string, status entities.MachineStatus) ([]entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Machine
	for _, m := range r.s.machines {
		if m.UserID == userID && m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r memMachines) ListByDealerID(_ context.Context, dealerID string, status entities.MachineStatus) ([]entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Machine
	for _, m := range r.s.machines {
		if m.DealerID == dealerID && (status == "" || m.Status == status) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r memMachines) ClaimIfReady(_ context.Context, id string, a entities.MachineAssignment) (entities.Machine, entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.machines[id]
	if !ok || prev.Status != entities.MachineStatusReady {
		return entities.Machine{}, entities.Machine{}, nil
	}
	loc, in, out := a.Location, a.CheckInDate, a.CheckOutDate
	m := prev
	m.Status = entities.MachineStatusInTransit
	m.UserID = a.UserID
	m.Location = &loc
	m.CheckInDate = &in
	m.CheckOutDate = &out
	m.EngineHoursPerDay, m.IdleHours, m.OperatingDays = 0, 0, 0
	r.s.machines[id] = m
	return m, prev, nil
}

func (r memMachines) ReleaseClaim(_ context.Context, previous entities.Machine, claimedBy string) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.machines[previous.ID]
	if !ok || cur.Status != entities.MachineStatusInTransit || cur.UserID != claimedBy {
		return entities.Machine{}, nil
	}
	r.s.machines[previous.ID] = previous
	return previous, nil
}

func (r memMachines) UpdateStatusIf(_ context.Context, id string, from, to entities.MachineStatus) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.machines[id]
	if !ok || m.Status != from {
		return entities.Machine{}, nil
	}
	m.Status = to
	if to == entities.MachineStatusReady {
		m.UserID, m.CheckInDate, m.CheckOutDate = "", nil, nil
	}
	r.s.machines[id] = m
	return m, nil
}

func (r memMachines) UpdateUsageIfOccupied(_ context.Context, id string, usage entities.MachineUsage) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.machines[id]
	if !ok || m.Status != entities.MachineStatusOccupied {
		return entities.Machine{}, nil
	}
	m.EngineHoursPerDay, m.IdleHours, m.OperatingDays = usage.EngineHoursPerDay, usage.IdleHours, usage.OperatingDays
	r.s.machines[id] = m
	return m, nil
}

type memOrders struct{ s *memStore }

func (r memOrders) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID] = o
	return o, nil
}

func (r memOrders) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.orders[id], nil
}

func (r memOrders) ListByUserID(_ context.Context, userID string) ([]entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memOrders) UpdateStatusIf(_ context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok || o.Status != from {
		return entities.Order{}, nil
	}
	o.Status = to
	r.s.orders[id] = o
	return o, nil
}

func (r memOrders) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.orders, id)
	return nil
}

type memTransfers struct{ s *memStore }

func (r memTransfers) Create(_ context.Context, t entities.Transfer) (entities.Transfer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transfers[t.ID] = t
	return t, nil
}

func (r memTransfers) GetByID(_ context.Context, id string) (entities.Transfer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.transfers[id], nil
}

func (r memTransfers) ListByDealerID(_ context.Context, dealerID string, status entities.TransferStatus) ([]entities.Transfer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Transfer
	for _, t := range r.s.transfers {
		if t.DealerID == dealerID && (status == "" || t.Status == status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r memTransfers) ListByOrderID(_ context.Context, orderID string) ([]entities.Transfer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Transfer
	for _, t := range r.s.transfers {
		if t.OrderID == orderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r memTransfers) UpdateStatusIf(_ context.Context, id string, from, to entities.TransferStatus, comments string) (entities.Transfer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.transfers[id]
	if !ok || t.Status != from {
		return entities.Transfer{}, nil
	}
	t.Status = to
	t.AdminComments = comments
	r.s.transfers[id] = t
	return t, nil
}

func (r memTransfers) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.transfers, id)
	return nil
}

type memUsers struct{ s *memStore }

func (r memUsers) GetByID(_ context.Context, id string) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users[id], nil
}

func (r memUsers) UpdateHealthScore(_ context.Context, id string, expected *int, score int, at time.Time) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return entities.User{}, nil
	}
	switch {
	case expected == nil && u.HealthScore != nil:
		return entities.User{}, nil
	case expected != nil && (u.HealthScore == nil || *u.HealthScore != *expected):
		return entities.User{}, nil
	}
	u.HealthScore = &score
	u.ScoreLastUpdated = &at
	r.s.users[id] = u
	return u, nil
}

type memLogs struct{ s *memStore }

func (r memLogs) Create(_ context.Context, l entities.HealthScoreLog) (entities.HealthScoreLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.logs = append(r.s.logs, l)
	return l, nil
}

func (r memLogs) ListByUserID(_ context.Context, userID string, limit int) ([]entities.HealthScoreLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.HealthScoreLog
	for i := len(r.s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.logs[i].UserID == userID {
			out = append(out, r.s.logs[i])
		}
	}
	return out, nil
}

type memRentalRequests struct{ s *memStore }

func (r memRentalRequests) Create(_ context.Context, req entities.RentalRequest) (entities.RentalRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.requests[req.ID] = req
	return req, nil
}

func (r memRentalRequests) GetByID(_ context.Context, id string) (entities.RentalRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.requests[id], nil
}

func (r memRentalRequests) ListByUserID(_ context.Context, userID string, status entities.RentalRequestStatus) ([]entities.RentalRequest, error) {
	return r.list(func(req entities.RentalRequest) bool { return req.UserID == userID }, status), nil
}

func (r memRentalRequests) ListByDealerID(_ context.Context, dealerID string, status entities.RentalRequestStatus) ([]entities.RentalRequest, error) {
	return r.list(func(req entities.RentalRequest) bool { return req.DealerID == dealerID }, status), nil
}

func (r memRentalRequests) list(match func(entities.RentalRequest) bool, status entities.RentalRequestStatus) []entities.RentalRequest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.RentalRequest
	for _, req := range r.s.requests {
		if match(req) && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestDate.After(out[j].RequestDate) })
	return out
}

func (r memRentalRequests) ResolveIf(_ context.Context, id string, status entities.RentalRequestStatus, adminComments string) (entities.RentalRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok || req.Status != entities.RentalRequestInProgress {
		return entities.RentalRequest{}, nil
	}
	req.Status, req.AdminComments = status, adminComments
	r.s.requests[id] = req
	return req, nil
}
