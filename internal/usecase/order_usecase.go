package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
	"catrental/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidMachineType   = errors.New("invalid machine type")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidDestination   = errors.New("invalid destination coordinates")
	ErrInvalidDateRange     = errors.New("check-in date must be before check-out date")
	ErrCheckInNotInFuture   = errors.New("check-in date must be in the future")
	ErrInsufficientMachines = errors.New("insufficient machines available")
)

// InsufficientMachinesError reports how many candidates were found for an
// order that needed more. It matches ErrInsufficientMachines with errors.Is.
type InsufficientMachinesError struct {
	Found  int
	Needed int
}

func (e *InsufficientMachinesError) Error() string {
	return fmt.Sprintf("insufficient machines available: found %d, needed %d", e.Found, e.Needed)
}

func (e *InsufficientMachinesError) Unwrap() error {
	return ErrInsufficientMachines
}

type PlaceOrderCommand struct {
	MachineType  string
	Quantity     int
	Destination  geo.Point
	CheckInDate  time.Time
	CheckOutDate time.Time
}

// OrderWithTransfers is an order together with the transfer proposals
// allocated for it.
type OrderWithTransfers struct {
	Order     entities.Order
	Transfers []entities.Transfer
}

// IOrderUseCase exposes the customer side of ordering:
//   - POST /v1/orders => PlaceOrder() (allocation of the nearest machines)
//   - GET /v1/orders => ListMyOrders()
//   - GET /v1/orders/{id} => GetOrder()
type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, caller entities.Caller, cmd PlaceOrderCommand) (OrderWithTransfers, error)
	ListMyOrders(ctx context.Context, caller entities.Caller) ([]entities.Order, error)
	GetOrder(ctx context.Context, caller entities.Caller, id string) (OrderWithTransfers, error)
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	machines  interfaces.IMachineRepository
	transfers interfaces.ITransferRepository
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, machines interfaces.IMachineRepository, transfers interfaces.ITransferRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, machines: machines, transfers: transfers, now: time.Now}
}

// PlaceOrder persists a Pending order and proposes one transfer for each of
// the Quantity nearest available machines. When not enough machines can be
// proposed nothing is left behind: the order and any transfer already written
// are removed.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, caller entities.Caller, cmd PlaceOrderCommand) (OrderWithTransfers, error) {
	if !caller.IsCustomer() {
		return OrderWithTransfers{}, ErrForbidden
	}
	now := u.now().UTC()
	if err := validatePlaceOrder(&cmd, now); err != nil {
		return OrderWithTransfers{}, err
	}

	order := entities.Order{
		ID:           uuid.NewString(),
		UserID:       caller.UserID,
		MachineType:  cmd.MachineType,
		Quantity:     cmd.Quantity,
		Location:     cmd.Destination,
		SiteID:       siteIDFor(cmd.Destination),
		CheckInDate:  cmd.CheckInDate.UTC(),
		CheckOutDate: cmd.CheckOutDate.UTC(),
		Status:       entities.OrderStatusPending,
		Comments:     fmt.Sprintf("Quantity requested: %d", cmd.Quantity),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	log.Printf("[order][usecase] place start order_id=%s user_id=%s type=%q quantity=%d", order.ID, order.UserID, order.MachineType, order.Quantity)

	order, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] create failed user_id=%s err=%v", caller.UserID, err)
		return OrderWithTransfers{}, err
	}

	candidates, err := u.machines.ListAvailableByType(ctx, cmd.MachineType, order.CheckInDate)
	if err != nil {
		log.Printf("[order][usecase] candidate search failed order_id=%s err=%v", order.ID, err)
		u.rollback(ctx, order.ID, nil)
		return OrderWithTransfers{}, err
	}
	if len(candidates) < cmd.Quantity {
		log.Printf("[order][usecase] insufficient candidates order_id=%s found=%d needed=%d", order.ID, len(candidates), cmd.Quantity)
		u.rollback(ctx, order.ID, nil)
		return OrderWithTransfers{}, &InsufficientMachinesError{Found: len(candidates), Needed: cmd.Quantity}
	}

	ranked := rankByDistance(candidates, cmd.Destination)
	if len(ranked) < cmd.Quantity {
		log.Printf("[order][usecase] insufficient located candidates order_id=%s found=%d needed=%d", order.ID, len(ranked), cmd.Quantity)
		u.rollback(ctx, order.ID, nil)
		return OrderWithTransfers{}, &InsufficientMachinesError{Found: len(ranked), Needed: cmd.Quantity}
	}

	created := make([]entities.Transfer, 0, cmd.Quantity)
	for _, c := range ranked[:cmd.Quantity] {
		t := entities.Transfer{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			MachineID:   c.machine.ID,
			DealerID:    c.machine.DealerID,
			FromUserID:  c.machine.DealerID,
			ToUserID:    caller.UserID,
			Origin:      *c.machine.Location,
			Destination: cmd.Destination,
			DistanceKm:  c.distanceKm,
			Status:      entities.TransferStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		saved, err := u.transfers.Create(ctx, t)
		if err != nil {
			log.Printf("[order][usecase] transfer create failed order_id=%s machine_id=%s err=%v", order.ID, c.machine.ID, err)
			u.rollback(ctx, order.ID, created)
			return OrderWithTransfers{}, err
		}
		created = append(created, saved)
	}

	log.Printf("[order][usecase] placed order_id=%s transfers=%d", order.ID, len(created))
	return OrderWithTransfers{Order: order, Transfers: created}, nil
}

func (u *OrderUseCase) ListMyOrders(ctx context.Context, caller entities.Caller) ([]entities.Order, error) {
	if !caller.IsCustomer() {
		return nil, ErrForbidden
	}
	return u.orders.ListByUserID(ctx, caller.UserID)
}

func (u *OrderUseCase) GetOrder(ctx context.Context, caller entities.Caller, id string) (OrderWithTransfers, error) {
	if !caller.IsCustomer() {
		return OrderWithTransfers{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderWithTransfers{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return OrderWithTransfers{}, err
	}
	if o.ID == "" || o.UserID != caller.UserID {
		return OrderWithTransfers{}, ErrOrderNotFound
	}

	transfers, err := u.transfers.ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderWithTransfers{}, err
	}
	return OrderWithTransfers{Order: o, Transfers: transfers}, nil
}

// rollback is best effort: the caller already has the error that matters.
func (u *OrderUseCase) rollback(ctx context.Context, orderID string, transfers []entities.Transfer) {
	for _, t := range transfers {
		if err := u.transfers.Delete(ctx, t.ID); err != nil {
			log.Printf("[order][usecase] rollback transfer failed order_id=%s transfer_id=%s err=%v", orderID, t.ID, err)
		}
	}
	if err := u.orders.Delete(ctx, orderID); err != nil {
		log.Printf("[order][usecase] rollback order failed order_id=%s err=%v", orderID, err)
	}
}

func validatePlaceOrder(cmd *PlaceOrderCommand, now time.Time) error {
	cmd.MachineType = strings.TrimSpace(cmd.MachineType)
	if cmd.MachineType == "" {
		return ErrInvalidMachineType
	}
	if cmd.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := cmd.Destination.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}
	if !cmd.CheckInDate.Before(cmd.CheckOutDate) {
		return ErrInvalidDateRange
	}
	if !cmd.CheckInDate.After(now) {
		return ErrCheckInNotInFuture
	}
	return nil
}

func siteIDFor(p geo.Point) string {
	return fmt.Sprintf("SITE-%.4f-%.4f", p.Lat, p.Lon)
}

type rankedMachine struct {
	machine    entities.Machine
	distanceKm float64
}

// rankByDistance orders machines nearest first, ties broken by machine ID.
// Machines without a usable location are left out.
func rankByDistance(machines []entities.Machine, dest geo.Point) []rankedMachine {
	ranked := make([]rankedMachine, 0, len(machines))
	for _, m := range machines {
		if m.Location == nil {
			log.Printf("[order][usecase] skipping machine without location machine_id=%s", m.ID)
			continue
		}
		ranked = append(ranked, rankedMachine{machine: m, distanceKm: m.Location.DistanceTo(dest)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distanceKm != ranked[j].distanceKm {
			return ranked[i].distanceKm < ranked[j].distanceKm
		}
		return ranked[i].machine.ID < ranked[j].machine.ID
	})
	return ranked
}
