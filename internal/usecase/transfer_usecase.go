package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"
)

var (
	ErrTransferNotFound         = errors.New("transfer not found")
	ErrInvalidTransferID        = errors.New("invalid transfer id")
	ErrInvalidTransferStatus    = errors.New("invalid transfer status")
	ErrTransferNotPending       = errors.New("transfer is not pending")
	ErrMachineNoLongerAvailable = errors.New("machine no longer available")
	ErrDeclineReasonRequired    = errors.New("decline reason is required")
)

// ApprovalResult is the outcome of a successful approval.
type ApprovalResult struct {
	Transfer    entities.Transfer
	Machine     entities.Machine
	OrderStatus entities.OrderStatus
}

// ITransferUseCase is the admin approval gate for transfer proposals:
//   - PATCH /v1/transfers/{id}/approve => Approve()
//   - PATCH /v1/transfers/{id}/decline => Decline()
//   - GET /v1/transfers => List()
type ITransferUseCase interface {
	Approve(ctx context.Context, caller entities.Caller, transferID string) (ApprovalResult, error)
	Decline(ctx context.Context, caller entities.Caller, transferID string, reason string) (entities.Transfer, error)
	List(ctx context.Context, caller entities.Caller, status entities.TransferStatus) ([]entities.Transfer, error)
}

type TransferUseCase struct {
	transfers interfaces.ITransferRepository
	machines  interfaces.IMachineRepository
	orders    interfaces.IOrderRepository
}

var _ ITransferUseCase = (*TransferUseCase)(nil)

func NewTransferUseCase(transfers interfaces.ITransferRepository, machines interfaces.IMachineRepository, orders interfaces.IOrderRepository) *TransferUseCase {
	return &TransferUseCase{transfers: transfers, machines: machines, orders: orders}
}

// Approve claims the transfer's machine for the ordering customer. The claim
// is a single conditional write on the machine (Ready -> In-transit); losing
// that race returns ErrMachineNoLongerAvailable and leaves the transfer
// pending.
func (u *TransferUseCase) Approve(ctx context.Context, caller entities.Caller, transferID string) (ApprovalResult, error) {
	if !caller.IsAdmin() {
		return ApprovalResult{}, ErrForbidden
	}
	t, err := u.pendingTransfer(ctx, caller, transferID)
	if err != nil {
		return ApprovalResult{}, err
	}

	order, err := u.orders.GetByID(ctx, t.OrderID)
	if err != nil {
		return ApprovalResult{}, err
	}
	if order.ID == "" {
		log.Printf("[transfer][usecase] order missing transfer_id=%s order_id=%s", t.ID, t.OrderID)
		return ApprovalResult{}, ErrOrderNotFound
	}

	claimed, previous, err := u.machines.ClaimIfReady(ctx, t.MachineID, entities.MachineAssignment{
		UserID:       t.ToUserID,
		CheckInDate:  order.CheckInDate,
		CheckOutDate: order.CheckOutDate,
		Location:     t.Destination,
	})
	if err != nil {
		log.Printf("[transfer][usecase] claim failed transfer_id=%s machine_id=%s err=%v", t.ID, t.MachineID, err)
		return ApprovalResult{}, err
	}
	if claimed.ID == "" {
		log.Printf("[transfer][usecase] machine no longer available transfer_id=%s machine_id=%s", t.ID, t.MachineID)
		return ApprovalResult{}, ErrMachineNoLongerAvailable
	}

	approved, err := u.transfers.UpdateStatusIf(ctx, t.ID, entities.TransferStatusPending, entities.TransferStatusApproved, "Approved by "+approverName(caller))
	if err != nil || approved.ID == "" {
		// The transfer moved on underneath us; hand the machine back.
		u.releaseClaim(ctx, previous, t.ToUserID)
		if err != nil {
			return ApprovalResult{}, err
		}
		return ApprovalResult{}, ErrTransferNotPending
	}

	log.Printf("[transfer][usecase] approved transfer_id=%s machine_id=%s user_id=%s by=%s", t.ID, t.MachineID, t.ToUserID, caller.UserID)
	return ApprovalResult{
		Transfer:    approved,
		Machine:     claimed,
		OrderStatus: u.promoteOrder(ctx, order),
	}, nil
}

func (u *TransferUseCase) Decline(ctx context.Context, caller entities.Caller, transferID string, reason string) (entities.Transfer, error) {
	if !caller.IsAdmin() {
		return entities.Transfer{}, ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Transfer{}, ErrDeclineReasonRequired
	}
	t, err := u.pendingTransfer(ctx, caller, transferID)
	if err != nil {
		return entities.Transfer{}, err
	}

	declined, err := u.transfers.UpdateStatusIf(ctx, t.ID, entities.TransferStatusPending, entities.TransferStatusDeclined, reason)
	if err != nil {
		return entities.Transfer{}, err
	}
	if declined.ID == "" {
		return entities.Transfer{}, ErrTransferNotPending
	}
	log.Printf("[transfer][usecase] declined transfer_id=%s by=%s", t.ID, caller.UserID)
	return declined, nil
}

func (u *TransferUseCase) List(ctx context.Context, caller entities.Caller, status entities.TransferStatus) ([]entities.Transfer, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidTransferStatus
	}
	return u.transfers.ListByDealerID(ctx, caller.DealershipID, status)
}

// pendingTransfer loads a transfer of the caller's dealership that is still
// pending. Transfers of other dealerships read as not found.
func (u *TransferUseCase) pendingTransfer(ctx context.Context, caller entities.Caller, transferID string) (entities.Transfer, error) {
	transferID = strings.TrimSpace(transferID)
	if transferID == "" {
		return entities.Transfer{}, ErrInvalidTransferID
	}

	t, err := u.transfers.GetByID(ctx, transferID)
	if err != nil {
		return entities.Transfer{}, err
	}
	if t.ID == "" || t.DealerID != caller.DealershipID {
		return entities.Transfer{}, ErrTransferNotFound
	}
	if t.Status != entities.TransferStatusPending {
		return entities.Transfer{}, ErrTransferNotPending
	}
	return t, nil
}

func (u *TransferUseCase) releaseClaim(ctx context.Context, previous entities.Machine, claimedBy string) {
	restored, err := u.machines.ReleaseClaim(ctx, previous, claimedBy)
	if err != nil {
		log.Printf("[transfer][usecase] release claim failed machine_id=%s err=%v", previous.ID, err)
		return
	}
	if restored.ID == "" {
		log.Printf("[transfer][usecase] release claim skipped, machine changed machine_id=%s", previous.ID)
	}
}

// promoteOrder moves the order to Approved once enough of its transfers are
// approved. Failures are logged and leave the order as it was.
func (u *TransferUseCase) promoteOrder(ctx context.Context, order entities.Order) entities.OrderStatus {
	if order.Status != entities.OrderStatusPending {
		return order.Status
	}
	transfers, err := u.transfers.ListByOrderID(ctx, order.ID)
	if err != nil {
		log.Printf("[transfer][usecase] order promotion lookup failed order_id=%s err=%v", order.ID, err)
		return order.Status
	}
	approved := 0
	for _, t := range transfers {
		if t.Status == entities.TransferStatusApproved {
			approved++
		}
	}
	if approved < order.Quantity {
		return order.Status
	}

	updated, err := u.orders.UpdateStatusIf(ctx, order.ID, entities.OrderStatusPending, entities.OrderStatusApproved)
	if err != nil {
		log.Printf("[transfer][usecase] order promotion failed order_id=%s err=%v", order.ID, err)
		return order.Status
	}
	if updated.ID == "" {
		// Another approval promoted it first.
		return entities.OrderStatusApproved
	}
	log.Printf("[transfer][usecase] order approved order_id=%s approved_transfers=%d", order.ID, approved)
	return updated.Status
}

func approverName(c entities.Caller) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return c.UserID
}
