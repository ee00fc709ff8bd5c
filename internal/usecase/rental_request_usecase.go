package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRentalRequestNotFound      = errors.New("rental request not found")
	ErrInvalidRentalRequestID     = errors.New("invalid rental request id")
	ErrInvalidRentalRequestType   = errors.New("invalid rental request type")
	ErrInvalidRentalRequestStatus = errors.New("invalid rental request status")
	ErrRentalRequestResolved      = errors.New("rental request already resolved")
)

// MaxRentalRequestsListed caps one listing.
const MaxRentalRequestsListed = 100

type CreateRentalRequestCommand struct {
	MachineID string
	Type      entities.RentalRequestType
	Comments  string
	Date      *time.Time
}

// IRentalRequestUseCase handles customer tickets about rented machines:
//   - POST /v1/requests => Create()
//   - GET /v1/requests => List()
//   - PATCH /v1/requests/{id} => Resolve()
type IRentalRequestUseCase interface {
	Create(ctx context.Context, caller entities.Caller, cmd CreateRentalRequestCommand) (entities.RentalRequest, error)
	List(ctx context.Context, caller entities.Caller, status entities.RentalRequestStatus) ([]entities.RentalRequest, error)
	Resolve(ctx context.Context, caller entities.Caller, id string, status entities.RentalRequestStatus, adminComments string) (entities.RentalRequest, error)
}

type RentalRequestUseCase struct {
	requests interfaces.IRentalRequestRepository
	machines interfaces.IMachineRepository
	now      func() time.Time
}

var _ IRentalRequestUseCase = (*RentalRequestUseCase)(nil)

func NewRentalRequestUseCase(requests interfaces.IRentalRequestRepository, machines interfaces.IMachineRepository) *RentalRequestUseCase {
	return &RentalRequestUseCase{requests: requests, machines: machines, now: time.Now}
}

// Create opens an In-Progress request for the calling customer. The machine
// must exist; its dealership becomes the request's owner.
func (u *RentalRequestUseCase) Create(ctx context.Context, caller entities.Caller, cmd CreateRentalRequestCommand) (entities.RentalRequest, error) {
	if !caller.IsCustomer() {
		return entities.RentalRequest{}, ErrForbidden
	}
	machineID := strings.TrimSpace(cmd.MachineID)
	if machineID == "" {
		return entities.RentalRequest{}, ErrInvalidMachineID
	}
	if !cmd.Type.Valid() {
		return entities.RentalRequest{}, ErrInvalidRentalRequestType
	}

	m, err := u.machines.GetByID(ctx, machineID)
	if err != nil {
		return entities.RentalRequest{}, err
	}
	if m.ID == "" {
		return entities.RentalRequest{}, ErrMachineNotFound
	}

	now := u.now().UTC()
	req := entities.RentalRequest{
		ID:          uuid.NewString(),
		MachineID:   m.ID,
		DealerID:    m.DealerID,
		UserID:      caller.UserID,
		Type:        cmd.Type,
		Status:      entities.RentalRequestInProgress,
		Comments:    strings.TrimSpace(cmd.Comments),
		Date:        cmd.Date,
		RequestDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.requests.Create(ctx, req)
	if err != nil {
		log.Printf("[request][usecase] create failed machine_id=%s user_id=%s err=%v", m.ID, caller.UserID, err)
		return entities.RentalRequest{}, err
	}
	log.Printf("[request][usecase] created request_id=%s type=%s machine_id=%s user_id=%s", created.ID, created.Type, m.ID, caller.UserID)
	return created, nil
}

// List returns a customer's own requests, or every request on an admin's
// dealership machines, newest first.
func (u *RentalRequestUseCase) List(ctx context.Context, caller entities.Caller, status entities.RentalRequestStatus) ([]entities.RentalRequest, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidRentalRequestStatus
	}

	var (
		requests []entities.RentalRequest
		err      error
	)
	switch {
	case caller.IsCustomer():
		requests, err = u.requests.ListByUserID(ctx, caller.UserID, status)
	case caller.IsAdmin():
		requests, err = u.requests.ListByDealerID(ctx, caller.DealershipID, status)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if len(requests) > MaxRentalRequestsListed {
		requests = requests[:MaxRentalRequestsListed]
	}
	return requests, nil
}

// Resolve approves or denies an open request of the admin's dealership.
func (u *RentalRequestUseCase) Resolve(ctx context.Context, caller entities.Caller, id string, status entities.RentalRequestStatus, adminComments string) (entities.RentalRequest, error) {
	if !caller.IsAdmin() {
		return entities.RentalRequest{}, ErrForbidden
	}
	if status != entities.RentalRequestApproved && status != entities.RentalRequestDenied {
		return entities.RentalRequest{}, ErrInvalidRentalRequestStatus
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RentalRequest{}, ErrInvalidRentalRequestID
	}

	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.RentalRequest{}, err
	}
	if req.ID == "" || req.DealerID != caller.DealershipID {
		return entities.RentalRequest{}, ErrRentalRequestNotFound
	}

	resolved, err := u.requests.ResolveIf(ctx, id, status, strings.TrimSpace(adminComments))
	if err != nil {
		return entities.RentalRequest{}, err
	}
	if resolved.ID == "" {
		return entities.RentalRequest{}, ErrRentalRequestResolved
	}
	log.Printf("[request][usecase] resolved request_id=%s status=%s by=%s", id, status, caller.UserID)
	return resolved, nil
}
