package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
	"catrental/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMachineNotFound         = errors.New("machine not found")
	ErrMachineAlreadyExists    = errors.New("machine already exists")
	ErrInvalidMachineID        = errors.New("invalid machine id")
	ErrInvalidMachineStatus    = errors.New("invalid machine status")
	ErrInvalidMachineLocation  = errors.New("invalid machine location")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrMachineStatusChanged    = errors.New("machine status changed concurrently")
	ErrMachineNotOccupied      = errors.New("machine is not occupied")
	ErrInvalidUsage            = errors.New("invalid usage values")
)

// machineTransitions lists the manual status changes an admin may make.
// Ready -> In-transit is reserved for transfer approval.
var machineTransitions = map[entities.MachineStatus][]entities.MachineStatus{
	entities.MachineStatusInTransit:   {entities.MachineStatusOccupied},
	entities.MachineStatusOccupied:    {entities.MachineStatusReady},
	entities.MachineStatusReady:       {entities.MachineStatusMaintenance},
	entities.MachineStatusMaintenance: {entities.MachineStatusReady},
}

type RegisterMachineCommand struct {
	ID       string
	Type     string
	Location geo.Point
	SiteID   string
}

// IMachineUseCase maintains a dealership's fleet:
//   - POST /v1/machines => Register()
//   - GET /v1/machines => List()
//   - GET /v1/machines/{id} => Get()
//   - PATCH /v1/machines/{id}/status => ChangeStatus()
//   - PUT /v1/machines/{id}/usage => RecordUsage()
type IMachineUseCase interface {
	Register(ctx context.Context, caller entities.Caller, cmd RegisterMachineCommand) (entities.Machine, error)
	List(ctx context.Context, caller entities.Caller, status entities.MachineStatus) ([]entities.Machine, error)
	Get(ctx context.Context, caller entities.Caller, id string) (entities.Machine, error)
	ChangeStatus(ctx context.Context, caller entities.Caller, id string, to entities.MachineStatus) (entities.Machine, error)
	RecordUsage(ctx context.Context, caller entities.Caller, id string, usage entities.MachineUsage) (entities.Machine, error)
}

type MachineUseCase struct {
	machines  interfaces.IMachineRepository
	summaries *SummaryCache
	now       func() time.Time
}

var _ IMachineUseCase = (*MachineUseCase)(nil)

// NewMachineUseCase builds the fleet use case. Status and usage writes drop
// the renting customer's cached health summary from summaries, which may be nil.
func NewMachineUseCase(machines interfaces.IMachineRepository, summaries *SummaryCache) *MachineUseCase {
	return &MachineUseCase{machines: machines, summaries: summaries, now: time.Now}
}

func (u *MachineUseCase) Register(ctx context.Context, caller entities.Caller, cmd RegisterMachineCommand) (entities.Machine, error) {
	if !caller.IsAdmin() {
		return entities.Machine{}, ErrForbidden
	}
	cmd.Type = strings.TrimSpace(cmd.Type)
	if cmd.Type == "" {
		return entities.Machine{}, ErrInvalidMachineType
	}
	if err := cmd.Location.Validate(); err != nil {
		return entities.Machine{}, fmt.Errorf("%w: %v", ErrInvalidMachineLocation, err)
	}

	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		id = uuid.NewString()
	} else if existing, err := u.machines.GetByID(ctx, id); err != nil {
		return entities.Machine{}, err
	} else if existing.ID != "" {
		return entities.Machine{}, ErrMachineAlreadyExists
	}

	siteID := strings.TrimSpace(cmd.SiteID)
	if siteID == "" {
		siteID = siteIDFor(cmd.Location)
	}

	now := u.now().UTC()
	loc := cmd.Location
	m := entities.Machine{
		ID:        id,
		Type:      cmd.Type,
		Location:  &loc,
		SiteID:    siteID,
		Status:    entities.MachineStatusReady,
		DealerID:  caller.DealershipID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.machines.Create(ctx, m)
	if err != nil {
		log.Printf("[machine][usecase] register failed machine_id=%s err=%v", id, err)
		return entities.Machine{}, err
	}
	if created.ID == "" {
		// Lost to a concurrent registration of the same id.
		return entities.Machine{}, ErrMachineAlreadyExists
	}
	log.Printf("[machine][usecase] registered machine_id=%s type=%q dealer_id=%s", id, cmd.Type, caller.DealershipID)
	return created, nil
}

func (u *MachineUseCase) List(ctx context.Context, caller entities.Caller, status entities.MachineStatus) ([]entities.Machine, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidMachineStatus
	}
	return u.machines.ListByDealerID(ctx, caller.DealershipID, status)
}

func (u *MachineUseCase) Get(ctx context.Context, caller entities.Caller, id string) (entities.Machine, error) {
	if !caller.IsAdmin() {
		return entities.Machine{}, ErrForbidden
	}
	return u.scoped(ctx, caller, id)
}

// ChangeStatus applies one manual transition as a conditional write on the
// status that was read. Moving an Occupied machine back to Ready releases it.
func (u *MachineUseCase) ChangeStatus(ctx context.Context, caller entities.Caller, id string, to entities.MachineStatus) (entities.Machine, error) {
	if !caller.IsAdmin() {
		return entities.Machine{}, ErrForbidden
	}
	if !to.Valid() {
		return entities.Machine{}, ErrInvalidMachineStatus
	}
	m, err := u.scoped(ctx, caller, id)
	if err != nil {
		return entities.Machine{}, err
	}
	if !canTransition(m.Status, to) {
		return entities.Machine{}, ErrInvalidStatusTransition
	}

	updated, err := u.machines.UpdateStatusIf(ctx, m.ID, m.Status, to)
	if err != nil {
		return entities.Machine{}, err
	}
	if updated.ID == "" {
		return entities.Machine{}, ErrMachineStatusChanged
	}
	// m.UserID is read before the write; a release clears it on updated.
	u.summaries.Invalidate(m.UserID)
	log.Printf("[machine][usecase] status changed machine_id=%s from=%s to=%s by=%s", m.ID, m.Status, to, caller.UserID)
	return updated, nil
}

func (u *MachineUseCase) RecordUsage(ctx context.Context, caller entities.Caller, id string, usage entities.MachineUsage) (entities.Machine, error) {
	if !caller.IsAdmin() {
		return entities.Machine{}, ErrForbidden
	}
	if usage.EngineHoursPerDay < 0 || usage.IdleHours < 0 || usage.OperatingDays < 0 {
		return entities.Machine{}, ErrInvalidUsage
	}
	m, err := u.scoped(ctx, caller, id)
	if err != nil {
		return entities.Machine{}, err
	}
	if m.Status != entities.MachineStatusOccupied {
		return entities.Machine{}, ErrMachineNotOccupied
	}

	updated, err := u.machines.UpdateUsageIfOccupied(ctx, m.ID, usage)
	if err != nil {
		return entities.Machine{}, err
	}
	if updated.ID == "" {
		return entities.Machine{}, ErrMachineNotOccupied
	}
	u.summaries.Invalidate(updated.UserID)
	return updated, nil
}

func (u *MachineUseCase) scoped(ctx context.Context, caller entities.Caller, id string) (entities.Machine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Machine{}, ErrInvalidMachineID
	}
	m, err := u.machines.GetByID(ctx, id)
	if err != nil {
		return entities.Machine{}, err
	}
	if m.ID == "" || m.DealerID != caller.DealershipID {
		return entities.Machine{}, ErrMachineNotFound
	}
	return m, nil
}

func canTransition(from, to entities.MachineStatus) bool {
	for _, allowed := range machineTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
