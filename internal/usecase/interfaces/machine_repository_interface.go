package interfaces

import (
	"context"
	"time"

	"catrental/internal/domain/entities"
)

// IMachineRepository abstracts DynamoDB persistence for Machine (the machine
// directory).
//
// Every status transition is a single conditional write keyed by the expected
// current status. When the condition does not hold the zero Machine is
// returned with a nil error.
type IMachineRepository interface {
	// Create is insert-only; an existing machine_id yields the zero Machine.
	Create(ctx context.Context, m entities.Machine) (entities.Machine, error)
	GetByID(ctx context.Context, id string) (entities.Machine, error)
	// ListAvailableByType returns Ready machines whose type contains
	// machineType (case-insensitive) and that are free from checkIn onwards.
	ListAvailableByType(ctx context.Context, machineType string, checkIn time.Time) ([]entities.Machine, error)
	ListByUserAndStatus(ctx context.Context, userID string, status entities.MachineStatus) ([]entities.Machine, error)
	ListByDealerID(ctx context.Context, dealerID string, status entities.MachineStatus) ([]entities.Machine, error)
	// ClaimIfReady moves a Ready machine to In-transit for the assignment and
	// returns the machine before and after the write.
	ClaimIfReady(ctx context.Context, id string, a entities.MachineAssignment) (claimed entities.Machine, previous entities.Machine, err error)
	// ReleaseClaim restores previous while the machine is still In-transit for
	// claimedBy.
	ReleaseClaim(ctx context.Context, previous entities.Machine, claimedBy string) (entities.Machine, error)
	UpdateStatusIf(ctx context.Context, id string, from, to entities.MachineStatus) (entities.Machine, error)
	UpdateUsageIfOccupied(ctx context.Context, id string, usage entities.MachineUsage) (entities.Machine, error)
}
