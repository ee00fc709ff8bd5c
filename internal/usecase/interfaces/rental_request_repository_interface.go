package interfaces

import (
	"context"

	"catrental/internal/domain/entities"
)

// IRentalRequestRepository abstracts DynamoDB persistence for RentalRequest.
// Lists are newest first by request date; an empty status means any.
type IRentalRequestRepository interface {
	Create(ctx context.Context, r entities.RentalRequest) (entities.RentalRequest, error)
	GetByID(ctx context.Context, id string) (entities.RentalRequest, error)
	ListByUserID(ctx context.Context, userID string, status entities.RentalRequestStatus) ([]entities.RentalRequest, error)
	ListByDealerID(ctx context.Context, dealerID string, status entities.RentalRequestStatus) ([]entities.RentalRequest, error)
	// ResolveIf moves an In-Progress request to status; any other stored
	// status yields the zero RentalRequest.
	ResolveIf(ctx context.Context, id string, status entities.RentalRequestStatus, adminComments string) (entities.RentalRequest, error)
}
