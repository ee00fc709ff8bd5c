package interfaces

import (
	"context"

	"catrental/internal/domain/entities"
)

// ITransferRepository abstracts DynamoDB persistence for Transfer.
//
// UpdateStatusIf only applies when the stored status equals from; otherwise the
// zero Transfer is returned.
type ITransferRepository interface {
	Create(ctx context.Context, t entities.Transfer) (entities.Transfer, error)
	GetByID(ctx context.Context, id string) (entities.Transfer, error)
	ListByDealerID(ctx context.Context, dealerID string, status entities.TransferStatus) ([]entities.Transfer, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transfer, error)
	UpdateStatusIf(ctx context.Context, id string, from, to entities.TransferStatus, comments string) (entities.Transfer, error)
	Delete(ctx context.Context, id string) error
}
