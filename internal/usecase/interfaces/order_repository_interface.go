package interfaces

import (
	"context"

	"catrental/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateStatusIf(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
