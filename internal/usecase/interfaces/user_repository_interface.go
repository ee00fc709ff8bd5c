package interfaces

import (
	"context"
	"time"

	"catrental/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for the user fields owned by
// the health score engine.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	// UpdateHealthScore writes score only while the stored score still equals
	// expected (nil meaning never scored). A missing user or a moved score
	// yields the zero User.
	UpdateHealthScore(ctx context.Context, id string, expected *int, score int, at time.Time) (entities.User, error)
}
