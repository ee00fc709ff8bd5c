package interfaces

import (
	"context"

	"catrental/internal/domain/entities"
)

// IHealthScoreLogRepository appends and reads score audit records.
type IHealthScoreLogRepository interface {
	Create(ctx context.Context, l entities.HealthScoreLog) (entities.HealthScoreLog, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]entities.HealthScoreLog, error)
}
