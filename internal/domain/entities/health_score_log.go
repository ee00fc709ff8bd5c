package entities

import "time"

// HealthScoreLog is the append-only audit record of one score change.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id (SK timestamp)
type HealthScoreLog struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	OldScore           int       `json:"old_score"`
	NewScore           int       `json:"new_score"`
	Delta              int       `json:"delta"`
	Reason             string    `json:"reason"`
	AverageUtilization float64   `json:"average_utilization"`
	AffectedMachines   []string  `json:"affected_machines"`
	UpdatedBy          string    `json:"updated_by"`
	Timestamp          time.Time `json:"timestamp"`
}
