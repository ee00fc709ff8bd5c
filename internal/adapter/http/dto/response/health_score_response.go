package response

import (
	"time"

	"catrental/internal/domain/entities"
)

// HealthScoreCalculationResponse wraps a recalculation. Success is false, with
// a message and no data, when there was no usage data to score.
type HealthScoreCalculationResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    *HealthScoreChangeResult `json:"data,omitempty"`
}

type HealthScoreChangeResult struct {
	UserID             string    `json:"user_id"`
	OldScore           int       `json:"old_score"`
	NewScore           int       `json:"new_score"`
	Delta              int       `json:"delta"`
	Reason             string    `json:"reason"`
	Category           string    `json:"category"`
	AverageUtilization float64   `json:"average_utilization"`
	AffectedMachines   []string  `json:"affected_machines"`
	Recommendations    []string  `json:"recommendations"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type HealthScoreSummaryResponse struct {
	UserID             string    `json:"user_id"`
	UserName           string    `json:"user_name"`
	HealthScore        int       `json:"health_score"`
	Category           string    `json:"category"`
	LastUpdated        time.Time `json:"last_updated"`
	AverageUtilization float64   `json:"average_utilization"`
	ActiveMachines     int       `json:"active_machines"`
	Recommendations    []string  `json:"recommendations"`
}

type HealthScoreLogResponse struct {
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

func FromHealthScoreLogs(logs []entities.HealthScoreLog) []HealthScoreLogResponse {
	out := make([]HealthScoreLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, HealthScoreLogResponse{
			ID:                 l.ID,
			UserID:             l.UserID,
			OldScore:           l.OldScore,
			NewScore:           l.NewScore,
			Delta:              l.Delta,
			Reason:             l.Reason,
			AverageUtilization: l.AverageUtilization,
			AffectedMachines:   l.AffectedMachines,
			UpdatedBy:          l.UpdatedBy,
			Timestamp:          l.Timestamp,
		})
	}
	return out
}

type RecommendationResponse struct {
	Audience        string   `json:"audience"`
	Source          string   `json:"source"`
	Recommendations []string `json:"recommendations"`
}
