package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/scoring"
	"catrental/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrNoOccupiedMachines = errors.New("no occupied machines found for user")
	ErrHealthScoreChanged = errors.New("health score changed during recalculation")
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100

	noUsageDataMessage = "Could not calculate score: no usage data on occupied machines."
)

// HealthScoreResult is the outcome of a recalculation. Computed is false when
// none of the occupied machines reported hours; Message then explains why and
// nothing was written.
type HealthScoreResult struct {
	Computed           bool
	Message            string
	UserID             string
	OldScore           int
	NewScore           int
	Delta              int
	Reason             string
	Category           scoring.Category
	AverageUtilization float64
	AffectedMachines   []string
	Recommendations    []string
	UpdatedAt          time.Time
}

type HealthScoreSummary struct {
	UserID             string
	UserName           string
	Score              int
	Category           scoring.Category
	LastUpdated        time.Time
	AverageUtilization float64
	ActiveMachines     int
	Recommendations    []string
}

// IHealthScoreUseCase exposes the health score engine:
//   - POST /v1/health-score/{user_id}/calculate => Calculate()
//   - GET /v1/health-score/{user_id} => Summary()
//   - GET /v1/health-score/{user_id}/logs => History()
type IHealthScoreUseCase interface {
	Calculate(ctx context.Context, caller entities.Caller, userID string) (HealthScoreResult, error)
	Summary(ctx context.Context, caller entities.Caller, userID string) (HealthScoreSummary, error)
	History(ctx context.Context, caller entities.Caller, userID string, limit int) ([]entities.HealthScoreLog, error)
}

type HealthScoreUseCase struct {
	users    interfaces.IUserRepository
	machines interfaces.IMachineRepository
	logs      interfaces.IHealthScoreLogRepository
	summaries *SummaryCache
	now       func() time.Time
}

var _ IHealthScoreUseCase = (*HealthScoreUseCase)(nil)

// NewHealthScoreUseCase builds the engine. summaries may be nil to disable
// summary caching.
func NewHealthScoreUseCase(users interfaces.IUserRepository, machines interfaces.IMachineRepository, logs interfaces.IHealthScoreLogRepository, summaries *SummaryCache) *HealthScoreUseCase {
	return &HealthScoreUseCase{users: users, machines: machines, logs: logs, summaries: summaries, now: time.Now}
}

func (u *HealthScoreUseCase) Calculate(ctx context.Context, caller entities.Caller, userID string) (HealthScoreResult, error) {
	if !caller.IsAdmin() {
		return HealthScoreResult{}, ErrForbidden
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return HealthScoreResult{}, ErrInvalidUserID
	}

	occupied, err := u.machines.ListByUserAndStatus(ctx, userID, entities.MachineStatusOccupied)
	if err != nil {
		return HealthScoreResult{}, err
	}
	if len(occupied) == 0 {
		return HealthScoreResult{}, ErrNoOccupiedMachines
	}

	avg, contributing, ok := scoring.AverageUtilization(usagesOf(occupied))
	if !ok {
		log.Printf("[health][usecase] no usage data user_id=%s occupied=%d", userID, len(occupied))
		return HealthScoreResult{Computed: false, Message: noUsageDataMessage, UserID: userID}, nil
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return HealthScoreResult{}, err
	}
	if user.ID == "" {
		return HealthScoreResult{}, ErrUserNotFound
	}

	oldScore := scoring.CurrentOrBase(user.HealthScore)
	adj := scoring.Adjust(avg)
	newScore := scoring.Clamp(oldScore + adj.Delta)
	now := u.now().UTC()

	updated, err := u.users.UpdateHealthScore(ctx, userID, user.HealthScore, newScore, now)
	if err != nil {
		log.Printf("[health][usecase] score update failed user_id=%s err=%v", userID, err)
		return HealthScoreResult{}, err
	}
	if updated.ID == "" {
		// The user existed a moment ago, so the guard lost to another write.
		log.Printf("[health][usecase] score changed concurrently user_id=%s read=%d", userID, oldScore)
		return HealthScoreResult{}, ErrHealthScoreChanged
	}
	u.summaries.Invalidate(userID)

	entry := entities.HealthScoreLog{
		ID:                 uuid.NewString(),
		UserID:             userID,
		OldScore:           oldScore,
		NewScore:           newScore,
		Delta:              adj.Delta,
		Reason:             adj.Reason,
		AverageUtilization: avg,
		AffectedMachines:   contributing,
		UpdatedBy:          caller.UserID,
		Timestamp:          now,
	}
	if _, err := u.logs.Create(ctx, entry); err != nil {
		log.Printf("[health][usecase] audit log write failed user_id=%s err=%v", userID, err)
		return HealthScoreResult{}, err
	}

	log.Printf("[health][usecase] recalculated user_id=%s old=%d new=%d delta=%d avg=%.2f", userID, oldScore, newScore, adj.Delta, avg)
	return HealthScoreResult{
		Computed:           true,
		Message:            fmt.Sprintf("User score updated successfully based on average utilization of %.2f%%.", avg),
		UserID:             userID,
		OldScore:           oldScore,
		NewScore:           newScore,
		Delta:              adj.Delta,
		Reason:             adj.Reason,
		Category:           scoring.CategoryFor(newScore),
		AverageUtilization: scoring.Round2(avg),
		AffectedMachines:   contributing,
		Recommendations:    scoring.Recommendations(newScore, avg),
		UpdatedAt:          now,
	}, nil
}

// Summary is read-only. Users that were never scored read as the base score.
func (u *HealthScoreUseCase) Summary(ctx context.Context, caller entities.Caller, userID string) (HealthScoreSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return HealthScoreSummary{}, ErrInvalidUserID
	}
	if err := authorizeScoreRead(caller, userID); err != nil {
		return HealthScoreSummary{}, err
	}

	if cached, found := u.summaries.Get(userID); found {
		return cached, nil
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return HealthScoreSummary{}, err
	}
	if user.ID == "" {
		return HealthScoreSummary{}, ErrUserNotFound
	}

	occupied, err := u.machines.ListByUserAndStatus(ctx, userID, entities.MachineStatusOccupied)
	if err != nil {
		return HealthScoreSummary{}, err
	}
	avg, _, _ := scoring.AverageUtilization(usagesOf(occupied))

	score := scoring.CurrentOrBase(user.HealthScore)
	lastUpdated := user.CreatedAt
	if user.ScoreLastUpdated != nil {
		lastUpdated = *user.ScoreLastUpdated
	}

	summary := HealthScoreSummary{
		UserID:             userID,
		UserName:           user.Name,
		Score:              score,
		Category:           scoring.CategoryFor(score),
		LastUpdated:        lastUpdated,
		AverageUtilization: scoring.Round2(avg),
		ActiveMachines:     len(occupied),
		Recommendations:    scoring.Recommendations(score, avg),
	}
	u.summaries.Set(userID, summary)
	return summary, nil
}

func (u *HealthScoreUseCase) History(ctx context.Context, caller entities.Caller, userID string, limit int) ([]entities.HealthScoreLog, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return u.logs.ListByUserID(ctx, userID, limit)
}

// authorizeScoreRead lets admins read any score and customers only their own.
// Anyone else is told the user does not exist.
func authorizeScoreRead(caller entities.Caller, userID string) error {
	switch {
	case caller.IsAdmin():
		return nil
	case caller.IsCustomer() && caller.UserID == userID:
		return nil
	case caller.IsCustomer():
		return ErrUserNotFound
	default:
		return ErrForbidden
	}
}

func usagesOf(machines []entities.Machine) []scoring.Usage {
	usages := make([]scoring.Usage, 0, len(machines))
	for _, m := range machines {
		usages = append(usages, scoring.Usage{
			MachineID:   m.ID,
			EngineHours: m.EngineHoursPerDay,
			IdleHours:   m.IdleHours,
		})
	}
	return usages
}
