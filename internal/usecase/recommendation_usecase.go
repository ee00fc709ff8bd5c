package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"
)

const (
	RecommendationSourceLLM   = "llm"
	RecommendationSourceRules = "rules"

	generatorTimeout = 10 * time.Second
)

type RecommendationResult struct {
	Audience        entities.Role
	Source          string
	Recommendations []string
}

// IRecommendationUseCase serves GET /v1/recommendations.
type IRecommendationUseCase interface {
	ForCaller(ctx context.Context, caller entities.Caller) (RecommendationResult, error)
}

// RecommendationUseCase phrases advice through a text generator and falls back
// to the rule-based list whenever the generator is missing or fails.
type RecommendationUseCase struct {
	health    IHealthScoreUseCase
	machines  interfaces.IMachineRepository
	generator interfaces.ITextGenerator
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

// NewRecommendationUseCase accepts a nil generator.
func NewRecommendationUseCase(health IHealthScoreUseCase, machines interfaces.IMachineRepository, generator interfaces.ITextGenerator) *RecommendationUseCase {
	return &RecommendationUseCase{health: health, machines: machines, generator: generator}
}

type customerPrompt struct {
	Audience           string   `json:"audience"`
	Score              int      `json:"health_score"`
	Category           string   `json:"category"`
	AverageUtilization float64  `json:"average_utilization"`
	ActiveMachines     int      `json:"active_machines"`
	RuleHints          []string `json:"rule_hints"`
}

type fleetPrompt struct {
	Audience     string         `json:"audience"`
	TotalFleet   int            `json:"total_fleet"`
	StatusCounts map[string]int `json:"status_counts"`
	RuleHints    []string       `json:"rule_hints"`
}

func (u *RecommendationUseCase) ForCaller(ctx context.Context, caller entities.Caller) (RecommendationResult, error) {
	switch {
	case caller.IsAdmin():
		return u.forAdmin(ctx, caller)
	case caller.IsCustomer():
		return u.forCustomer(ctx, caller)
	default:
		return RecommendationResult{}, ErrForbidden
	}
}

func (u *RecommendationUseCase) forCustomer(ctx context.Context, caller entities.Caller) (RecommendationResult, error) {
	summary, err := u.health.Summary(ctx, caller, caller.UserID)
	if err != nil {
		return RecommendationResult{}, err
	}

	rules := summary.Recommendations
	if len(rules) == 0 {
		rules = []string{"Your utilization is healthy. Keep machines busy within the 10-80% range"}
	}
	payload := customerPrompt{
		Audience:           string(entities.RoleCustomer),
		Score:              summary.Score,
		Category:           string(summary.Category),
		AverageUtilization: summary.AverageUtilization,
		ActiveMachines:     summary.ActiveMachines,
		RuleHints:          rules,
	}
	return u.phrase(ctx, entities.RoleCustomer, payload, rules), nil
}

func (u *RecommendationUseCase) forAdmin(ctx context.Context, caller entities.Caller) (RecommendationResult, error) {
	fleet, err := u.machines.ListByDealerID(ctx, caller.DealershipID, "")
	if err != nil {
		return RecommendationResult{}, err
	}

	counts := map[string]int{}
	for _, m := range fleet {
		counts[string(m.Status)]++
	}
	rules := fleetRecommendations(len(fleet), counts)
	payload := fleetPrompt{
		Audience:     string(entities.RoleAdmin),
		TotalFleet:   len(fleet),
		StatusCounts: counts,
		RuleHints:    rules,
	}
	return u.phrase(ctx, entities.RoleAdmin, payload, rules), nil
}

// phrase asks the generator to turn payload into advice. Any failure yields
// the rule-based list unchanged.
func (u *RecommendationUseCase) phrase(ctx context.Context, audience entities.Role, payload any, rules []string) RecommendationResult {
	fallback := RecommendationResult{Audience: audience, Source: RecommendationSourceRules, Recommendations: rules}
	if u.generator == nil {
		return fallback
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[recommendation][usecase] prompt marshal failed err=%v", err)
		return fallback
	}
	prompt := "You advise a construction equipment rental " + string(audience) + ". " +
		"Using the JSON context below, write at most 5 short, actionable recommendations, one per line, without numbering.\n" +
		string(raw)

	ctx, cancel := context.WithTimeout(ctx, generatorTimeout)
	defer cancel()

	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[recommendation][usecase] generator failed audience=%s err=%v", audience, err)
		return fallback
	}
	lines := splitRecommendations(text)
	if len(lines) == 0 {
		log.Printf("[recommendation][usecase] generator returned no text audience=%s", audience)
		return fallback
	}
	return RecommendationResult{Audience: audience, Source: RecommendationSourceLLM, Recommendations: lines}
}

func fleetRecommendations(total int, counts map[string]int) []string {
	if total == 0 {
		return []string{"Register machines to start receiving rental orders"}
	}

	recs := make([]string, 0, 4)
	ready := counts[string(entities.MachineStatusReady)]
	if ready == 0 {
		recs = append(recs, "No machines are ready: release machines from finished rentals to meet new orders")
	} else {
		recs = append(recs, fmt.Sprintf("%d machine(s) ready for allocation", ready))
	}
	if n := counts[string(entities.MachineStatusInTransit)]; n > 0 {
		recs = append(recs, fmt.Sprintf("%d machine(s) in transit: mark them occupied once delivered", n))
	}
	if n := counts[string(entities.MachineStatusMaintenance)]; n > 0 {
		recs = append(recs, fmt.Sprintf("%d machine(s) in maintenance: schedule servicing to return them to the pool", n))
	}
	if n := counts[string(entities.MachineStatusOccupied)]; n*10 >= total*8 {
		recs = append(recs, "Fleet is over 80% occupied: consider transferring machines from other dealerships")
	}
	return recs
}

func splitRecommendations(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• ")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
