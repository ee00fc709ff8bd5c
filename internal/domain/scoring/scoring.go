// Package scoring holds the health score rules applied to a customer's
// utilization of the machines they currently occupy.
package scoring

import (
	"fmt"
	"math"
)

const (
	BaseScore = 700
	MinScore  = 300
	MaxScore  = 850

	LowUtilization  = 10.0
	HighUtilization = 80.0

	GoodDelta    = 5
	LowDelta     = -2
	OveruseDelta = -8
)

type Category string

const (
	CategoryExcellent Category = "Excellent"
	CategoryGood      Category = "Good"
	CategoryFair      Category = "Fair"
	CategoryPoor      Category = "Poor"
)

// Usage is the telemetry of a single occupied machine.
type Usage struct {
	MachineID   string
	EngineHours float64
	IdleHours   float64
}

// Adjustment is the outcome of one recalculation.
type Adjustment struct {
	Delta  int
	Reason string
}

func CategoryFor(score int) Category {
	switch {
	case score >= 750:
		return CategoryExcellent
	case score >= 650:
		return CategoryGood
	case score >= 550:
		return CategoryFair
	default:
		return CategoryPoor
	}
}

// Utilization returns engine hours as a percentage of tracked hours. ok is
// false when the machine has no tracked hours at all.
func Utilization(engineHours, idleHours float64) (pct float64, ok bool) {
	total := engineHours + idleHours
	if total <= 0 {
		return 0, false
	}
	return engineHours / total * 100, true
}

// AverageUtilization is the unweighted mean over machines that report hours.
// contributing lists the machine IDs that were part of the mean.
func AverageUtilization(usages []Usage) (avg float64, contributing []string, ok bool) {
	sum := 0.0
	for _, u := range usages {
		pct, usable := Utilization(u.EngineHours, u.IdleHours)
		if !usable {
			continue
		}
		sum += pct
		contributing = append(contributing, u.MachineID)
	}
	if len(contributing) == 0 {
		return 0, nil, false
	}
	return sum / float64(len(contributing)), contributing, true
}

// Adjust applies the three-band delta rule. Overuse is penalised harder than
// underuse.
func Adjust(avgUtilization float64) Adjustment {
	switch {
	case avgUtilization < LowUtilization:
		return Adjustment{
			Delta:  LowDelta,
			Reason: fmt.Sprintf("Low utilization (%.1f%%) - score decreased slightly", avgUtilization),
		}
	case avgUtilization > HighUtilization:
		return Adjustment{
			Delta:  OveruseDelta,
			Reason: fmt.Sprintf("High utilization (%.1f%%) - risk of overuse, score decreased", avgUtilization),
		}
	default:
		return Adjustment{
			Delta:  GoodDelta,
			Reason: fmt.Sprintf("Good utilization (%.1f%%) - score increased", avgUtilization),
		}
	}
}

func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// CurrentOrBase resolves a stored score. Records that never had a score, or
// carry a zero value, read as BaseScore.
func CurrentOrBase(stored *int) int {
	if stored == nil || *stored == 0 {
		return BaseScore
	}
	return *stored
}

func Recommendations(score int, utilization float64) []string {
	recs := make([]string, 0, 3)

	if score < 550 {
		recs = append(recs,
			"Improve machine utilization to increase your score",
			"Avoid overusing equipment to prevent damage",
		)
	}

	switch {
	case utilization < LowUtilization:
		recs = append(recs, "Consider reducing the number of machines or increasing usage")
	case utilization > HighUtilization:
		recs = append(recs, "Consider requesting additional machines to avoid overutilization")
	}

	if score >= 750 {
		recs = append(recs, "Excellent score! You're eligible for premium equipment and priority support")
	}
	return recs
}

// Round2 rounds to two decimals for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
