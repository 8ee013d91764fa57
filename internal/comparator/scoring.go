// internal/comparator/scoring.go
package comparator

import (
	"strings"

	"college-comparator/internal/models"
)

const (
	baseScore = 5.0
	minScore  = 0.0
	maxScore  = 10.0

	// Fixed fee thresholds used when the caller gave no budget.
	lowFeeThreshold  = 300000
	midFeeThreshold  = 500000
	highFeeThreshold = 1000000

	// Assumed population-average rating.
	averageRating = 3.0
)

// Score converts a view plus optional preferences into a [0,10] score.
// Every adjustment is an independent additive term; clamping happens once
// at the end, so the order of the terms never matters.
func Score(view *ExtractedView, p *models.Personalization) float64 {
	score := baseScore

	score += feeAdjustment(view, p)
	score += ownershipAdjustment(view, p)
	score += locationAdjustment(view, p)
	score += hostelAdjustment(view, p)
	score += campusSizeAdjustment(view, p)

	if rating := view.Rating.Value; rating != nil {
		score += *rating - averageRating
	}

	// Raw facilities length is a coarse proxy for facility count.
	if len(view.Facilities.Raw) > 100 {
		score += 0.5
	}

	return clamp(score, minScore, maxScore)
}

func feeAdjustment(view *ExtractedView, p *models.Personalization) float64 {
	fees := view.Fees.AverageFees
	if fees == nil {
		return 0
	}

	// A zero budget means "no budget given", not "budget of zero".
	if p != nil && p.MaxBudget != nil && *p.MaxBudget > 0 {
		budget := *p.MaxBudget
		switch {
		case *fees <= budget*0.7:
			return 2.0
		case *fees <= budget:
			return 1.0
		case *fees <= budget*1.2:
			return 0.5
		default:
			return -1.5
		}
	}

	switch {
	case *fees < lowFeeThreshold:
		return 1.5
	case *fees < midFeeThreshold:
		return 1.0
	case *fees > highFeeThreshold:
		return -1.0
	default:
		return 0
	}
}

func ownershipAdjustment(view *ExtractedView, p *models.Personalization) float64 {
	if !view.IsGovernment() {
		return 0
	}
	if p != nil && p.PrioritizeGovernmentCollege {
		return 1.5
	}
	return 0.5
}

func locationAdjustment(view *ExtractedView, p *models.Personalization) float64 {
	if !p.HasLocationPreference() {
		return 0
	}
	city := strings.ToLower(view.Location.City)
	for _, loc := range p.LocationPreference {
		if strings.Contains(city, strings.ToLower(loc)) {
			return 1.0
		}
	}
	return 0
}

func hostelAdjustment(view *ExtractedView, p *models.Personalization) float64 {
	if p == nil || !p.HostelRequired {
		return 0
	}
	if view.HasHostel() {
		return 0.8
	}
	return -1.0
}

func campusSizeAdjustment(view *ExtractedView, p *models.Personalization) float64 {
	if p == nil || !p.PreferSmallCampus {
		return 0
	}
	ratio := view.StudentFacultyRatio()
	if ratio == nil {
		return 0
	}
	switch {
	case *ratio < 15:
		return 1.5
	case *ratio < 20:
		return 1.0
	case *ratio > 30:
		return -0.5
	default:
		return 0
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
