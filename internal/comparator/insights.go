// internal/comparator/insights.go
package comparator

import (
	"fmt"
	"strings"

	"college-comparator/internal/models"
)

const (
	maxStrengths  = 4
	maxWeaknesses = 3

	largeStudentBody = 3000
	smallStudentBody = 1000

	highFeeFlag      = 800000
	obcFeeConcession = 800000
	loanThreshold    = 200000
)

// Analyze produces strength and weakness phrases for a view. Predicates
// are independent and evaluated in a fixed order (fee checks first), then
// each list is truncated to its cap.
func Analyze(view *ExtractedView, p *models.Personalization) (strengths, weaknesses []string) {
	fees := view.Fees.AverageFees

	if p != nil && p.MaxBudget != nil && *p.MaxBudget > 0 && fees != nil {
		budget := *p.MaxBudget
		switch {
		case *fees <= budget*0.7:
			strengths = append(strengths, fmt.Sprintf("Well within your budget (₹%.1fL)", *fees/100000))
		case *fees <= budget:
			strengths = append(strengths, fmt.Sprintf("Within your budget (₹%.1fL)", *fees/100000))
		case *fees > budget*1.2:
			weaknesses = append(weaknesses, fmt.Sprintf("Above your budget (₹%.1fL)", *fees/100000))
		}
	} else if fees != nil {
		if *fees < lowFeeThreshold {
			strengths = append(strengths, "Affordable fees")
		} else if *fees > highFeeFlag {
			weaknesses = append(weaknesses, "High fees")
		}
	}

	if view.IsGovernment() {
		strengths = append(strengths, "Government college")
	}

	if students := view.Academics.TotalStudents; students != nil {
		if *students > largeStudentBody {
			strengths = append(strengths, "Large student community")
		} else if *students < smallStudentBody {
			weaknesses = append(weaknesses, "Small student body")
		}
	}

	if ratio := view.StudentFacultyRatio(); ratio != nil {
		if *ratio < 20 {
			strengths = append(strengths, "Good student-faculty ratio")
		} else if *ratio > 30 {
			weaknesses = append(weaknesses, "High student-faculty ratio")
		}
	}

	if view.Facilities.Raw != "" {
		hasHostel := view.HasHostel()
		if p != nil && p.HostelRequired {
			if hasHostel {
				strengths = append(strengths, "Hostel available (as required)")
			} else {
				weaknesses = append(weaknesses, "No hostel facility")
			}
		} else if hasHostel {
			strengths = append(strengths, "Hostel available")
		}

		if strings.Contains(view.Facilities.Raw, "Gym") && strings.Contains(view.Facilities.Raw, "Sports") {
			strengths = append(strengths, "Good sports facilities")
		}
	}

	if p.HasLocationPreference() {
		city := strings.ToLower(view.Location.City)
		for _, loc := range p.LocationPreference {
			if strings.Contains(city, strings.ToLower(loc)) {
				strengths = append(strengths, fmt.Sprintf("In your preferred location (%s)", view.Location.City))
				break
			}
		}
	}

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	if len(weaknesses) > maxWeaknesses {
		weaknesses = weaknesses[:maxWeaknesses]
	}
	return strengths, weaknesses
}

// Eligibility labels a view with quota, fee-benefit and admission notes
// for the given preferences. Purely an annotation step; nothing here
// feeds back into scoring. Returns nil when there are no preferences.
func Eligibility(view *ExtractedView, p *models.Personalization) *models.QuotaInsights {
	if p == nil {
		return nil
	}

	out := &models.QuotaInsights{
		Category:         p.Category,
		ApplicableQuotas: []string{},
		FeeBenefits:      []string{},
		AdmissionNotes:   []string{},
	}

	isGovernment := view.IsGovernment()
	fees := view.Fees.AverageFees

	switch {
	case p.Category == "SC" || p.Category == "ST":
		out.ApplicableQuotas = append(out.ApplicableQuotas,
			fmt.Sprintf("%s Reservation (15%%/7.5%% seats)", p.Category))
		if isGovernment {
			out.FeeBenefits = append(out.FeeBenefits, "Fee concession/waiver available for SC/ST students")
			out.AdmissionNotes = append(out.AdmissionNotes, "Lower cutoff marks applicable")
		}
		out.AdmissionNotes = append(out.AdmissionNotes, "Post-matric scholarship available")

	case p.Category == "OBC":
		out.ApplicableQuotas = append(out.ApplicableQuotas, "OBC Reservation (27% seats)")
		if isGovernment && fees != nil && *fees < obcFeeConcession {
			out.FeeBenefits = append(out.FeeBenefits, "May qualify for fee concession")
		}
		out.AdmissionNotes = append(out.AdmissionNotes, "Creamy layer certificate required")

	case p.Category == "EWS":
		out.ApplicableQuotas = append(out.ApplicableQuotas, "EWS Reservation (10% seats)")
		if isGovernment {
			out.FeeBenefits = append(out.FeeBenefits, "Fee structure same as general category")
		}
		out.AdmissionNotes = append(out.AdmissionNotes, "Income certificate (< ₹8 lakh) required")

	case isStateCategory(p.Category):
		out.ApplicableQuotas = append(out.ApplicableQuotas,
			fmt.Sprintf("%s Reservation (Maharashtra State)", p.Category))
		if isGovernment {
			out.FeeBenefits = append(out.FeeBenefits, "State-level fee concessions may apply")
		}
		out.AdmissionNotes = append(out.AdmissionNotes, "Domicile certificate required")
	}

	if p.Domicile == "Maharashtra" {
		out.AdmissionNotes = append(out.AdmissionNotes, "Home state quota applicable (85% seats)")
	} else {
		out.AdmissionNotes = append(out.AdmissionNotes, "All India quota applicable (15% seats)")
		out.AdmissionNotes = append(out.AdmissionNotes, "Higher cutoff may be required")
	}

	if p.Gender == "Female" {
		if strings.Contains(strings.ToLower(view.Facilities.Raw), "girls hostel") {
			out.AdmissionNotes = append(out.AdmissionNotes, "Girls hostel available")
		}
		if isGovernment {
			out.FeeBenefits = append(out.FeeBenefits, "May qualify for girls' scholarships")
		}
	}

	if fees != nil && *fees > loanThreshold {
		out.AdmissionNotes = append(out.AdmissionNotes, "Education loan facilities available")
	}

	return out
}

func isStateCategory(category string) bool {
	switch category {
	case "NT-A", "NT-B", "NT-C", "NT-D", "VJ-A", "SBC", "SEBC":
		return true
	}
	return false
}
