// internal/comparator/recommend.go
package comparator

import (
	"fmt"
	"math"
	"strings"

	"college-comparator/internal/models"
)

const tieRecommendation = "Both colleges are comparable. Consider other factors like location and specific courses."

// Recommend composes the verdict text for a pair of views. The output is
// fully determined by its inputs; no randomness or time-based content.
func Recommend(a, b *ExtractedView, p *models.Personalization) string {
	scoreA := Score(a, p)
	scoreB := Score(b, p)

	var verdict string
	switch {
	case scoreA > scoreB:
		verdict = fmt.Sprintf("%s appears to be the better choice overall with a score of %.1f/10", a.Overview.Name, scoreA)
	case scoreB > scoreA:
		verdict = fmt.Sprintf("%s appears to be the better choice overall with a score of %.1f/10", b.Overview.Name, scoreB)
	default:
		verdict = tieRecommendation
	}

	feesA := a.Fees.AverageFees
	feesB := b.Fees.AverageFees
	if feesA != nil && feesB != nil {
		if *feesA < *feesB {
			verdict += fmt.Sprintf(" %s is ₹%s cheaper per year.", a.Overview.Name, groupThousands(*feesB-*feesA))
		} else if *feesB < *feesA {
			verdict += fmt.Sprintf(" %s is ₹%s cheaper per year.", b.Overview.Name, groupThousands(*feesA-*feesB))
		}
	}

	return verdict
}

// groupThousands renders a non-negative amount rounded to whole units
// with comma separators, e.g. 650000 -> "650,000".
func groupThousands(amount float64) string {
	digits := fmt.Sprintf("%.0f", math.Abs(amount))
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
