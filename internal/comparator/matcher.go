// internal/comparator/matcher.go
package comparator

import (
	"strings"

	"college-comparator/internal/common/errors"
	"college-comparator/internal/models"
)

// Find resolves a free-text query against the ordered catalog snapshot.
//
// Strategy, first success wins:
//  1. normalize + abbreviation expansion
//  2. literal substring match over normalized names
//  3. for multi-word queries, a record matches if every token appears
//     somewhere in its normalized name
//
// Ties break on catalog order: the first matching record wins, not the
// "best" one. That makes results order-sensitive to catalog layout for
// ambiguous queries; accepted behavior, inherited from the data source.
func Find(query string, catalog []models.College) (*models.College, error) {
	expanded := Expand(Normalize(query))
	if expanded == "" {
		return nil, errors.NewCollegeNotFoundError(query)
	}

	for i := range catalog {
		if strings.Contains(catalog[i].NormalizedName, expanded) {
			return &catalog[i], nil
		}
	}

	tokens := strings.Fields(expanded)
	if len(tokens) > 1 {
		for i := range catalog {
			if containsAll(catalog[i].NormalizedName, tokens) {
				return &catalog[i], nil
			}
		}
	}

	return nil, errors.NewCollegeNotFoundError(query)
}

func containsAll(name string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(name, tok) {
			return false
		}
	}
	return true
}

// Suggest returns up to limit records whose normalized name contains the
// query, in catalog order. Queries shorter than two characters yield
// nothing; at that length substring matching is all noise.
func Suggest(query string, catalog []models.College, limit int) []models.CollegeSummary {
	normalized := Normalize(query)
	if len(normalized) < 2 || limit <= 0 {
		return nil
	}

	out := make([]models.CollegeSummary, 0, limit)
	for i := range catalog {
		if !strings.Contains(catalog[i].NormalizedName, normalized) {
			continue
		}
		out = append(out, models.CollegeSummary{
			Name: catalog[i].Name,
			City: catalog[i].City,
			Type: summaryType(catalog[i].OwnershipType),
			Fees: catalog[i].AverageFees,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

func summaryType(ownership string) string {
	if ownership == "" {
		return "N/A"
	}
	return ownership
}
