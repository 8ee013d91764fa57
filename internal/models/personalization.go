// internal/models/personalization.go
package models

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
)

// Personalization is the per-request preference bundle. It is never
// persisted; a nil *Personalization means "no preferences".
type Personalization struct {
	Category                    string   `json:"category"`
	Gender                      string   `json:"gender"`
	Domicile                    string   `json:"domicile"`
	MaxBudget                   *float64 `json:"maxBudget,omitempty"`
	HostelRequired              bool     `json:"hostelRequired"`
	PreferredCollegeType        []string `json:"preferredCollegeType,omitempty"`
	LocationPreference          []string `json:"locationPreference,omitempty"`
	PreferSmallCampus           bool     `json:"preferSmallCampus"`
	PrioritizeGovernmentCollege bool     `json:"prioritizeGovernmentCollege"`
}

// ReservedCategories is the fixed set of category strings that carry quota
// semantics. Anything else (including "General" and empty) gets no quota
// labels.
var ReservedCategories = []string{
	"SC", "ST", "OBC", "EWS",
	"NT-A", "NT-B", "NT-C", "NT-D", "VJ-A", "SBC", "SEBC",
}

// Validate rejects values that would corrupt scoring. Unknown category
// strings are allowed; they simply produce no quota insights.
func (p *Personalization) Validate() error {
	if p == nil {
		return nil
	}
	if p.MaxBudget != nil && *p.MaxBudget < 0 {
		return fmt.Errorf("maxBudget must be non-negative, got %v", *p.MaxBudget)
	}
	return nil
}

// Fingerprint returns a short stable digest of the preference bundle,
// used in cache keys. Nil receivers hash to a fixed token.
func (p *Personalization) Fingerprint() string {
	if p == nil {
		return "none"
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "none"
	}
	h := fnv.New64a()
	h.Write(raw)
	return fmt.Sprintf("%016x", h.Sum64())
}

// HasLocationPreference reports whether the preference set constrains
// location at all ("Any" is a wildcard meaning no constraint).
func (p *Personalization) HasLocationPreference() bool {
	if p == nil || len(p.LocationPreference) == 0 {
		return false
	}
	for _, loc := range p.LocationPreference {
		if loc == "Any" {
			return false
		}
	}
	return true
}
