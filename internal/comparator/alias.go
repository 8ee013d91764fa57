// internal/comparator/alias.go
package comparator

import "strings"

// abbreviations maps well-known college shorthands to canonical name
// fragments. Lookup is exact whole-string only; partial keys never match.
var abbreviations = map[string]string{
	"vjti":      "veermata jijabai technological institute",
	"coep":      "college of engineering pune",
	"spce":      "sardar patel college of engineering",
	"spit":      "sardar patel institute of technology",
	"kjsce":     "kj somaiya college of engineering",
	"kjsieit":   "kj somaiya institute of engineering",
	"pict":      "pune institute of computer technology",
	"rait":      "ramrao adik institute of technology",
	"dbit":      "don bosco institute of technology",
	"sies":      "sies graduate school of technology",
	"tsec":      "thadomal shahani engineering college",
	"fcrit":     "fr conceicao rodrigues institute of technology",
	"dmce":      "dwarkadas j sanghvi college of engineering",
	"djsce":     "dwarkadas j sanghvi college of engineering",
	"apsit":     "a p shah institute of technology",
	"universal": "dr dy patil vidyapeeth",
}

// Normalize lowercases and trims a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Expand resolves a normalized query through the abbreviation table.
// Unknown queries pass through unchanged; expansion never fails.
func Expand(normalized string) string {
	if full, ok := abbreviations[normalized]; ok {
		return full
	}
	return normalized
}
