// internal/models/college.go
package models

import (
	"net/url"
	"strings"
)

// College is one catalog record. All fields except Name and City are
// optional; numeric absences are nil so scoring can tell "unknown" from
// zero.
type College struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	NormalizedName  string   `json:"-"`
	City            string   `json:"city"`
	State           string   `json:"state,omitempty"`
	OwnershipType   string   `json:"type,omitempty"`
	University      string   `json:"university,omitempty"`
	EstablishedYear *int     `json:"establishedYear,omitempty"`
	CampusSize      string   `json:"campusSize,omitempty"`
	GendersAccepted string   `json:"gendersAccepted,omitempty"`
	TotalFaculty    *int     `json:"totalFaculty,omitempty"`
	TotalStudents   *int     `json:"totalStudents,omitempty"`
	Courses         string   `json:"courses,omitempty"`
	AverageFees     *float64 `json:"averageFees,omitempty"`
	Facilities      string   `json:"facilities,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	LocationURL     string   `json:"locationUrl,omitempty"`
}

// IsGovernment reports whether the ownership text marks the college as
// publicly funded.
func (c *College) IsGovernment() bool {
	return strings.Contains(c.OwnershipType, "Public") ||
		strings.Contains(c.OwnershipType, "Government")
}

// MapsSearchURL builds the fallback Google Maps search link used when a
// record carries no location URL of its own.
func MapsSearchURL(name string) string {
	return "https://www.google.com/maps/search/?api=1&query=" +
		url.QueryEscape(name)
}
