// internal/comparator/extractor.go
package comparator

import (
	"strings"

	"college-comparator/internal/common/errors"
	"college-comparator/internal/models"
)

// DefaultState is assumed when a record carries no state of its own; the
// catalog is a Maharashtra colleges export.
const DefaultState = "Maharashtra"

// ExtractedView is the fixed-shape projection consumed by scoring and
// insight generation. All missing-field policy lives in Extract; numeric
// absences stay nil so "unknown" is distinguishable from zero.
type ExtractedView struct {
	Overview   OverviewGroup
	Location   LocationGroup
	Academics  AcademicsGroup
	Fees       FeesGroup
	Facilities FacilitiesGroup
	Rating     RatingGroup
}

type OverviewGroup struct {
	Name            string
	EstablishedYear *int
	OwnershipType   string
	University      string
	GendersAccepted string
	CampusSize      string
}

type LocationGroup struct {
	City    string
	State   string
	MapsURL string
}

type AcademicsGroup struct {
	TotalFaculty  *int
	TotalStudents *int
	Courses       []string
	CoursesRaw    string
}

type FeesGroup struct {
	AverageFees *float64
}

type FacilitiesGroup struct {
	Items []string
	Raw   string
}

type RatingGroup struct {
	Value *float64
}

// Extract projects a record into its view. It errors only on catalog
// integrity violations: missing name or city must surface distinctly from
// "no match", never be silently defaulted.
func Extract(c *models.College) (*ExtractedView, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, errors.NewMissingRequiredFieldError("name", c.ID)
	}
	if strings.TrimSpace(c.City) == "" {
		return nil, errors.NewMissingRequiredFieldError("city", c.ID)
	}

	state := c.State
	if strings.TrimSpace(state) == "" {
		state = DefaultState
	}

	mapsURL := c.LocationURL
	if strings.TrimSpace(mapsURL) == "" {
		mapsURL = models.MapsSearchURL(c.Name)
	}

	return &ExtractedView{
		Overview: OverviewGroup{
			Name:            c.Name,
			EstablishedYear: c.EstablishedYear,
			OwnershipType:   c.OwnershipType,
			University:      c.University,
			GendersAccepted: c.GendersAccepted,
			CampusSize:      c.CampusSize,
		},
		Location: LocationGroup{
			City:    c.City,
			State:   state,
			MapsURL: mapsURL,
		},
		Academics: AcademicsGroup{
			TotalFaculty:  c.TotalFaculty,
			TotalStudents: c.TotalStudents,
			Courses:       splitList(c.Courses),
			CoursesRaw:    c.Courses,
		},
		Fees: FeesGroup{
			AverageFees: c.AverageFees,
		},
		Facilities: FacilitiesGroup{
			Items: splitList(c.Facilities),
			Raw:   c.Facilities,
		},
		Rating: RatingGroup{
			Value: c.Rating,
		},
	}, nil
}

// IsGovernment reports whether the view's ownership text marks a publicly
// funded college.
func (v *ExtractedView) IsGovernment() bool {
	return strings.Contains(v.Overview.OwnershipType, "Public") ||
		strings.Contains(v.Overview.OwnershipType, "Government")
}

// StudentFacultyRatio returns students per faculty member, or nil when
// either count is unknown or faculty is zero.
func (v *ExtractedView) StudentFacultyRatio() *float64 {
	students := v.Academics.TotalStudents
	faculty := v.Academics.TotalFaculty
	if students == nil || faculty == nil || *faculty <= 0 {
		return nil
	}
	ratio := float64(*students) / float64(*faculty)
	return &ratio
}

// HasHostel reports a hostel-related token anywhere in the facilities text.
func (v *ExtractedView) HasHostel() bool {
	return strings.Contains(strings.ToLower(v.Facilities.Raw), "hostel")
}

// splitList turns comma-delimited free text into an ordered, trimmed
// slice. Parsing happens once here; scoring and insights never re-split.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
