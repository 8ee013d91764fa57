// internal/models/comparison.go
package models

// QuotaInsights carries the category/domicile/gender driven eligibility
// annotations. Purely descriptive; no numeric output.
type QuotaInsights struct {
	Category         string   `json:"category"`
	ApplicableQuotas []string `json:"applicable_quotas"`
	FeeBenefits      []string `json:"fee_benefits"`
	AdmissionNotes   []string `json:"admission_notes"`
}

// CollegeData is the flat attribute block attached to each compared
// college in the API response.
type CollegeData struct {
	City                string   `json:"city"`
	State               string   `json:"state"`
	Type                string   `json:"type"`
	Established         *int     `json:"established"`
	University          string   `json:"university"`
	CampusSize          string   `json:"campus_size"`
	TotalStudents       *int     `json:"total_students"`
	TotalFaculty        *int     `json:"total_faculty"`
	StudentFacultyRatio *float64 `json:"student_faculty_ratio"`
	Fees                *float64 `json:"fees"`
	Rating              *float64 `json:"rating"`
	Facilities          string   `json:"facilities"`
	Courses             string   `json:"courses"`
	GoogleMaps          string   `json:"google_maps"`
}

// CollegeResult is one side of a comparison.
type CollegeResult struct {
	CollegeName   string         `json:"college_name"`
	Score         float64        `json:"score"`
	Ranking       int            `json:"ranking"`
	Strengths     []string       `json:"strengths"`
	Weaknesses    []string       `json:"weaknesses"`
	Data          CollegeData    `json:"data"`
	QuotaInsights *QuotaInsights `json:"quota_insights,omitempty"`
}

// ComparisonMetadata mirrors the metadata block of the original API.
type ComparisonMetadata struct {
	TotalColleges    int      `json:"total_colleges"`
	FeaturesCompared []string `json:"features_compared"`
	Personalized     bool     `json:"personalized"`
}

// ComparisonResponse is the full compare payload.
type ComparisonResponse struct {
	Success                bool               `json:"success"`
	ComparisonID           string             `json:"comparison_id"`
	Comparison             []CollegeResult    `json:"comparison"`
	Recommendation         string             `json:"recommendation"`
	PersonalizationApplied bool               `json:"personalization_applied"`
	UserCategory           *string            `json:"user_category"`
	Metadata               ComparisonMetadata `json:"metadata"`
}

// CollegeSummary is the shape used by autocomplete and list endpoints.
type CollegeSummary struct {
	Name string   `json:"name"`
	City string   `json:"city"`
	Type string   `json:"type"`
	Fees *float64 `json:"fees"`
}
