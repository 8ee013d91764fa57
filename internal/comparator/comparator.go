// internal/comparator/comparator.go
package comparator

import (
	"math"

	"github.com/google/uuid"

	"college-comparator/internal/common/errors"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/models"
)

// featuresCompared is the fixed metadata block advertised on every
// comparison response.
var featuresCompared = []string{"fees", "students", "faculty", "location", "facilities"}

// Catalog is the read side the comparator needs. The store behind it owns
// loading and reloads; the comparator itself stays stateless.
type Catalog interface {
	Loaded() bool
	Records() []models.College
}

// Service wires matching, scoring and insight generation into the
// request-level operations the API exposes.
type Service struct {
	catalog Catalog
	logger  logger.Logger
}

func NewService(catalog Catalog, log logger.Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  log,
	}
}

// Resolve finds a single record for a free-text query.
func (s *Service) Resolve(query string) (*models.College, error) {
	if !s.catalog.Loaded() {
		return nil, errors.NewCatalogNotLoadedError()
	}
	return Find(query, s.catalog.Records())
}

// ResolvePair resolves both sides of a comparison. A miss on either side
// fails the whole pair; the returned error names the query that failed.
func (s *Service) ResolvePair(queryA, queryB string) (*models.College, *models.College, error) {
	first, err := s.Resolve(queryA)
	if err != nil {
		return nil, nil, err
	}
	second, err := s.Resolve(queryB)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// Compare resolves, scores and annotates a pair of colleges and builds
// the full response payload.
func (s *Service) Compare(queryA, queryB string, p *models.Personalization) (*models.ComparisonResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.NewInvalidPersonalizationError(err.Error())
	}

	first, second, err := s.ResolvePair(queryA, queryB)
	if err != nil {
		return nil, err
	}

	viewA, err := Extract(first)
	if err != nil {
		return nil, err
	}
	viewB, err := Extract(second)
	if err != nil {
		return nil, err
	}

	resultA := buildResult(viewA, 1, p)
	resultB := buildResult(viewB, 2, p)

	var userCategory *string
	if p != nil {
		userCategory = &p.Category
	}

	resp := &models.ComparisonResponse{
		Success:                true,
		ComparisonID:           uuid.NewString(),
		Comparison:             []models.CollegeResult{resultA, resultB},
		Recommendation:         Recommend(viewA, viewB, p),
		PersonalizationApplied: p != nil,
		UserCategory:           userCategory,
		Metadata: models.ComparisonMetadata{
			TotalColleges:    2,
			FeaturesCompared: featuresCompared,
			Personalized:     p != nil,
		},
	}

	s.logger.Info("comparison completed", map[string]interface{}{
		"comparisonId": resp.ComparisonID,
		"collegeA":     viewA.Overview.Name,
		"collegeB":     viewB.Overview.Name,
		"personalized": p != nil,
	})
	return resp, nil
}

// Suggest returns autocomplete candidates for a partial query.
func (s *Service) Suggest(query string, limit int) ([]models.CollegeSummary, error) {
	if !s.catalog.Loaded() {
		return nil, errors.NewCatalogNotLoadedError()
	}
	return Suggest(query, s.catalog.Records(), limit), nil
}

// List pages through the catalog in its stored order.
func (s *Service) List(limit, offset int) (page []models.CollegeSummary, total int, err error) {
	if !s.catalog.Loaded() {
		return nil, 0, errors.NewCatalogNotLoadedError()
	}
	records := s.catalog.Records()
	total = len(records)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	page = make([]models.CollegeSummary, 0, end-offset)
	for i := offset; i < end; i++ {
		page = append(page, models.CollegeSummary{
			Name: records[i].Name,
			City: records[i].City,
			Type: summaryType(records[i].OwnershipType),
			Fees: records[i].AverageFees,
		})
	}
	return page, total, nil
}

func buildResult(view *ExtractedView, rank int, p *models.Personalization) models.CollegeResult {
	strengths, weaknesses := Analyze(view, p)
	if strengths == nil {
		strengths = []string{}
	}
	if weaknesses == nil {
		weaknesses = []string{}
	}

	return models.CollegeResult{
		CollegeName: view.Overview.Name,
		Score:       Score(view, p),
		Ranking:     rank,
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Data: models.CollegeData{
			City:                view.Location.City,
			State:               view.Location.State,
			Type:                view.Overview.OwnershipType,
			Established:         view.Overview.EstablishedYear,
			University:          view.Overview.University,
			CampusSize:          view.Overview.CampusSize,
			TotalStudents:       view.Academics.TotalStudents,
			TotalFaculty:        view.Academics.TotalFaculty,
			StudentFacultyRatio: roundedRatio(view),
			Fees:                view.Fees.AverageFees,
			Rating:              view.Rating.Value,
			Facilities:          view.Facilities.Raw,
			Courses:             view.Academics.CoursesRaw,
			GoogleMaps:          view.Location.MapsURL,
		},
		QuotaInsights: Eligibility(view, p),
	}
}

func roundedRatio(view *ExtractedView) *float64 {
	ratio := view.StudentFacultyRatio()
	if ratio == nil {
		return nil
	}
	rounded := math.Round(*ratio*100) / 100
	return &rounded
}
