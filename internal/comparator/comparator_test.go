package comparator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-comparator/internal/common/errors"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

type stubCatalog struct {
	records []models.College
}

func (s *stubCatalog) Loaded() bool              { return s.records != nil }
func (s *stubCatalog) Records() []models.College { return s.records }

func createTestService(t *testing.T, records []models.College) *Service {
	return NewService(&stubCatalog{records: records}, logger.NewTestLogger(t))
}

func createComparisonCatalog() []models.College {
	return []models.College{
		{
			ID:             1,
			Name:           "Veermata Jijabai Technological Institute",
			NormalizedName: "veermata jijabai technological institute",
			City:           "Mumbai",
			OwnershipType:  "Public/Government",
			AverageFees:    floatPtr(90000),
			Rating:         floatPtr(4.4),
			TotalStudents:  intPtr(3500),
			TotalFaculty:   intPtr(200),
			Facilities:     "Boys Hostel, Girls Hostel, Library, Gym, Sports Complex",
			Courses:        "Computer Engineering, Mechanical Engineering",
		},
		{
			ID:             2,
			Name:           "Sardar Patel Institute Of Technology",
			NormalizedName: "sardar patel institute of technology",
			City:           "Mumbai",
			OwnershipType:  "Private",
			AverageFees:    floatPtr(680000),
			Rating:         floatPtr(4.1),
			TotalStudents:  intPtr(2400),
			TotalFaculty:   intPtr(120),
			Facilities:     "Library, Gym",
			Courses:        "Computer Engineering, Information Technology",
		},
	}
}

// ==========================
// Resolve Tests
// ==========================

func TestService_Resolve(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	got, err := svc.Resolve("vjti")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.Resolve("zzznonexistent")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestService_ResolveCatalogNotLoaded(t *testing.T) {
	svc := createTestService(t, nil)

	_, err := svc.Resolve("vjti")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogNotLoaded, errors.CodeOf(err))
}

func TestService_ResolvePairReportsFailingQuery(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	_, _, err := svc.ResolvePair("vjti", "zzznonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zzznonexistent")
}

// ==========================
// Compare Tests
// ==========================

func TestService_Compare(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	resp, err := svc.Compare("vjti", "spit", nil)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ComparisonID)
	assert.False(t, resp.PersonalizationApplied)
	assert.Nil(t, resp.UserCategory)

	require.Len(t, resp.Comparison, 2)
	first, second := resp.Comparison[0], resp.Comparison[1]

	assert.Equal(t, "Veermata Jijabai Technological Institute", first.CollegeName)
	assert.Equal(t, 1, first.Ranking)
	assert.Equal(t, "Sardar Patel Institute Of Technology", second.CollegeName)
	assert.Equal(t, 2, second.Ranking)

	assert.Greater(t, first.Score, second.Score)
	assert.Contains(t, resp.Recommendation, "Veermata Jijabai Technological Institute appears to be the better choice")
	assert.Contains(t, resp.Recommendation, "₹590,000 cheaper per year")

	// Without personalization both insight bundles stay absent.
	assert.Nil(t, first.QuotaInsights)
	assert.Nil(t, second.QuotaInsights)

	assert.Equal(t, 2, resp.Metadata.TotalColleges)
	assert.Equal(t, []string{"fees", "students", "faculty", "location", "facilities"}, resp.Metadata.FeaturesCompared)
	assert.False(t, resp.Metadata.Personalized)
}

func TestService_ComparePersonalized(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())
	p := &models.Personalization{
		Category:       "SC",
		Domicile:       "Maharashtra",
		MaxBudget:      floatPtr(200000),
		HostelRequired: true,
	}

	resp, err := svc.Compare("vjti", "spit", p)
	require.NoError(t, err)

	assert.True(t, resp.PersonalizationApplied)
	assert.True(t, resp.Metadata.Personalized)
	require.NotNil(t, resp.UserCategory)
	assert.Equal(t, "SC", *resp.UserCategory)

	first := resp.Comparison[0]
	require.NotNil(t, first.QuotaInsights)
	assert.Contains(t, first.QuotaInsights.ApplicableQuotas, "SC Reservation (15%/7.5% seats)")
	assert.Contains(t, first.Strengths, "Well within your budget (₹0.9L)")
}

func TestService_CompareDataBlock(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	resp, err := svc.Compare("vjti", "spit", nil)
	require.NoError(t, err)

	data := resp.Comparison[0].Data
	assert.Equal(t, "Mumbai", data.City)
	assert.Equal(t, DefaultState, data.State)
	assert.Equal(t, "Public/Government", data.Type)
	require.NotNil(t, data.StudentFacultyRatio)
	assert.InDelta(t, 17.5, *data.StudentFacultyRatio, 1e-9)
	assert.True(t, strings.HasPrefix(data.GoogleMaps, "https://www.google.com/maps/search/"))
}

func TestService_CompareUnknownCollege(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	resp, err := svc.Compare("vjti", "zzznonexistent", nil)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsNotFound(err))
}

func TestService_CompareInvalidPersonalization(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	resp, err := svc.Compare("vjti", "spit", &models.Personalization{MaxBudget: floatPtr(-5)})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, errors.ErrCodeInvalidPersonalization, errors.CodeOf(err))
}

// ==========================
// Suggest / List Tests
// ==========================

func TestService_Suggest(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	suggestions, err := svc.Suggest("institute", 10)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)

	suggestions, err = svc.Suggest("x", 10)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestService_List(t *testing.T) {
	svc := createTestService(t, createComparisonCatalog())

	tests := []struct {
		name          string
		limit         int
		offset        int
		expectedNames []string
	}{
		{"full page", 50, 0, []string{"Veermata Jijabai Technological Institute", "Sardar Patel Institute Of Technology"}},
		{"limited", 1, 0, []string{"Veermata Jijabai Technological Institute"}},
		{"offset", 1, 1, []string{"Sardar Patel Institute Of Technology"}},
		{"offset past end", 10, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total, err := svc.List(tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, 2, total)
			require.Len(t, page, len(tt.expectedNames))
			for i, name := range tt.expectedNames {
				assert.Equal(t, name, page[i].Name)
			}
		})
	}
}
