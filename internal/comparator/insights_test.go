package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-comparator/internal/models"
)

// ==========================
// Analyze Tests
// ==========================

func TestAnalyze_WithoutPersonalization(t *testing.T) {
	tests := []struct {
		name               string
		mutate             func(c *models.College)
		expectedStrengths  []string
		expectedWeaknesses []string
	}{
		{
			name: "affordable government college",
			mutate: func(c *models.College) {
				c.AverageFees = floatPtr(150000)
				c.OwnershipType = "Public/Government"
			},
			expectedStrengths: []string{"Affordable fees", "Government college"},
		},
		{
			name: "expensive small college",
			mutate: func(c *models.College) {
				c.AverageFees = floatPtr(900000)
				c.TotalStudents = intPtr(800)
			},
			expectedWeaknesses: []string{"High fees", "Small student body"},
		},
		{
			name: "large community with good ratio",
			mutate: func(c *models.College) {
				c.TotalStudents = intPtr(4000)
				c.TotalFaculty = intPtr(250)
			},
			expectedStrengths: []string{"Large student community", "Good student-faculty ratio"},
		},
		{
			name: "overloaded faculty",
			mutate: func(c *models.College) {
				c.TotalStudents = intPtr(4000)
				c.TotalFaculty = intPtr(100)
			},
			expectedStrengths:  []string{"Large student community"},
			expectedWeaknesses: []string{"High student-faculty ratio"},
		},
		{
			name: "hostel and sports",
			mutate: func(c *models.College) {
				c.Facilities = "Boys Hostel, Gym, Sports Complex"
			},
			expectedStrengths: []string{"Hostel available", "Good sports facilities"},
		},
		{
			name:   "no data at all",
			mutate: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strengths, weaknesses := Analyze(createTestView(tt.mutate), nil)
			assert.Equal(t, tt.expectedStrengths, strengths)
			assert.Equal(t, tt.expectedWeaknesses, weaknesses)
		})
	}
}

func TestAnalyze_BudgetPhrases(t *testing.T) {
	p := &models.Personalization{MaxBudget: floatPtr(500000)}

	tests := []struct {
		name     string
		fees     float64
		strength string
		weakness string
	}{
		{"well within", 280000, "Well within your budget (₹2.8L)", ""},
		{"within", 450000, "Within your budget (₹4.5L)", ""},
		{"above", 750000, "", "Above your budget (₹7.5L)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := createTestView(func(c *models.College) {
				c.AverageFees = floatPtr(tt.fees)
			})
			strengths, weaknesses := Analyze(view, p)
			if tt.strength != "" {
				assert.Contains(t, strengths, tt.strength)
			}
			if tt.weakness != "" {
				assert.Contains(t, weaknesses, tt.weakness)
			}
		})
	}
}

func TestAnalyze_SlightlyOverBudgetIsSilent(t *testing.T) {
	// Between budget and 1.2x budget neither list gets a fee phrase.
	view := createTestView(func(c *models.College) {
		c.AverageFees = floatPtr(550000)
	})
	strengths, weaknesses := Analyze(view, &models.Personalization{MaxBudget: floatPtr(500000)})
	assert.Empty(t, strengths)
	assert.Empty(t, weaknesses)
}

func TestAnalyze_HostelRequired(t *testing.T) {
	required := &models.Personalization{HostelRequired: true}

	withHostel := createTestView(func(c *models.College) {
		c.Facilities = "Boys Hostel, Library"
	})
	strengths, _ := Analyze(withHostel, required)
	assert.Contains(t, strengths, "Hostel available (as required)")

	withoutHostel := createTestView(func(c *models.College) {
		c.Facilities = "Library"
	})
	_, weaknesses := Analyze(withoutHostel, required)
	assert.Contains(t, weaknesses, "No hostel facility")
}

func TestAnalyze_LocationStrength(t *testing.T) {
	view := createTestView(func(c *models.College) {
		c.City = "Navi Mumbai"
	})
	strengths, _ := Analyze(view, &models.Personalization{LocationPreference: []string{"mumbai"}})
	assert.Contains(t, strengths, "In your preferred location (Navi Mumbai)")
}

func TestAnalyze_Caps(t *testing.T) {
	// A record that trips every strength predicate stays capped at four.
	view := createTestView(func(c *models.College) {
		c.AverageFees = floatPtr(150000)
		c.OwnershipType = "Public/Government"
		c.TotalStudents = intPtr(4000)
		c.TotalFaculty = intPtr(250)
		c.Facilities = "Boys Hostel, Gym, Sports Complex"
	})

	strengths, weaknesses := Analyze(view, &models.Personalization{LocationPreference: []string{"Mumbai"}})
	assert.Len(t, strengths, 4)
	assert.Empty(t, weaknesses)
	// Fee checks run first, so the fee phrase survives truncation.
	assert.Equal(t, "Affordable fees", strengths[0])
}

// ==========================
// Eligibility Tests
// ==========================

func TestEligibility_NoPersonalization(t *testing.T) {
	assert.Nil(t, Eligibility(createTestView(nil), nil))
}

func TestEligibility_SCAtGovernmentCollege(t *testing.T) {
	view := createTestView(func(c *models.College) {
		c.OwnershipType = "Public/Government"
		c.AverageFees = floatPtr(250000)
	})
	p := &models.Personalization{Category: "SC", Domicile: "Maharashtra"}

	got := Eligibility(view, p)
	require.NotNil(t, got)
	assert.Equal(t, "SC", got.Category)
	assert.Contains(t, got.ApplicableQuotas, "SC Reservation (15%/7.5% seats)")
	assert.Contains(t, got.FeeBenefits, "Fee concession/waiver available for SC/ST students")
	assert.Contains(t, got.AdmissionNotes, "Lower cutoff marks applicable")
	assert.Contains(t, got.AdmissionNotes, "Post-matric scholarship available")
	assert.Contains(t, got.AdmissionNotes, "Home state quota applicable (85% seats)")
	assert.Contains(t, got.AdmissionNotes, "Education loan facilities available")
}

func TestEligibility_GeneralCategoryHasNoQuotas(t *testing.T) {
	view := createTestView(func(c *models.College) {
		c.OwnershipType = "Public/Government"
	})
	got := Eligibility(view, &models.Personalization{Category: "General", Domicile: "Maharashtra"})
	require.NotNil(t, got)
	assert.Empty(t, got.ApplicableQuotas)
	assert.Empty(t, got.FeeBenefits)
}

func TestEligibility_OBCFeeConcession(t *testing.T) {
	cheapGov := createTestView(func(c *models.College) {
		c.OwnershipType = "Public/Government"
		c.AverageFees = floatPtr(400000)
	})
	expensiveGov := createTestView(func(c *models.College) {
		c.OwnershipType = "Public/Government"
		c.AverageFees = floatPtr(900000)
	})
	p := &models.Personalization{Category: "OBC", Domicile: "Maharashtra"}

	got := Eligibility(cheapGov, p)
	assert.Contains(t, got.ApplicableQuotas, "OBC Reservation (27% seats)")
	assert.Contains(t, got.FeeBenefits, "May qualify for fee concession")
	assert.Contains(t, got.AdmissionNotes, "Creamy layer certificate required")

	got = Eligibility(expensiveGov, p)
	assert.Empty(t, got.FeeBenefits)
}

func TestEligibility_StateCategories(t *testing.T) {
	view := createTestView(func(c *models.College) {
		c.OwnershipType = "Public/Government"
	})

	for _, category := range []string{"NT-A", "NT-B", "NT-C", "NT-D", "VJ-A", "SBC", "SEBC"} {
		got := Eligibility(view, &models.Personalization{Category: category, Domicile: "Maharashtra"})
		require.NotNil(t, got, category)
		assert.Contains(t, got.ApplicableQuotas, category+" Reservation (Maharashtra State)")
		assert.Contains(t, got.FeeBenefits, "State-level fee concessions may apply")
		assert.Contains(t, got.AdmissionNotes, "Domicile certificate required")
	}
}

func TestEligibility_OutOfStateDomicile(t *testing.T) {
	got := Eligibility(createTestView(nil), &models.Personalization{Category: "EWS", Domicile: "Karnataka"})
	require.NotNil(t, got)
	assert.Contains(t, got.ApplicableQuotas, "EWS Reservation (10% seats)")
	assert.Contains(t, got.AdmissionNotes, "All India quota applicable (15% seats)")
	assert.Contains(t, got.AdmissionNotes, "Higher cutoff may be required")
	assert.NotContains(t, got.AdmissionNotes, "Home state quota applicable (85% seats)")
}

func TestEligibility_FemaleNotes(t *testing.T) {
	view := createTestView(func(c *models.College) {
		c.OwnershipType = "Public/Government"
		c.Facilities = "Girls Hostel, Library"
	})
	got := Eligibility(view, &models.Personalization{Gender: "Female", Domicile: "Maharashtra"})
	require.NotNil(t, got)
	assert.Contains(t, got.AdmissionNotes, "Girls hostel available")
	assert.Contains(t, got.FeeBenefits, "May qualify for girls' scholarships")
}
