package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-comparator/internal/models"
)

// ==========================
// Recommend Tests
// ==========================

func TestRecommend_PublicBeatsExpensivePrivate(t *testing.T) {
	viewA := createTestView(func(c *models.College) {
		c.Name = "College A"
		c.OwnershipType = "Public/Government"
		c.AverageFees = floatPtr(250000)
		c.Rating = floatPtr(4.2)
		c.Facilities = "Boys Hostel, Library"
	})
	viewB := createTestView(func(c *models.College) {
		c.Name = "College B"
		c.OwnershipType = "Private"
		c.AverageFees = floatPtr(900000)
		c.Rating = floatPtr(3.0)
		c.Facilities = "Library"
	})

	require.Greater(t, Score(viewA, nil), Score(viewB, nil))

	got := Recommend(viewA, viewB, nil)
	assert.Contains(t, got, "College A appears to be the better choice overall with a score of")
	assert.Contains(t, got, "College A is ₹650,000 cheaper per year.")
}

func TestRecommend_NamesHigherScoringSide(t *testing.T) {
	low := createTestView(func(c *models.College) {
		c.Name = "Low"
		c.Rating = floatPtr(2.0)
	})
	high := createTestView(func(c *models.College) {
		c.Name = "High"
		c.Rating = floatPtr(4.5)
	})

	got := Recommend(low, high, nil)
	assert.Contains(t, got, "High appears to be the better choice overall with a score of 6.5/10")
}

func TestRecommend_Tie(t *testing.T) {
	viewA := createTestView(func(c *models.College) { c.Name = "Alpha" })
	viewB := createTestView(func(c *models.College) { c.Name = "Beta" })

	got := Recommend(viewA, viewB, nil)
	assert.Equal(t, tieRecommendation, got)
}

func TestRecommend_TieStillReportsFeeDelta(t *testing.T) {
	viewA := createTestView(func(c *models.College) {
		c.Name = "Alpha"
		c.AverageFees = floatPtr(700000)
	})
	viewB := createTestView(func(c *models.College) {
		c.Name = "Beta"
		c.AverageFees = floatPtr(650000)
	})

	// Both land in the neutral fee band, so scores tie.
	require.Equal(t, Score(viewA, nil), Score(viewB, nil))

	got := Recommend(viewA, viewB, nil)
	assert.Contains(t, got, tieRecommendation)
	assert.Contains(t, got, "Beta is ₹50,000 cheaper per year.")
}

func TestRecommend_OmitsFeeDeltaWhenUnknown(t *testing.T) {
	viewA := createTestView(func(c *models.College) {
		c.Name = "Alpha"
		c.AverageFees = floatPtr(400000)
	})
	viewB := createTestView(func(c *models.College) { c.Name = "Beta" })

	got := Recommend(viewA, viewB, nil)
	assert.NotContains(t, got, "cheaper per year")
}

func TestRecommend_Deterministic(t *testing.T) {
	viewA := createTestView(func(c *models.College) {
		c.Name = "Alpha"
		c.AverageFees = floatPtr(300000)
		c.Rating = floatPtr(4.0)
	})
	viewB := createTestView(func(c *models.College) {
		c.Name = "Beta"
		c.AverageFees = floatPtr(500000)
		c.Rating = floatPtr(3.5)
	})
	p := &models.Personalization{MaxBudget: floatPtr(450000), HostelRequired: true}

	first := Recommend(viewA, viewB, p)
	second := Recommend(viewA, viewB, p)
	assert.Equal(t, first, second)
}

// ==========================
// Formatting Tests
// ==========================

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{650000, "650,000"},
		{1234567, "1,234,567"},
		{999999.6, "1,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, groupThousands(tt.amount))
	}
}
