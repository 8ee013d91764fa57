package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-comparator/internal/common/database"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestCache(t *testing.T) (*ComparisonCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Close() })
	return NewComparisonCache(client, 10*time.Minute, logger.NewTestLogger(t)), mr
}

func sampleResponse() *models.ComparisonResponse {
	return &models.ComparisonResponse{
		Success:      true,
		ComparisonID: "fixed-id",
		Comparison: []models.CollegeResult{
			{CollegeName: "College A", Score: 8.2, Ranking: 1, Strengths: []string{"Affordable fees"}, Weaknesses: []string{}},
			{CollegeName: "College B", Score: 5.0, Ranking: 2, Strengths: []string{}, Weaknesses: []string{"High fees"}},
		},
		Recommendation: "College A appears to be the better choice overall with a score of 8.2/10",
		Metadata: models.ComparisonMetadata{
			TotalColleges:    2,
			FeaturesCompared: []string{"fees", "students", "faculty", "location", "facilities"},
		},
	}
}

// ==========================
// Key Tests
// ==========================

func TestKey(t *testing.T) {
	assert.Equal(t,
		"comparison:college a|college b:none",
		Key("College A", "College B", nil),
	)

	p := &models.Personalization{Category: "SC"}
	withP := Key("College A", "College B", p)
	assert.NotEqual(t, Key("College A", "College B", nil), withP)
	// Same preferences always fingerprint the same way.
	assert.Equal(t, withP, Key("College A", "College B", &models.Personalization{Category: "SC"}))
	// Different preferences get separate entries.
	assert.NotEqual(t, withP, Key("College A", "College B", &models.Personalization{Category: "OBC"}))
}

// ==========================
// Get / Set Tests
// ==========================

func TestComparisonCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	key := Key("College A", "College B", nil)

	assert.Nil(t, c.Get(ctx, key))

	want := sampleResponse()
	c.Set(ctx, key, want)

	got := c.Get(ctx, key)
	require.NotNil(t, got)
	assert.Equal(t, want.ComparisonID, got.ComparisonID)
	assert.Equal(t, want.Recommendation, got.Recommendation)
	require.Len(t, got.Comparison, 2)
	assert.Equal(t, want.Comparison[0].Score, got.Comparison[0].Score)
	assert.Equal(t, want.Comparison[1].Weaknesses, got.Comparison[1].Weaknesses)
}

func TestComparisonCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := Key("College A", "College B", nil)

	c.Set(ctx, key, sampleResponse())
	require.NotNil(t, c.Get(ctx, key))

	mr.FastForward(11 * time.Minute)
	assert.Nil(t, c.Get(ctx, key))
}

func TestComparisonCache_CorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)
	key := Key("College A", "College B", nil)
	require.NoError(t, mr.Set(key, "not json"))

	assert.Nil(t, c.Get(context.Background(), key))
}

func TestComparisonCache_DeadRedisDegradesToMiss(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	assert.Nil(t, c.Get(context.Background(), Key("A", "B", nil)))
	// Set swallows the failure too.
	c.Set(context.Background(), Key("A", "B", nil), sampleResponse())
}

// ==========================
// Invalidate Tests
// ==========================

func TestComparisonCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, Key("A", "B", nil), sampleResponse())
	c.Set(ctx, Key("C", "D", nil), sampleResponse())
	require.NoError(t, mr.Set("unrelated:key", "keep me"))

	c.Invalidate(ctx)

	assert.Nil(t, c.Get(ctx, Key("A", "B", nil)))
	assert.Nil(t, c.Get(ctx, Key("C", "D", nil)))
	assert.True(t, mr.Exists("unrelated:key"))
}
