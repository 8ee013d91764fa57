package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toInput(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var input map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &input))
	return input
}

func TestCompareRequestSchema(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{
			name:  "minimal valid request",
			body:  `{"colleges":["vjti","coep"]}`,
			valid: true,
		},
		{
			name: "full personalization",
			body: `{"colleges":["vjti","coep"],"personalization":{
				"category":"SC","gender":"Female","domicile":"Maharashtra",
				"maxBudget":500000,"hostelRequired":true,
				"preferredCollegeType":["Government"],"locationPreference":["Mumbai"],
				"preferSmallCampus":false,"prioritizeGovernmentCollege":true}}`,
			valid: true,
		},
		{
			name:  "missing colleges",
			body:  `{}`,
			valid: false,
		},
		{
			name:  "too few colleges",
			body:  `{"colleges":["vjti"]}`,
			valid: false,
		},
		{
			name:  "empty college name",
			body:  `{"colleges":["vjti",""]}`,
			valid: false,
		},
		{
			name:  "colleges not an array",
			body:  `{"colleges":"vjti"}`,
			valid: false,
		},
		{
			name:  "negative budget",
			body:  `{"colleges":["vjti","coep"],"personalization":{"maxBudget":-1}}`,
			valid: false,
		},
		{
			name:  "unexpected top level field",
			body:  `{"colleges":["vjti","coep"],"bogus":1}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateInput(toInput(t, tt.body), CompareRequestSchema)
			assert.Equal(t, tt.valid, result.Valid, "errors: %v", result.GetErrorMessages())
		})
	}
}

func TestSearchRequestSchema(t *testing.T) {
	assert.True(t, ValidateInput(toInput(t, `{"query":"vjti"}`), SearchRequestSchema).Valid)
	assert.False(t, ValidateInput(toInput(t, `{}`), SearchRequestSchema).Valid)
	assert.False(t, ValidateInput(toInput(t, `{"query":""}`), SearchRequestSchema).Valid)
	assert.False(t, ValidateInput(toInput(t, `{"query":42}`), SearchRequestSchema).Valid)
}
