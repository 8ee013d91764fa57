package validation

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

// personalizationProperties describes the preference bundle accepted by the
// compare endpoint. Category is deliberately open-ended: unknown category
// strings are valid and simply carry no quota semantics.
var personalizationProperties = map[string]Property{
	"category":                    {Type: "string", MaxLength: intPtr(32)},
	"gender":                      {Type: "string", MaxLength: intPtr(32)},
	"domicile":                    {Type: "string", MaxLength: intPtr(64)},
	"maxBudget":                   {Type: "number", Minimum: floatPtr(0)},
	"hostelRequired":              {Type: "boolean"},
	"preferredCollegeType":        {Type: "array", Items: &Property{Type: "string"}},
	"locationPreference":          {Type: "array", Items: &Property{Type: "string"}},
	"preferSmallCampus":           {Type: "boolean"},
	"prioritizeGovernmentCollege": {Type: "boolean"},
}

// CompareRequestSchema validates POST /api/colleges/compare bodies.
var CompareRequestSchema = JSONSchema{
	Type: "object",
	Properties: map[string]Property{
		"colleges": {
			Type:     "array",
			MinItems: intPtr(2),
			Items:    &Property{Type: "string", MinLength: intPtr(1)},
		},
		"personalization": {
			Type:       "object",
			Properties: personalizationProperties,
		},
	},
	Required: []string{"colleges"},
}

// SearchRequestSchema validates POST /api/colleges/search bodies.
var SearchRequestSchema = JSONSchema{
	Type: "object",
	Properties: map[string]Property{
		"query": {Type: "string", MinLength: intPtr(1), MaxLength: intPtr(256)},
	},
	Required: []string{"query"},
}
