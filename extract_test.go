package propfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Default(t *testing.T) {
	in := `[
		{"price": 200000, "predictedValue": 220000, "estimatedRevenue": 1000, "id": "a"},
		{"price": 100000, "predictedValue": 130000, "estimatedRevenue": 1000, "id": "b"}
	]`
	got, err := DefaultExtractor.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []PropertySummary{
		{Price: 200000, PredictedValue: 220000, EstimatedRevenue: 1000},
		{Price: 100000, PredictedValue: 130000, EstimatedRevenue: 1000},
	}, got)
}

func TestExtractor_Paths(t *testing.T) {
	in := `{
		"listings": [
			{"id": "a", "pricing": {"asking": "£250,000", "predicted": 265000}, "rent": {"monthly": 1400}},
			{"id": "b", "pricing": {"asking": 180000, "predicted": 170000}, "rent": {"monthly": "950"}}
		]
	}`
	e := Extractor{
		Items:            "$.listings[*]",
		Price:            "$.pricing.asking",
		PredictedValue:   "$.pricing.predicted",
		EstimatedRevenue: "$.rent.monthly",
	}
	got, err := e.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []PropertySummary{
		{Price: 250000, PredictedValue: 265000, EstimatedRevenue: 1400},
		{Price: 180000, PredictedValue: 170000, EstimatedRevenue: 950},
	}, got)
}

func TestExtractor_OptionalPath(t *testing.T) {
	e := Extractor{Items: "$.items[*]", Price: "$.p"}
	got, err := e.Decode(strings.NewReader(`{"items":[{"p":1000}]}`))
	require.NoError(t, err)
	assert.Equal(t, []PropertySummary{{Price: 1000}}, got)
}

func TestExtractor_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"missing field", `[{"predictedValue": 1, "estimatedRevenue": 1}]`},
		{"not a number", `[{"price": true, "predictedValue": 1, "estimatedRevenue": 1}]`},
		{"unreadable string", `[{"price": "call us", "predictedValue": 1, "estimatedRevenue": 1}]`},
		{"not json", `[{`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DefaultExtractor.Decode(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestExtractor_NumberStrings(t *testing.T) {
	testCases := []struct {
		in   string
		want float64
	}{
		{in: "2.5e5", want: 250000},
		{in: " 1E6 ", want: 1000000},
		{in: "-1200.50", want: -1200.5},
		{in: "£250,000", want: 250000},
		{in: "£2.5e5", want: 250000},
		{in: "Price: £250,000", want: 250000},
		{in: "€ 1.250", want: 1.25},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			in := `[{"price": "` + tc.in + `"}]`
			got, err := Extractor{Items: "$[*]", Price: "$.price"}.Decode(strings.NewReader(in))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0].Price)
		})
	}
}

func TestExtractor_NotFiniteStrings(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-infinity", "1e999"} {
		t.Run(in, func(t *testing.T) {
			_, err := Extractor{Items: "$[*]", Price: "$.price"}.Decode(strings.NewReader(`[{"price": "` + in + `"}]`))
			assert.Error(t, err)
		})
	}
}
