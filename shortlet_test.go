package propfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineShortLet() ShortLetParameters {
	return ShortLetParameters{
		LongLetParameters:   baselineLongLet(),
		NightlyRate:         120,
		Occupancy:           70,
		CleaningCostPerStay: 20,
		PlatformFee:         15,
	}
}

func TestProjectShortLet(t *testing.T) {
	got, err := ProjectShortLet(baselineShortLet())
	require.NoError(t, err)

	assert.Equal(t, 255, got.AnnualNights) // floor(365 * 0.7) = floor(255.5)
	assert.Equal(t, 30600.0, got.AnnualRevenue)
	assert.Equal(t, 5100.0, got.AnnualCleaning) // charged per night
	assert.InDelta(t, 4590.0, got.AnnualPlatformFees, 1e-9)

	// running costs are the long-let ones
	assert.Equal(t, got.Baseline.AnnualCosts, got.AnnualCosts)
	assert.Equal(t, got.Baseline.Costs, got.Costs)
	assert.Equal(t, got.Baseline.MonthlyMortgage, got.MonthlyMortgage)

	assert.InDelta(t, 30600-5100-4590-got.AnnualCosts, got.NetIncome, 1e-9)
	assert.InDelta(t, 6365.87, got.NetIncome, cent)
	require.True(t, got.ROI.Valid)
	assert.InDelta(t, 15.91, float64(got.ROI.Percent), cent)
	assert.InDelta(t, 15.3, float64(got.GrossYield), 1e-9)
	assert.InDelta(t, 3.18, float64(got.NetYield), cent)

	require.True(t, got.PotentialUplift.Valid)
	assert.InDelta(t, 228.76, float64(got.PotentialUplift.Percent), cent)
}

func TestProjectShortLet_Nights(t *testing.T) {
	testCases := []struct {
		occupancy Percent
		want      int
	}{
		{0, 0},
		{20, 73},
		{50, 182}, // 182.5 is truncated
		{60, 219},
		{99.9, 364},
		{100, 365},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, AnnualNights(tc.occupancy), "occupancy %v", tc.occupancy)
	}
}

func TestProjectShortLet_UpliftSign(t *testing.T) {
	testCases := []struct {
		name        string
		nightlyRate float64
		monthlyRent float64
	}{
		{"loss making baseline", 120, 1200},
		{"profitable baseline", 400, 3000},
		{"barely better", 80, 1500},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := baselineShortLet()
			p.NightlyRate = tc.nightlyRate
			p.MonthlyRent = tc.monthlyRent
			got, err := ProjectShortLet(p)
			require.NoError(t, err)

			shortRevenue := got.AnnualRevenue - got.AnnualCleaning - got.AnnualPlatformFees
			require.Greater(t, shortRevenue, got.Baseline.AnnualIncome, "fixture must favour short-let")
			require.True(t, got.PotentialUplift.Valid)
			assert.Greater(t, float64(got.PotentialUplift.Percent), 0.0)
		})
	}
}

func TestProjectShortLet_ZeroBaseline(t *testing.T) {
	// no mortgage, no costs and no rent: the baseline nets exactly zero.
	p := ShortLetParameters{
		LongLetParameters: LongLetParameters{
			MortgageParameters: MortgageParameters{PropertyPrice: 100000, Deposit: 100000, InterestRate: 5, Term: 10},
		},
		NightlyRate: 100,
		Occupancy:   50,
	}
	got, err := ProjectShortLet(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Baseline.NetIncome)
	assert.False(t, got.PotentialUplift.Valid)
	assert.Equal(t, 18200.0, got.NetIncome)
}

func TestProjectShortLet_InvalidInput(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*ShortLetParameters)
	}{
		{"occupancy above 100", func(p *ShortLetParameters) { p.Occupancy = 120 }},
		{"negative occupancy", func(p *ShortLetParameters) { p.Occupancy = -5 }},
		{"platform fee above 100", func(p *ShortLetParameters) { p.PlatformFee = 150 }},
		{"negative nightly rate", func(p *ShortLetParameters) { p.NightlyRate = -1 }},
		{"negative cleaning", func(p *ShortLetParameters) { p.CleaningCostPerStay = -1 }},
		{"shared assumption", func(p *ShortLetParameters) { p.VoidMonths = 24 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := baselineShortLet()
			tc.modify(&p)
			_, err := ProjectShortLet(p)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
