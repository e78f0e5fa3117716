package propfolio

import (
	"fmt"
	"math"
)

// DaysPerYear is the number of bookable nights in a year.
const DaysPerYear = 365

// ShortLetParameters describes a property let night by night through a
// booking platform.
//
// The embedded long-let parameters carry the mortgage and running cost
// assumptions shared by both strategies. Their MonthlyRent only feeds the
// long-let baseline the short-let is compared against.
type ShortLetParameters struct {
	LongLetParameters

	NightlyRate float64 `json:"nightlyRate"`
	Occupancy   Percent `json:"occupancy"`
	// CleaningCostPerStay is charged for every occupied night.
	CleaningCostPerStay float64 `json:"cleaningCostPerStay"`
	PlatformFee         Percent `json:"platformFee"` // of the revenue
}

// ShortLetResult is the yearly projection of a short-let, together with the
// long-let baseline computed from the same assumptions.
type ShortLetResult struct {
	MonthlyMortgage    float64     `json:"monthlyMortgage"`
	AnnualNights       int         `json:"annualNights"`
	AnnualRevenue      float64     `json:"annualRevenue"`
	AnnualCleaning     float64     `json:"annualCleaning"`
	AnnualPlatformFees float64     `json:"annualPlatformFees"`
	Costs              AnnualCosts `json:"costs"`
	AnnualCosts        float64     `json:"annualCosts"`
	NetIncome          float64     `json:"netIncome"`
	ROI                NullPercent `json:"roi"`
	GrossYield         Percent     `json:"grossYield"`
	NetYield           Percent     `json:"netYield"`
	// PotentialUplift is undefined when the baseline net income is zero.
	PotentialUplift NullPercent   `json:"potentialUplift"`
	Baseline        LongLetResult `json:"baseline"`
}

// ProjectShortLet projects the yearly revenue, costs and returns of p, and
// its uplift over letting the same property long term.
func ProjectShortLet(p ShortLetParameters) (ShortLetResult, error) {
	if err := p.Validate(); err != nil {
		return ShortLetResult{}, fmt.Errorf("short-let: %w", err)
	}
	baseline := projectLongLet(p.LongLetParameters)

	nights := AnnualNights(p.Occupancy)
	revenue := p.NightlyRate * float64(nights)
	cleaning := p.CleaningCostPerStay * float64(nights)
	platform := p.PlatformFee.Of(revenue)
	// mortgage, management, maintenance and insurance are the same for both
	// strategies.
	net := revenue - cleaning - platform - baseline.AnnualCosts

	return ShortLetResult{
		MonthlyMortgage:    baseline.MonthlyMortgage,
		AnnualNights:       nights,
		AnnualRevenue:      revenue,
		AnnualCleaning:     cleaning,
		AnnualPlatformFees: platform,
		Costs:              baseline.Costs,
		AnnualCosts:        baseline.AnnualCosts,
		NetIncome:          net,
		ROI:                nullable(ROI(net, p.Deposit)),
		GrossYield:         Yield(revenue, p.PropertyPrice),
		NetYield:           Yield(net, p.PropertyPrice),
		PotentialUplift:    nullable(Uplift(net, baseline.NetIncome)),
		Baseline:           baseline,
	}, nil
}

// AnnualNights returns the number of nights booked in a year at the given
// occupancy. Partial nights are truncated.
func AnnualNights(occupancy Percent) int {
	return int(math.Floor(DaysPerYear * float64(occupancy) / 100))
}
