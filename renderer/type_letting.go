package renderer

import "github.com/etnz/propfolio"

// Costs represents the yearly running costs of a let property.
type Costs struct {
	ManagementFee   propfolio.Percent `json:"managementFee"`
	MaintenanceRate propfolio.Percent `json:"maintenanceRate"`
	Management      propfolio.Money   `json:"management"`
	Maintenance     propfolio.Money   `json:"maintenance"`
	Insurance       propfolio.Money   `json:"insurance"`
	Mortgage        propfolio.Money   `json:"mortgage"`
	Total           propfolio.Money   `json:"total"`
}

// Returns represents what a let property yields over a year.
type Returns struct {
	NetIncome  propfolio.Money       `json:"netIncome"`
	ROI        propfolio.NullPercent `json:"roi"`
	GrossYield propfolio.Percent     `json:"grossYield"`
	NetYield   propfolio.Percent     `json:"netYield"`
}

// LongLet is a struct to represent a long-let projection in json.
type LongLet struct {
	Mortgage     Mortgage        `json:"mortgage"`
	MonthlyRent  propfolio.Money `json:"monthlyRent"`
	VoidMonths   int             `json:"voidMonths"`
	AnnualIncome propfolio.Money `json:"annualIncome"`
	Costs        Costs           `json:"costs"`
	Returns      Returns         `json:"returns"`
}

// ShortLet is a struct to represent a short-let projection and its long-let
// baseline in json.
type ShortLet struct {
	Mortgage      Mortgage              `json:"mortgage"`
	NightlyRate   propfolio.Money       `json:"nightlyRate"`
	Occupancy     propfolio.Percent     `json:"occupancy"`
	Nights        int                   `json:"nights"`
	AnnualRevenue propfolio.Money       `json:"annualRevenue"`
	Cleaning      propfolio.Money       `json:"cleaning"`
	PlatformFees  propfolio.Money       `json:"platformFees"`
	Costs         Costs                 `json:"costs"`
	Returns       Returns               `json:"returns"`
	Uplift        propfolio.NullPercent `json:"uplift"`
	Baseline      LongLet               `json:"baseline"`
}

// NewLongLet creates a new LongLet struct from a long-let projection.
func NewLongLet(p propfolio.LongLetParameters, r propfolio.LongLetResult, cur string) *LongLet {
	return &LongLet{
		Mortgage:     *NewMortgage(p.MortgageParameters, p.Result(r.MonthlyMortgage), cur),
		MonthlyRent:  propfolio.M(p.MonthlyRent, cur),
		VoidMonths:   p.VoidMonths,
		AnnualIncome: propfolio.M(r.AnnualIncome, cur),
		Costs:        newCosts(p, r.Costs, cur),
		Returns: Returns{
			NetIncome:  propfolio.M(r.NetIncome, cur),
			ROI:        r.ROI,
			GrossYield: r.GrossYield,
			NetYield:   r.NetYield,
		},
	}
}

// NewShortLet creates a new ShortLet struct from a short-let projection.
func NewShortLet(p propfolio.ShortLetParameters, r propfolio.ShortLetResult, cur string) *ShortLet {
	return &ShortLet{
		Mortgage:      *NewMortgage(p.MortgageParameters, p.Result(r.MonthlyMortgage), cur),
		NightlyRate:   propfolio.M(p.NightlyRate, cur),
		Occupancy:     p.Occupancy,
		Nights:        r.AnnualNights,
		AnnualRevenue: propfolio.M(r.AnnualRevenue, cur),
		Cleaning:      propfolio.M(r.AnnualCleaning, cur),
		PlatformFees:  propfolio.M(r.AnnualPlatformFees, cur),
		Costs:         newCosts(p.LongLetParameters, r.Costs, cur),
		Returns: Returns{
			NetIncome:  propfolio.M(r.NetIncome, cur),
			ROI:        r.ROI,
			GrossYield: r.GrossYield,
			NetYield:   r.NetYield,
		},
		Uplift:   r.PotentialUplift,
		Baseline: *NewLongLet(p.LongLetParameters, r.Baseline, cur),
	}
}

func newCosts(p propfolio.LongLetParameters, c propfolio.AnnualCosts, cur string) Costs {
	return Costs{
		ManagementFee:   p.ManagementFee,
		MaintenanceRate: p.Maintenance,
		Management:      propfolio.M(c.Management, cur),
		Maintenance:     propfolio.M(c.Maintenance, cur),
		Insurance:       propfolio.M(c.Insurance, cur),
		Mortgage:        propfolio.M(c.Mortgage, cur),
		Total:           propfolio.M(c.Total(), cur),
	}
}
