package propfolio

import (
	"fmt"
	"math"
)

// Long-let assumptions used when the caller has no better figure.
const (
	DefaultManagementFee    Percent = 10
	DefaultMaintenance      Percent = 1
	DefaultMonthlyInsurance         = 30.0
	DefaultVoidMonths               = 4
)

// LongLetParameters describes a property held with a mortgage and let to a
// single tenant.
type LongLetParameters struct {
	MortgageParameters

	MonthlyRent      float64 `json:"monthlyRent"`
	ManagementFee    Percent `json:"managementFee"` // of the collected rent
	Maintenance      Percent `json:"maintenance"`   // of the property price, per year
	MonthlyInsurance float64 `json:"monthlyInsurance"`
	VoidMonths       int     `json:"voidMonths"` // months without rent per year
}

// DefaultLongLetParameters returns long-let parameters for m and monthlyRent
// with the default cost assumptions.
func DefaultLongLetParameters(m MortgageParameters, monthlyRent float64) LongLetParameters {
	return LongLetParameters{
		MortgageParameters: m,
		MonthlyRent:        monthlyRent,
		ManagementFee:      DefaultManagementFee,
		Maintenance:        DefaultMaintenance,
		MonthlyInsurance:   DefaultMonthlyInsurance,
		VoidMonths:         DefaultVoidMonths,
	}
}

// AnnualCosts breaks down the yearly running costs of a let property.
type AnnualCosts struct {
	Management  float64 `json:"management"`
	Maintenance float64 `json:"maintenance"`
	Insurance   float64 `json:"insurance"`
	Mortgage    float64 `json:"mortgage"`
}

// Total returns the sum of all costs.
func (c AnnualCosts) Total() float64 {
	return c.Management + c.Maintenance + c.Insurance + c.Mortgage
}

// LongLetResult is the yearly projection of a long-let.
type LongLetResult struct {
	MonthlyMortgage float64     `json:"monthlyMortgage"`
	AnnualIncome    float64     `json:"annualIncome"`
	Costs           AnnualCosts `json:"costs"`
	AnnualCosts     float64     `json:"annualCosts"`
	NetIncome       float64     `json:"netIncome"`
	ROI             NullPercent `json:"roi"` // undefined without deposit
	GrossYield      Percent     `json:"grossYield"`
	NetYield        Percent     `json:"netYield"`
}

// ProjectLongLet projects the yearly income, costs and returns of p.
func ProjectLongLet(p LongLetParameters) (LongLetResult, error) {
	if err := p.Validate(); err != nil {
		return LongLetResult{}, fmt.Errorf("long-let: %w", err)
	}
	return projectLongLet(p), nil
}

// projectLongLet assumes p is valid.
func projectLongLet(p LongLetParameters) LongLetResult {
	m := amortize(p.MortgageParameters)

	// void months are simply not collected.
	rent := p.MonthlyRent * float64(12-p.VoidMonths)
	costs := AnnualCosts{
		Management:  p.ManagementFee.Of(rent),
		Maintenance: p.Maintenance.Of(p.PropertyPrice),
		Insurance:   p.MonthlyInsurance * 12,
		Mortgage:    m.MonthlyPayment * 12,
	}
	net := rent - costs.Total()

	return LongLetResult{
		MonthlyMortgage: m.MonthlyPayment,
		AnnualIncome:    rent,
		Costs:           costs,
		AnnualCosts:     costs.Total(),
		NetIncome:       net,
		ROI:             nullable(ROI(net, p.Deposit)),
		GrossYield:      Yield(rent, p.PropertyPrice),
		NetYield:        Yield(net, p.PropertyPrice),
	}
}

// ROI returns the yearly net income as a percentage of the cash deposit.
func ROI(netIncome, deposit float64) (Percent, error) {
	if deposit == 0 {
		return 0, fmt.Errorf("roi without deposit: %w", ErrDivisionByZero)
	}
	return Percent(netIncome / deposit * 100), nil
}

// Yield returns income as a percentage of price. The price must not be zero.
func Yield(income, price float64) Percent {
	return Percent(income / price * 100)
}

// Uplift returns the improvement of netIncome over baseline as a
// percentage of the baseline magnitude, so that a better net income is
// always a positive uplift, even over a loss making baseline.
//
// It differs from the plain relative change (netIncome-baseline)/baseline
// only for a negative baseline, where the plain change has the opposite sign.
func Uplift(netIncome, baseline float64) (Percent, error) {
	if baseline == 0 {
		return 0, fmt.Errorf("uplift over a zero baseline: %w", ErrDivisionByZero)
	}
	return Percent((netIncome - baseline) / math.Abs(baseline) * 100), nil
}

func nullable(p Percent, err error) NullPercent {
	if err != nil {
		return NullPercent{}
	}
	return ValidPercent(p)
}
