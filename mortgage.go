package propfolio

import (
	"fmt"
	"math"
)

// MaxTerm is the longest mortgage term accepted, in years.
const MaxTerm = 100

// MortgageParameters describes a fixed-rate repayment mortgage.
type MortgageParameters struct {
	PropertyPrice float64 `json:"propertyPrice"`
	Deposit       float64 `json:"deposit"`
	InterestRate  Percent `json:"interestRate"` // annual
	Term          int     `json:"term"`         // in years
}

// Loan returns the borrowed principal.
func (m MortgageParameters) Loan() float64 { return m.PropertyPrice - m.Deposit }

// Payments returns the number of monthly installments.
func (m MortgageParameters) Payments() int { return m.Term * 12 }

// MonthlyRate returns the monthly interest rate as a fraction.
func (m MortgageParameters) MonthlyRate() float64 { return m.InterestRate.Fraction() / 12 }

// MortgageResult holds the repayment figures of a mortgage.
//
// TotalPayable and TotalInterest are always derived from MonthlyPayment.
type MortgageResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayable   float64 `json:"totalPayable"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Amortize computes the monthly payment of the mortgage described by m, and
// the totals paid over its term.
func Amortize(m MortgageParameters) (MortgageResult, error) {
	if err := m.Validate(); err != nil {
		return MortgageResult{}, fmt.Errorf("mortgage: %w", err)
	}
	return amortize(m), nil
}

// amortize assumes m is valid.
func amortize(m MortgageParameters) MortgageResult {
	return m.Result(monthlyPayment(m.Loan(), m.MonthlyRate(), m.Payments()))
}

// Result returns the mortgage result of m for the given monthly payment,
// deriving the totals from it.
func (m MortgageParameters) Result(payment float64) MortgageResult {
	total := payment * float64(m.Term) * 12
	return MortgageResult{
		MonthlyPayment: payment,
		TotalPayable:   total,
		TotalInterest:  total - m.Loan(),
	}
}

// monthlyPayment applies the annuity formula L·r·(1+r)^n / ((1+r)^n − 1).
//
// The formula is 0/0 for r = 0, the loan is then repaid in n equal parts.
// When (1+r)^n overflows the payment is its limit, the interest L·r.
func monthlyPayment(loan, r float64, n int) float64 {
	if r == 0 {
		return loan / float64(n)
	}
	f := math.Pow(1+r, float64(n))
	if math.IsInf(f, 1) {
		return loan * r
	}
	return loan * r * f / (f - 1)
}
