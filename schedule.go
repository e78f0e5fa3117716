package propfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Installment is one monthly row of an amortization schedule.
type Installment struct {
	Period    int     `json:"period"` // 1-based
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"` // remaining after this installment
}

// Schedule returns the month by month repayment of the mortgage m.
//
// Amounts are rounded to cents, and the last installment settles whatever
// the rounding left so that the final balance is exactly zero.
func Schedule(m MortgageParameters) ([]Installment, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	n := m.Payments()
	rate := decimal.NewFromFloat(m.MonthlyRate())
	payment := decimal.NewFromFloat(monthlyPayment(m.Loan(), m.MonthlyRate(), n)).Round(2)
	balance := decimal.NewFromFloat(m.Loan()).Round(2)

	rows := make([]Installment, 0, n)
	for period := 1; period <= n; period++ {
		interest := balance.Mul(rate).Round(2)
		principal := payment.Sub(interest)
		if period == n || principal.GreaterThan(balance) {
			principal = balance
		}
		balance = balance.Sub(principal)
		rows = append(rows, Installment{
			Period:    period,
			Payment:   principal.Add(interest).InexactFloat64(),
			Interest:  interest.InexactFloat64(),
			Principal: principal.InexactFloat64(),
			Balance:   balance.InexactFloat64(),
		})
	}
	return rows, nil
}
