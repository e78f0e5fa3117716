package renderer

import "github.com/etnz/propfolio"

// Mortgage is a struct to represent the mortgage data in json.
// Amounts use propfolio.Money so that they already carry their renderers.
type Mortgage struct {
	PropertyPrice  propfolio.Money   `json:"propertyPrice"`
	Deposit        propfolio.Money   `json:"deposit"`
	Loan           propfolio.Money   `json:"loan"`
	InterestRate   propfolio.Percent `json:"interestRate"`
	Term           int               `json:"term"`
	MonthlyPayment propfolio.Money   `json:"monthlyPayment"`
	TotalPayable   propfolio.Money   `json:"totalPayable"`
	TotalInterest  propfolio.Money   `json:"totalInterest"`
}

// NewMortgage creates a new Mortgage struct from an amortization.
func NewMortgage(p propfolio.MortgageParameters, r propfolio.MortgageResult, cur string) *Mortgage {
	return &Mortgage{
		PropertyPrice:  propfolio.M(p.PropertyPrice, cur),
		Deposit:        propfolio.M(p.Deposit, cur),
		Loan:           propfolio.M(p.Loan(), cur),
		InterestRate:   p.InterestRate,
		Term:           p.Term,
		MonthlyPayment: propfolio.M(r.MonthlyPayment, cur),
		TotalPayable:   propfolio.M(r.TotalPayable, cur),
		TotalInterest:  propfolio.M(r.TotalInterest, cur),
	}
}

// Schedule represents an amortization schedule, by month or by year.
type Schedule struct {
	Label string        `json:"label"` // "Month" or "Year"
	Rows  []ScheduleRow `json:"rows"`
}

// ScheduleRow represents the installments of one period.
type ScheduleRow struct {
	Period    int             `json:"period"`
	Payment   propfolio.Money `json:"payment"`
	Interest  propfolio.Money `json:"interest"`
	Principal propfolio.Money `json:"principal"`
	Balance   propfolio.Money `json:"balance"`
}

// NewSchedule creates a new Schedule struct from monthly installments. If
// yearly is true, installments are summed up per year of the term.
func NewSchedule(installments []propfolio.Installment, yearly bool, cur string) *Schedule {
	s := &Schedule{Label: "Month", Rows: make([]ScheduleRow, 0, len(installments))}
	if yearly {
		s.Label = "Year"
	}
	for _, in := range installments {
		row := ScheduleRow{
			Period:    in.Period,
			Payment:   propfolio.M(in.Payment, cur),
			Interest:  propfolio.M(in.Interest, cur),
			Principal: propfolio.M(in.Principal, cur),
			Balance:   propfolio.M(in.Balance, cur),
		}
		if !yearly {
			s.Rows = append(s.Rows, row)
			continue
		}
		year := (in.Period-1)/12 + 1
		if len(s.Rows) == 0 || s.Rows[len(s.Rows)-1].Period != year {
			row.Period = year
			s.Rows = append(s.Rows, row)
			continue
		}
		last := &s.Rows[len(s.Rows)-1]
		last.Payment = last.Payment.Add(row.Payment)
		last.Interest = last.Interest.Add(row.Interest)
		last.Principal = last.Principal.Add(row.Principal)
		last.Balance = row.Balance
	}
	return s
}
