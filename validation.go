package propfolio

import (
	"errors"
	"fmt"
	"math"
)

// validator accumulates every failed check of a parameter record.
type validator struct {
	errs []error
}

// err returns all failures joined, or nil.
func (v *validator) err() error { return errors.Join(v.errs...) }

func (v *validator) check(ok bool, field string, value float64, reason string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		ok, reason = false, "is not a finite number"
	}
	if !ok {
		v.errs = append(v.errs, &FieldError{Field: field, Value: value, Reason: reason})
	}
}

func (v *validator) percent(field string, p Percent) {
	v.check(p >= 0 && p <= 100, field, float64(p), "must be within [0,100]")
}

func (v *validator) nonNegative(field string, value float64) {
	v.check(value >= 0, field, value, "must not be negative")
}

// Validate returns an error wrapping ErrInvalidInput for every out-of-domain
// field of m, or nil.
func (m MortgageParameters) Validate() error {
	var v validator
	m.validate(&v)
	return v.err()
}

func (m MortgageParameters) validate(v *validator) {
	v.check(m.PropertyPrice > 0, "propertyPrice", m.PropertyPrice, "must be positive")
	v.nonNegative("deposit", m.Deposit)
	v.check(m.Deposit <= m.PropertyPrice, "deposit", m.Deposit, "must not exceed the property price")
	v.nonNegative("interestRate", float64(m.InterestRate))
	v.check(m.Term > 0, "term", float64(m.Term), "must be at least one year")
	v.check(m.Term <= MaxTerm, "term", float64(m.Term), fmt.Sprintf("must not exceed %d years", MaxTerm))
	if m.Term > 0 && m.Term <= MaxTerm {
		total := monthlyPayment(m.Loan(), m.MonthlyRate(), m.Payments()) * float64(m.Payments())
		v.check(!math.IsNaN(total) && !math.IsInf(total, 0), "interestRate", float64(m.InterestRate), "makes the repayments overflow")
	}
}

// Validate checks the mortgage and the long-let assumptions of p.
func (p LongLetParameters) Validate() error {
	var v validator
	p.validate(&v)
	return v.err()
}

func (p LongLetParameters) validate(v *validator) {
	p.MortgageParameters.validate(v)
	v.nonNegative("monthlyRent", p.MonthlyRent)
	v.percent("managementFee", p.ManagementFee)
	v.percent("maintenance", p.Maintenance)
	v.nonNegative("insurance", p.MonthlyInsurance)
	v.check(p.VoidMonths >= 0 && p.VoidMonths <= 12, "voidMonths", float64(p.VoidMonths), "must be within [0,12]")
}

// Validate checks the shared cost assumptions and the short-let revenue
// model of p.
func (p ShortLetParameters) Validate() error {
	var v validator
	p.LongLetParameters.validate(&v)
	v.nonNegative("nightlyRate", p.NightlyRate)
	v.percent("occupancy", p.Occupancy)
	v.nonNegative("cleaningCostPerStay", p.CleaningCostPerStay)
	v.percent("platformFee", p.PlatformFee)
	return v.err()
}
