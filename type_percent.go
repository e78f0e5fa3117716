package propfolio

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is a percentage expressed in [0,100] rather than as a fraction:
// 5.5 means 5.5%.
type Percent float64

// Fraction returns p as a fraction, 5.5% being 0.055.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

// Of returns p percent of v.
func (p Percent) Of(v float64) float64 { return p.Fraction() * v }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// finite returns p or 0 if p is NaN or infinite.
func (p Percent) finite() Percent { return Percent(finite(float64(p))) }

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NullPercent is a Percent that may be undefined, typically a ratio whose
// denominator is zero. It mirrors database/sql null types.
type NullPercent struct {
	Percent Percent
	Valid   bool // Valid is true if Percent is defined
}

// ValidPercent returns a defined NullPercent.
func ValidPercent(p Percent) NullPercent { return NullPercent{Percent: p, Valid: true} }

func (n NullPercent) String() string {
	if !n.Valid {
		return "n/a"
	}
	return n.Percent.String()
}

func (n NullPercent) SignedString() string {
	if !n.Valid {
		return "n/a"
	}
	return n.Percent.SignedString()
}

// MarshalJSON encodes an undefined percent as null.
func (n NullPercent) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n.Percent))
}

func (n *NullPercent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullPercent{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = ValidPercent(Percent(v))
	return nil
}
