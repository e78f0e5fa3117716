package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/propfolio"
)

// inputFlag declares the flag reading parameters from a JSON file.
func inputFlag(f *flag.FlagSet, input *string) {
	f.StringVar(input, "i", "", "JSON file with the parameters. Flags set on the command line override it.")
}

func mortgageFlags(f *flag.FlagSet, p *propfolio.MortgageParameters) {
	f.Float64Var(&p.PropertyPrice, "price", 0, "Property price")
	f.Float64Var(&p.Deposit, "deposit", 0, "Deposit paid upfront")
	f.Float64Var((*float64)(&p.InterestRate), "rate", 0, "Annual interest rate in percent")
	f.IntVar(&p.Term, "term", 25, "Mortgage term in years")
}

func longLetFlags(f *flag.FlagSet, p *propfolio.LongLetParameters) {
	mortgageFlags(f, &p.MortgageParameters)
	f.Float64Var(&p.MonthlyRent, "rent", 0, "Monthly rent")
	f.Float64Var((*float64)(&p.ManagementFee), "management", config.ManagementFee, "Management fee in percent of the collected rent")
	f.Float64Var((*float64)(&p.Maintenance), "maintenance", config.Maintenance, "Yearly maintenance in percent of the property price")
	f.Float64Var(&p.MonthlyInsurance, "insurance", config.Insurance, "Monthly insurance")
	f.IntVar(&p.VoidMonths, "void", config.VoidMonths, "Months per year without a tenant")
}

func shortLetFlags(f *flag.FlagSet, p *propfolio.ShortLetParameters) {
	longLetFlags(f, &p.LongLetParameters)
	f.Float64Var(&p.NightlyRate, "nightly", 0, "Nightly rate")
	f.Float64Var((*float64)(&p.Occupancy), "occupancy", 0, "Occupancy in percent of the nights of the year")
	f.Float64Var(&p.CleaningCostPerStay, "cleaning", 0, "Cleaning cost per occupied night")
	f.Float64Var((*float64)(&p.PlatformFee), "platform", 0, "Booking platform fee in percent of the revenue")
}

// loadParameters replaces *p by the parameters decoded from the input file,
// if any, then applies again the flags explicitly set on the command line.
func loadParameters[T any](f *flag.FlagSet, input string, p *T, decode func(io.Reader) (T, error)) error {
	if input == "" {
		return nil
	}
	set := make(map[string]string)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = fl.Value.String() })

	r, err := os.Open(input)
	if err != nil {
		return err
	}
	defer r.Close()
	if *p, err = decode(r); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	tracef("loaded parameters from %s", input)

	for name, value := range set {
		if name == "i" {
			continue
		}
		if err := f.Set(name, value); err != nil {
			return fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return nil
}
