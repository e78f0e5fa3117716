package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/propfolio"
	"github.com/etnz/propfolio/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	input  string
	yearly bool
	p      propfolio.MortgageParameters
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display the amortization schedule of a mortgage" }
func (*scheduleCmd) Usage() string {
	return `prop schedule [-i <file>] [-yearly] -price <price> -deposit <deposit> -rate <rate> [-term <years>]

  Displays the split of every payment between interest and principal, and
  the balance left to repay.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	inputFlag(f, &c.input)
	f.BoolVar(&c.yearly, "yearly", false, "Sum the payments of each year")
	mortgageFlags(f, &c.p)
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := loadParameters(f, c.input, &c.p, propfolio.DecodeMortgage); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading parameters: %v\n", err)
		return subcommands.ExitFailure
	}

	installments, err := propfolio.Schedule(c.p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := renderer.NewSchedule(installments, c.yearly, *currency)
	return printReport(renderer.RenderSchedule(s), s)
}
