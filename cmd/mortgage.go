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

// mortgageCmd holds the flags for the 'mortgage' subcommand.
type mortgageCmd struct {
	input string
	p     propfolio.MortgageParameters
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "compute the monthly payment of a mortgage" }
func (*mortgageCmd) Usage() string {
	return `prop mortgage [-i <file>] -price <price> -deposit <deposit> -rate <rate> [-term <years>]

  Computes the monthly payment, total payable and total interest of a
  repayment mortgage.
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	inputFlag(f, &c.input)
	mortgageFlags(f, &c.p)
}

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := loadParameters(f, c.input, &c.p, propfolio.DecodeMortgage); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading parameters: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := propfolio.Amortize(c.p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	md := renderer.RenderMortgage(renderer.NewMortgage(c.p, r, *currency))
	return printReport(md, r)
}
