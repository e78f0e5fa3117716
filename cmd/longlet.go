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

// longLetCmd holds the flags for the 'longlet' subcommand.
type longLetCmd struct {
	input string
	p     propfolio.LongLetParameters
}

func (*longLetCmd) Name() string     { return "longlet" }
func (*longLetCmd) Synopsis() string { return "project the yearly returns of a long-let" }
func (*longLetCmd) Usage() string {
	return `prop longlet [-i <file>] -price <price> -deposit <deposit> -rate <rate> -rent <rent> [<assumptions>]

  Projects the yearly income, costs, net income, ROI and yields of a property
  let to a single tenant.

  Assumptions missing from the input file take their built-in default.
`
}

func (c *longLetCmd) SetFlags(f *flag.FlagSet) {
	inputFlag(f, &c.input)
	longLetFlags(f, &c.p)
}

func (c *longLetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := loadParameters(f, c.input, &c.p, propfolio.DecodeLongLet); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading parameters: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := propfolio.ProjectLongLet(c.p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	md := renderer.RenderLongLet(renderer.NewLongLet(c.p, r, *currency))
	return printReport(md, r)
}
