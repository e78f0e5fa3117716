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

// shortLetCmd holds the flags for the 'shortlet' subcommand.
type shortLetCmd struct {
	input string
	p     propfolio.ShortLetParameters
}

func (*shortLetCmd) Name() string     { return "shortlet" }
func (*shortLetCmd) Synopsis() string { return "project the yearly returns of a short-let" }
func (*shortLetCmd) Usage() string {
	return `prop shortlet [-i <file>] -price <price> -deposit <deposit> -rate <rate> -nightly <rate> -occupancy <percent> [<assumptions>]

  Projects the yearly revenue, costs, net income, ROI and yields of a
  property let night by night through a booking platform.

  Use 'prop compare' to also display the long-let it is compared to.
`
}

func (c *shortLetCmd) SetFlags(f *flag.FlagSet) {
	inputFlag(f, &c.input)
	shortLetFlags(f, &c.p)
}

func (c *shortLetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeShortLet(f, c.input, &c.p, renderer.RenderShortLetOptions{SkipComparison: true})
}

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	input string
	p     propfolio.ShortLetParameters
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compare a short-let with a long-let of the same property"
}
func (*compareCmd) Usage() string {
	return `prop compare [-i <file>] -price <price> -deposit <deposit> -rate <rate> -rent <rent> -nightly <rate> -occupancy <percent> [<assumptions>]

  Projects a short-let and the long-let of the same property side by side,
  and the uplift of the short-let net income over the long-let one.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	inputFlag(f, &c.input)
	shortLetFlags(f, &c.p)
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeShortLet(f, c.input, &c.p, renderer.RenderShortLetOptions{})
}

func executeShortLet(f *flag.FlagSet, input string, p *propfolio.ShortLetParameters, opts renderer.RenderShortLetOptions) subcommands.ExitStatus {
	if err := loadParameters(f, input, p, propfolio.DecodeShortLet); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading parameters: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := propfolio.ProjectShortLet(*p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	md := renderer.RenderShortLet(renderer.NewShortLet(*p, r, *currency), opts)
	return printReport(md, r)
}
