package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/propfolio"
	"github.com/etnz/propfolio/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	extractor propfolio.Extractor
	output    string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the metrics of a property portfolio" }
func (*portfolioCmd) Usage() string {
	return `prop portfolio [<extractor flags>] [-o <file.jsonl>] [<file>...]

  Aggregates properties into portfolio metrics: total value, potential
  profit, average yield, predicted growth and monthly revenue.

  Files ending in .jsonl hold one property per line. Any other file is a JSON
  document from which properties are extracted with jsonpath expressions.
  Use "-" to read a JSON Lines stream from the standard input.

  With -o, the properties read are also saved as JSON Lines, to be reused
  without the extractor flags.

  Without properties, the metrics of a model portfolio are displayed.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	d := propfolio.DefaultExtractor
	f.StringVar(&c.extractor.Items, "items", d.Items, "jsonpath selecting the properties of a JSON document")
	f.StringVar(&c.extractor.Price, "price", d.Price, "jsonpath of the price of a property")
	f.StringVar(&c.extractor.PredictedValue, "predicted", d.PredictedValue, "jsonpath of the predicted value of a property")
	f.StringVar(&c.extractor.EstimatedRevenue, "revenue", d.EstimatedRevenue, "jsonpath of the estimated monthly revenue of a property")
	f.StringVar(&c.output, "o", "", "JSON Lines file to save the properties to")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var properties []propfolio.PropertySummary
	for _, name := range f.Args() {
		list, err := c.decode(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading properties from %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		tracef("read %d properties from %s", len(list), name)
		properties = append(properties, list...)
	}

	if c.output != "" {
		if err := c.save(properties); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving properties to %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		tracef("saved %d properties to %s", len(properties), c.output)
	}

	p := renderer.NewPortfolio(properties, *currency)
	return printReport(renderer.RenderPortfolio(p), p)
}

// decode reads the properties in the file name.
func (c *portfolioCmd) decode(name string) ([]propfolio.PropertySummary, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	if name == "-" || filepath.Ext(name) == ".jsonl" {
		return propfolio.DecodeProperties(r)
	}
	return c.extractor.Decode(r)
}

// save writes properties to the output file.
func (c *portfolioCmd) save(properties []propfolio.PropertySummary) error {
	file, err := os.Create(c.output)
	if err != nil {
		return err
	}
	if err := propfolio.EncodeProperties(file, properties); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
