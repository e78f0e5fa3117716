// Package cmd implements the CLI application to evaluate property investments.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/propfolio/renderer"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the prop binary.
var Commands = []subcommands.Command{
	&mortgageCmd{},
	&scheduleCmd{},
	&longLetCmd{},
	&shortLetCmd{},
	&compareCmd{},
	&portfolioCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var config = loadConfig()

var currency = flag.String("currency", config.Currency, "Currency code used to display amounts")
var format = flag.String("format", config.Format, "Output format: term, markdown, html or json")

// Verbose enables tracing on stderr.
var Verbose = flag.Bool("v", false, "Verbose output")

// stdout is where reports are written.
var stdout io.Writer = os.Stdout

// Output formats.
const (
	formatTerm     = "term"
	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatJSON     = "json"
)

func tracef(msg string, args ...any) {
	if *Verbose {
		log.Printf(msg, args...)
	}
}

// printReport writes a report in the selected output format. The markdown
// is used by every text format, data is encoded for the json one.
func printReport(markdown string, data any) subcommands.ExitStatus {
	tracef("printing report as %s", *format)
	var out string
	switch *format {
	case formatJSON:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		out = string(b) + "\n"
	case formatHTML:
		var err error
		if out, err = renderer.HTML(markdown); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering html: %v\n", err)
			return subcommands.ExitFailure
		}
	case formatMarkdown:
		out = markdown
	case formatTerm:
		out = printMarkdown(markdown)
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q\n", *format)
		return subcommands.ExitUsageError
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown styles markdown for the terminal, or returns it unchanged if
// it cannot.
func printMarkdown(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("warning, cannot style markdown: %v", err)
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		log.Printf("warning, cannot style markdown: %v", err)
		return markdown
	}
	return out
}
