// Package renderer turns engine results into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates holds the report templates, main ones and partials.
var templates, _ = fs.Sub(templatesFS, "templates")

// RenderMortgage renders the Mortgage struct to a markdown string.
func RenderMortgage(m *Mortgage) string {
	partials := map[string]string{
		"mortgage_terms": "mortgage_terms.md",
	}
	return renderTemplate("mortgage", "mortgage.md", partials, m)
}

// RenderSchedule renders the Schedule struct to a markdown string.
func RenderSchedule(s *Schedule) string {
	return renderTemplate("schedule", "schedule.md", nil, s)
}

// RenderLongLet renders the LongLet struct to a markdown string.
func RenderLongLet(l *LongLet) string {
	partials := map[string]string{
		"mortgage_terms":  "mortgage_terms.md",
		"letting_costs":   "letting_costs.md",
		"letting_returns": "letting_returns.md",
	}
	return renderTemplate("longlet", "longlet.md", partials, l)
}

// RenderShortLetOptions holds configuration for rendering a short-let report.
type RenderShortLetOptions struct {
	SkipComparison bool // Do not render the long-let comparison section.
}

// RenderShortLet renders the ShortLet struct to a markdown string.
func RenderShortLet(s *ShortLet, opts RenderShortLetOptions) string {
	partials := map[string]string{
		"mortgage_terms":      "mortgage_terms.md",
		"letting_costs":       "letting_costs.md",
		"letting_returns":     "letting_returns.md",
		"shortlet_comparison": "shortlet_comparison.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipComparison {
		partials["shortlet_comparison"] = ""
	}
	return renderTemplate("shortlet", "shortlet.md", partials, s)
}

// RenderPortfolio renders the Portfolio struct to a markdown string.
func RenderPortfolio(p *Portfolio) string {
	return renderTemplate("portfolio", "portfolio.md", nil, p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
//
// The output always ends with a single newline.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
