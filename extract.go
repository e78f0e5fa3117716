package propfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Extractor reads property summaries out of an arbitrary JSON document, as
// exported by a property data source.
//
// Items selects the properties in the document, the other paths are
// evaluated against each selected property. An empty path reads as 0.
type Extractor struct {
	Items            string
	Price            string
	PredictedValue   string
	EstimatedRevenue string // monthly
}

// DefaultExtractor reads an array of objects using the PropertySummary json
// names.
var DefaultExtractor = Extractor{
	Items:            "$[*]",
	Price:            "$.price",
	PredictedValue:   "$.predictedValue",
	EstimatedRevenue: "$.estimatedRevenue",
}

// Decode reads a JSON document from r and extracts its properties.
func (e Extractor) Decode(r io.Reader) ([]PropertySummary, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding property document: %w", err)
	}
	return e.Extract(doc)
}

// Extract returns the properties selected in doc.
func (e Extractor) Extract(doc any) ([]PropertySummary, error) {
	jval, err := jsonpath.Get(e.Items, doc)
	if err != nil {
		return nil, fmt.Errorf("selecting properties %q: %w", e.Items, err)
	}
	items, ok := jval.([]any)
	if !ok {
		items = []any{jval}
	}

	properties := make([]PropertySummary, 0, len(items))
	for i, item := range items {
		var p PropertySummary
		if p.Price, err = number(e.Price, item); err != nil {
			return nil, fmt.Errorf("property #%d: price: %w", i, err)
		}
		if p.PredictedValue, err = number(e.PredictedValue, item); err != nil {
			return nil, fmt.Errorf("property #%d: predicted value: %w", i, err)
		}
		if p.EstimatedRevenue, err = number(e.EstimatedRevenue, item); err != nil {
			return nil, fmt.Errorf("property #%d: estimated revenue: %w", i, err)
		}
		properties = append(properties, p)
	}
	return properties, nil
}

// number evaluates path against item and reads the result as a number.
func number(path string, item any) (float64, error) {
	if path == "" {
		return 0, nil
	}
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		val, err := parseNumber(v)
		if err != nil {
			return 0, fmt.Errorf("%q: value is an invalid string %q: %w", path, v, err)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("%q: not a number: %v", path, jval)
	}
}

// parseNumber reads a number out of s, trying it as is first, then without
// the symbols of display strings like "£250,000".
func parseNumber(s string) (float64, error) {
	var err error
	for _, keep := range []string{"", "0123456789.-+eE", "0123456789.-"} {
		t := strings.TrimSpace(s)
		if keep != "" {
			t = strings.Map(func(r rune) rune {
				if strings.ContainsRune(keep, r) {
					return r
				}
				return -1
			}, s)
		}
		var v float64
		if v, err = strconv.ParseFloat(t, 64); errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
		if err != nil {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.New("not a finite number")
		}
		return v, nil
	}
	return 0, err
}
