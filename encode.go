package propfolio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Parameter files are single JSON objects using the json names of the
// parameter fields. Long-let assumptions missing from the file keep their
// default value.
//
// Property files are JSON Lines, one PropertySummary per line.

// DecodeMortgage reads mortgage parameters from r.
func DecodeMortgage(r io.Reader) (MortgageParameters, error) {
	var m MortgageParameters
	if err := decodeObject(r, &m); err != nil {
		return m, fmt.Errorf("decoding mortgage parameters: %w", err)
	}
	return m, nil
}

// DecodeLongLet reads long-let parameters from r.
func DecodeLongLet(r io.Reader) (LongLetParameters, error) {
	p := DefaultLongLetParameters(MortgageParameters{}, 0)
	if err := decodeObject(r, &p); err != nil {
		return p, fmt.Errorf("decoding long-let parameters: %w", err)
	}
	return p, nil
}

// DecodeShortLet reads short-let parameters from r.
func DecodeShortLet(r io.Reader) (ShortLetParameters, error) {
	p := ShortLetParameters{LongLetParameters: DefaultLongLetParameters(MortgageParameters{}, 0)}
	if err := decodeObject(r, &p); err != nil {
		return p, fmt.Errorf("decoding short-let parameters: %w", err)
	}
	return p, nil
}

// decodeObject decodes a single JSON object into v, rejecting unknown
// fields so that a typo does not silently fall back to a default.
func decodeObject(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// maxPropertyLine is the longest JSON Lines record DecodeProperties accepts.
const maxPropertyLine = 16 * 1024 * 1024

// DecodeProperties reads property summaries from a JSON Lines stream.
// Blank lines are ignored.
func DecodeProperties(r io.Reader) ([]PropertySummary, error) {
	var properties []PropertySummary
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxPropertyLine)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var p PropertySummary
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("line %d: invalid property: %w", lineNum, err)
		}
		properties = append(properties, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading properties: %w", err)
	}
	return properties, nil
}

// EncodeProperties writes property summaries as JSON Lines.
func EncodeProperties(w io.Writer, properties []PropertySummary) error {
	enc := json.NewEncoder(w)
	for i, p := range properties {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("property #%d: %w", i, err)
		}
	}
	return nil
}
