// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service
//
// Package extract converts raw bus sniffer log text into a Dataset: identifier
// to measurement name to ordered sample series, plus one reserved frame
// channel per identifier.
//
// The parser makes a single left-to-right pass over the lines with a running
// current-identifier context. Three line shapes are recognized, checked in
// fixed order: identifier lines ("ID: 0x1A0"), frame lines ("Data Bytes: 0A FF")
// and generic measurement lines ("Speed: 45.2rpm"). The measurement pattern is
// deliberately broad and must stay the last check.

package extract

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Policy selects how a frame line with malformed byte tokens is handled.
type Policy string

const (
	// PolicyLenient skips the malformed line and keeps extracting.
	PolicyLenient Policy = "lenient"
	// PolicyStrict aborts the extraction; nothing partial is returned.
	PolicyStrict Policy = "strict"
)

// ParsePolicy maps a config or flag string onto a Policy. The empty string
// selects the lenient default.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown byte policy %q (known: lenient, strict)", s)
}

// DefaultUnitSuffixes are the unit markers stripped from raw measurement
// values before the float parse: ampere, rotational speed, angular degree,
// torque. Every occurrence is removed, in this order.
var DefaultUnitSuffixes = []string{"A", "rpm", "deg", "Nm"}

// Stats counts what one extraction pass saw.
type Stats struct {
	Lines       int `json:"lines"`
	Identifiers int `json:"identifiers"`
	Samples     int `json:"samples"`
	Frames      int `json:"frames"`
	Skipped     int `json:"skipped_lines"`
	Malformed   int `json:"malformed_lines"`
}

// Config for an Extractor.
type Config struct {
	// Policy for malformed frame lines. Empty means PolicyLenient.
	Policy Policy
	// UnitSuffixes overrides DefaultUnitSuffixes when non-nil.
	UnitSuffixes []string
	// Filter restricts which measurement names are recorded. Nil admits all.
	Filter NameFilter
}

// Extractor parses sniffer log text into Datasets. An Extractor is stateless
// across calls: every call produces an independent Dataset.
type Extractor interface {
	Extract(data []byte) (*Dataset, Stats, error)
	ExtractReader(r io.Reader) (*Dataset, Stats, error)
}

type extractor struct {
	re struct {
		id     *regexp.Regexp
		frame  *regexp.Regexp
		scalar *regexp.Regexp
	}

	policy   Policy
	suffixes []string
	filter   NameFilter
}

// New creates an Extractor.
func New(config Config) Extractor {
	e := &extractor{
		policy:   config.Policy,
		suffixes: config.UnitSuffixes,
		filter:   config.Filter,
	}
	if e.policy == "" {
		e.policy = PolicyLenient
	}
	if e.suffixes == nil {
		e.suffixes = DefaultUnitSuffixes
	}
	e.re.id = regexp.MustCompile(`ID:\s*(0x[0-9A-Fa-f]+)`)
	e.re.frame = regexp.MustCompile(`Data Bytes:\s*(.*)`)
	e.re.scalar = regexp.MustCompile(`(\w+):\s*(.*)`)
	return e
}

// maxLineBytes bounds a single log line. Sniffer dumps stay far below this;
// longer lines fail the extraction rather than being silently truncated.
const maxLineBytes = 1 << 20

// Extract runs one pass over the log text. The returned Dataset is never nil;
// on error it is empty and Stats are zero - no partial state leaks out.
func (e *extractor) Extract(data []byte) (*Dataset, Stats, error) {
	if !utf8.Valid(data) {
		return newDataset(), Stats{}, ErrInvalidEncoding
	}

	ds := newDataset()
	stats := Stats{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	currentID := ""
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		stats.Lines++

		if m := e.re.id.FindStringSubmatch(line); m != nil {
			currentID = m[1]
			// The identifier belongs to the Dataset even when no data
			// lines follow before the next identifier or EOF.
			ds.message(currentID)
			continue
		}

		if m := e.re.frame.FindStringSubmatch(line); m != nil && currentID != "" {
			frame, err := parseFrame(m[1])
			if err != nil {
				if e.policy == PolicyStrict {
					return newDataset(), Stats{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
				stats.Malformed++
				continue
			}
			ds.message(currentID).appendFrame(frame)
			stats.Frames++
			continue
		}

		if m := e.re.scalar.FindStringSubmatch(line); m != nil && currentID != "" {
			name := m[1]
			if e.filter != nil && !e.filter.Admit(name) {
				stats.Skipped++
				continue
			}
			ds.message(currentID).appendSample(name, e.normalize(m[2]))
			stats.Samples++
			continue
		}

		// No shape matched, or data arrived before any identifier line.
		stats.Skipped++
	}
	if err := scanner.Err(); err != nil {
		return newDataset(), Stats{}, fmt.Errorf("scan log text: %w", err)
	}

	stats.Identifiers = ds.Len()
	return ds, stats, nil
}

// ExtractReader reads the whole input into memory and extracts it. Expected
// log sizes make streaming unnecessary.
func (e *extractor) ExtractReader(r io.Reader) (*Dataset, Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return newDataset(), Stats{}, fmt.Errorf("read log: %w", err)
	}
	return e.Extract(data)
}

// normalize strips the unit suffixes from a raw value and attempts the float
// parse. On failure the original raw text is kept, not the stripped form.
// Non-finite parses also fall back to text so every numeric sample stays
// JSON- and chart-safe.
func (e *extractor) normalize(raw string) Sample {
	stripped := raw
	for _, suffix := range e.suffixes {
		stripped = strings.ReplaceAll(stripped, suffix, "")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(stripped), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return TextSample(raw)
	}
	return NumberSample(v)
}

// parseFrame decodes the remainder of a frame line: whitespace-separated hex
// byte tokens, an optional 0x prefix tolerated. An empty remainder is a valid
// empty record. Any bad token fails the whole line.
func parseFrame(rest string) (Frame, error) {
	fields := strings.Fields(rest)
	frame := make(Frame, 0, len(fields))
	for _, tok := range fields {
		t := tok
		if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
			t = t[2:]
		}
		v, err := strconv.ParseUint(t, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q", ErrMalformedFrame, tok)
		}
		frame = append(frame, byte(v))
	}
	return frame, nil
}
