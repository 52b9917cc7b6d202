// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"canplot/internal/extract"
)

// Summary is one extracted log as shown by the CLI.
type Summary struct {
	Name    string           `json:"name"`
	Stats   extract.Stats    `json:"stats"`
	Dataset *extract.Dataset `json:"dataset"`
}

// Renderer writes a Summary to an output stream.
type Renderer interface {
	Render(s Summary) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleID    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // cyan
	styleKind  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleMixed = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleStats = lipgloss.NewStyle().Faint(true)
)

// TextRenderer prints a dataset summary to the terminal.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes styled text to stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{w: os.Stdout}
}

func (r *TextRenderer) Render(s Summary) error {
	var b strings.Builder

	ids := s.Dataset.Identifiers()
	b.WriteString(styleTitle.Render(fmt.Sprintf("%s: %d identifiers", s.Name, len(ids))))
	b.WriteString("\n")

	for _, id := range ids {
		msg, _ := s.Dataset.Message(id)
		b.WriteString(styleID.Render(id))
		b.WriteString("\n")
		for _, name := range msg.Measurements() {
			series, _ := msg.Series(name)
			kind := styleKind.Render("numeric")
			if !extract.AllNumeric(series) {
				kind = styleMixed.Render("mixed")
			}
			b.WriteString(fmt.Sprintf("  %-16s %4d  %s\n", name, len(series), kind))
		}
		if frames := msg.Frames(); len(frames) > 0 {
			b.WriteString(fmt.Sprintf("  %-16s %4d  %s\n", extract.FrameChannel, len(frames), styleKind.Render("frames")))
		}
	}

	b.WriteString(styleStats.Render(fmt.Sprintf(
		"%d lines: %d samples, %d frames, %d skipped, %d malformed",
		s.Stats.Lines, s.Stats.Samples, s.Stats.Frames, s.Stats.Skipped, s.Stats.Malformed)))
	b.WriteString("\n")

	_, err := fmt.Fprint(r.w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the whole summary as one JSON object.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON to stdout.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(os.Stdout)}
}

func (r *JSONRenderer) Render(s Summary) error {
	return r.enc.Encode(s)
}
