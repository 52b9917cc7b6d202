// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service
//
// Package render turns measurement series into chart images.

package render

import (
	"bytes"
	"fmt"
	"strconv"

	"canplot/internal/extract"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer renders one measurement series into a PNG image.
type Renderer interface {
	Render(req Request) ([]byte, error)
}

// Request describes one chart.
type Request struct {
	Identifier  string
	Measurement string
	Samples     []extract.Sample
	Style       Style
	Width       int // 0 selects the configured default
	Height      int // 0 selects the configured default
}

// Config for a Renderer.
type Config struct {
	Width  int
	Height int
}

type renderer struct {
	width  int
	height int
}

// New creates a Renderer.
func New(config Config) Renderer {
	r := &renderer{
		width:  config.Width,
		height: config.Height,
	}
	if r.width <= 0 {
		r.width = 1000
	}
	if r.height <= 0 {
		r.height = 420
	}
	return r
}

func (r *renderer) Render(req Request) ([]byte, error) {
	if len(req.Samples) == 0 {
		return nil, ErrNoValues
	}

	style := req.Style
	if style == "" {
		style = StyleLine
	}
	if !supported(style) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStyle, style)
	}

	width, height := req.Width, req.Height
	if width <= 0 {
		width = r.width
	}
	if height <= 0 {
		height = r.height
	}

	// A series with any non-numeric sample is drawn as labeled markers on a
	// zero baseline, whatever style was requested.
	if !extract.AllNumeric(req.Samples) {
		return r.renderLabeled(req, width, height)
	}

	switch style {
	case StyleLine, StyleScatter, StyleArea, StyleHistogram:
		return r.renderSeries(req, style, width, height)
	case StyleBar:
		return r.renderBars(req, width, height)
	case StylePie:
		return r.renderPie(req, width, height)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedStyle, style)
}

func (r *renderer) renderSeries(req Request, style Style, width, height int) ([]byte, error) {
	xs, ys := indexed(req.Samples)

	var st chart.Style
	switch style {
	case StyleScatter:
		st = pointStyle(chart.ColorBlue)
	case StyleArea:
		st = chart.Style{
			StrokeColor: chart.ColorBlue,
			StrokeWidth: 1.5,
			FillColor:   chart.ColorBlue.WithAlpha(64),
		}
	default:
		st = chart.Style{
			StrokeColor: chart.ColorBlue,
			StrokeWidth: 1.5,
			DotColor:    chart.ColorBlue,
			DotWidth:    3,
		}
	}

	series := chart.ContinuousSeries{
		Name:    req.Measurement,
		XValues: xs,
		YValues: ys,
		Style:   st,
	}

	ch := chart.Chart{
		Title:      title(req),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{Name: "Index"},
		YAxis:      chart.YAxis{Name: req.Measurement},
	}
	if rng := flatRange(ys); rng != nil {
		ch.YAxis.Range = rng
	}
	if style == StyleHistogram {
		ch.Series = []chart.Series{chart.HistogramSeries{Name: req.Measurement, InnerSeries: series}}
	} else {
		ch.Series = []chart.Series{series}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) renderBars(req Request, width, height int) ([]byte, error) {
	bars := make([]chart.Value, len(req.Samples))
	ys := make([]float64, len(req.Samples))
	for i, s := range req.Samples {
		bars[i] = chart.Value{Value: s.Number, Label: strconv.Itoa(i)}
		ys[i] = s.Number
	}

	barWidth := width / (2 * len(bars))
	if barWidth < 2 {
		barWidth = 2
	}
	if barWidth > 60 {
		barWidth = 60
	}

	bc := chart.BarChart{
		Title:      title(req),
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		YAxis:      chart.YAxis{Name: req.Measurement},
		Bars:       bars,
	}
	if rng := flatRange(ys); rng != nil {
		bc.YAxis.Range = rng
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) renderPie(req Request, width, height int) ([]byte, error) {
	total := 0.0
	values := make([]chart.Value, len(req.Samples))
	for i, s := range req.Samples {
		if s.Number < 0 {
			return nil, fmt.Errorf("pie style needs non-negative values, sample %d is %s", i, s.String())
		}
		values[i] = chart.Value{Value: s.Number, Label: strconv.Itoa(i)}
		total += s.Number
	}
	if total <= 0 {
		return nil, fmt.Errorf("pie style needs a positive value total")
	}

	pc := chart.PieChart{
		Title:  title(req),
		Width:  width,
		Height: height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// renderLabeled draws one marker per sample on a zero baseline with the
// literal value text attached. Mixed and textual series always take this
// path; only the layout, not the requested style, varies with size.
func (r *renderer) renderLabeled(req Request, width, height int) ([]byte, error) {
	xs := make([]float64, len(req.Samples))
	zeros := make([]float64, len(req.Samples))
	notes := make([]chart.Value2, len(req.Samples))
	for i, s := range req.Samples {
		xs[i] = float64(i)
		notes[i] = chart.Value2{XValue: float64(i), YValue: 0, Label: s.String()}
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		zeros = append(zeros, 0)
	}

	ch := chart.Chart{
		Title:      title(req),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{Name: "Index"},
		YAxis: chart.YAxis{
			Name:  req.Measurement,
			Range: &chart.ContinuousRange{Min: -1, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    req.Measurement,
				XValues: xs,
				YValues: zeros,
				Style:   pointStyle(chart.ColorBlue),
			},
			chart.AnnotationSeries{Annotations: notes},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func title(req Request) string {
	return req.Identifier + " - " + req.Measurement
}

// pointStyle renders markers only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// indexed maps a numeric series onto X values 0..n-1. A single sample is
// padded to two X values; a one-point x-range cannot be rendered.
func indexed(samples []extract.Sample) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(i)
		ys[i] = s.Number
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return xs, ys
}

// flatRange returns an explicit y-range for constant series; the automatic
// range cannot span a zero delta.
func flatRange(ys []float64) *chart.ContinuousRange {
	min, max := ys[0], ys[0]
	for _, v := range ys[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min != max {
		return nil
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}
