// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package render

import (
	"fmt"
	"strings"
)

// Style identifies a chart style.
type Style string

const (
	StyleLine      Style = "line"
	StyleBar       Style = "bar"
	StyleScatter   Style = "scatter"
	StyleArea      Style = "area"
	StyleHistogram Style = "histogram"
	StyleBox       Style = "box"
	StyleHeatmap   Style = "heatmap"
	StylePie       Style = "pie"
	StyleBubble    Style = "bubble"
	StyleRadar     Style = "radar"
)

// StyleInfo is one catalog entry.
type StyleInfo struct {
	Name        Style  `json:"name"`
	Description string `json:"description"`
	Supported   bool   `json:"supported"`
}

var catalog = []StyleInfo{
	{StyleLine, "connected line with sample markers", true},
	{StyleBar, "one labeled bar per sample index", true},
	{StyleScatter, "unconnected sample markers", true},
	{StyleArea, "line with the region to the zero baseline filled", true},
	{StyleHistogram, "vertical bars from the zero baseline at each index", true},
	{StyleBox, "distribution summary per series", false},
	{StyleHeatmap, "value intensity grid", false},
	{StylePie, "one slice per sample, sized by value", true},
	{StyleBubble, "markers sized by value", false},
	{StyleRadar, "values on radial axes", false},
}

// Styles returns the style catalog in its fixed order.
func Styles() []StyleInfo {
	out := make([]StyleInfo, len(catalog))
	copy(out, catalog)
	return out
}

// ParseStyle maps a request string onto a Style. The empty string selects
// StyleLine. Unknown names are rejected; known but unsupported styles parse
// fine and fail later at render time.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleLine, nil
	}
	want := Style(strings.ToLower(strings.TrimSpace(s)))
	for _, info := range catalog {
		if info.Name == want {
			return info.Name, nil
		}
	}
	return "", fmt.Errorf("unknown chart style %q", s)
}

func supported(s Style) bool {
	for _, info := range catalog {
		if info.Name == s {
			return info.Supported
		}
	}
	return false
}
