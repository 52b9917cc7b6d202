// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package extract

import (
	"encoding/json"
	"sort"
	"strconv"
)

// FrameChannel is the reserved channel name under which frame payloads are
// serialized. Measurement names are single word tokens and can never contain
// a space, so no user signal can collide with it.
const FrameChannel = "Data Bytes"

// Sample is one scalar observation of a measurement: numeric when the raw
// value parsed as a finite float, textual otherwise.
type Sample struct {
	Number  float64
	Text    string
	Numeric bool
}

// NumberSample returns a numeric sample.
func NumberSample(v float64) Sample { return Sample{Number: v, Numeric: true} }

// TextSample returns a textual sample carrying the raw value verbatim.
func TextSample(s string) Sample { return Sample{Text: s} }

// String renders the sample the way it is labeled on charts and in the CLI.
func (s Sample) String() string {
	if s.Numeric {
		return strconv.FormatFloat(s.Number, 'g', -1, 64)
	}
	return s.Text
}

// MarshalJSON emits a bare number for numeric samples and a string otherwise,
// so a series serializes as a mixed JSON array.
func (s Sample) MarshalJSON() ([]byte, error) {
	if s.Numeric {
		return json.Marshal(s.Number)
	}
	return json.Marshal(s.Text)
}

// AllNumeric reports whether every sample in the series is numeric. An empty
// series counts as numeric.
func AllNumeric(series []Sample) bool {
	for _, s := range series {
		if !s.Numeric {
			return false
		}
	}
	return true
}

// Frame is the decoded payload bytes of one data-bytes record.
type Frame []byte

// MarshalJSON emits the bytes as a JSON array of numbers instead of the
// base64 string encoding/json gives a plain byte slice.
func (f Frame) MarshalJSON() ([]byte, error) {
	vals := make([]int, len(f))
	for i, b := range f {
		vals[i] = int(b)
	}
	return json.Marshal(vals)
}

// Message holds every channel recorded for one identifier: measurement series
// keyed by name, plus the reserved frame channel. Channels are created on
// first write; a Message fresh from an identifier line has none.
type Message struct {
	names  []string
	series map[string][]Sample
	frames []Frame
}

func newMessage() *Message {
	return &Message{series: make(map[string][]Sample)}
}

// appendSample records a scalar, creating the series on first write.
func (m *Message) appendSample(name string, s Sample) {
	if _, ok := m.series[name]; !ok {
		m.names = append(m.names, name)
	}
	m.series[name] = append(m.series[name], s)
}

// appendFrame records one frame in the reserved channel.
func (m *Message) appendFrame(f Frame) {
	m.frames = append(m.frames, f)
}

// Measurements returns the selectable measurement names in the order they
// first appeared. The reserved frame channel is never part of the list.
func (m *Message) Measurements() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Series returns the ordered samples recorded under a measurement name.
// Callers must not modify the returned slice.
func (m *Message) Series(name string) ([]Sample, bool) {
	s, ok := m.series[name]
	return s, ok
}

// Frames returns the ordered frame records. Callers must not modify the
// returned slice.
func (m *Message) Frames() []Frame { return m.frames }

// Empty reports whether no channel received any data.
func (m *Message) Empty() bool { return len(m.names) == 0 && len(m.frames) == 0 }

// MarshalJSON writes the measurement channels plus, when frames were
// recorded, the reserved frame channel.
func (m *Message) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, len(m.names)+1)
	for name, s := range m.series {
		obj[name] = s
	}
	if len(m.frames) > 0 {
		obj[FrameChannel] = m.frames
	}
	return json.Marshal(obj)
}

// Dataset is the full parsed result: identifier to channel container. It is
// built in a single extraction pass and never mutated afterwards.
type Dataset struct {
	messages map[string]*Message
}

func newDataset() *Dataset {
	return &Dataset{messages: make(map[string]*Message)}
}

// message returns the channel container for an identifier, creating it on
// first use.
func (d *Dataset) message(id string) *Message {
	m, ok := d.messages[id]
	if !ok {
		m = newMessage()
		d.messages[id] = m
	}
	return m
}

// Identifiers returns every identifier in lexicographic order. Identifiers
// are opaque case-preserved strings: 0xAB and 0xab are distinct.
func (d *Dataset) Identifiers() []string {
	ids := make([]string, 0, len(d.messages))
	for id := range d.messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Message returns the channels recorded for an identifier.
func (d *Dataset) Message(id string) (*Message, bool) {
	m, ok := d.messages[id]
	return m, ok
}

// Len returns the number of identifiers.
func (d *Dataset) Len() int { return len(d.messages) }

// Empty reports whether nothing was extracted.
func (d *Dataset) Empty() bool { return len(d.messages) == 0 }

// MarshalJSON writes the two-level identifier to channel mapping.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.messages)
}
