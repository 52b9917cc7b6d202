// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package extract

import (
	"encoding/json"
	"testing"
)

func TestIdentifiersSorted(t *testing.T) {
	ds := newDataset()
	for _, id := range []string{"0x30", "0x100", "0xab", "0xAB"} {
		ds.message(id)
	}
	want := []string{"0x100", "0x30", "0xAB", "0xab"}
	got := ds.Identifiers()
	if len(got) != len(want) {
		t.Fatalf("expected %d identifiers, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestMeasurementsExcludeFrameChannel(t *testing.T) {
	m := newMessage()
	m.appendSample("Speed", NumberSample(1))
	m.appendFrame(Frame{1, 2})
	m.appendSample("Torque", NumberSample(2))
	m.appendSample("Speed", NumberSample(3))

	names := m.Measurements()
	if len(names) != 2 || names[0] != "Speed" || names[1] != "Torque" {
		t.Errorf("expected [Speed Torque] in first-seen order, got %v", names)
	}
	for _, n := range names {
		if n == FrameChannel {
			t.Errorf("reserved channel %q leaked into measurement list", FrameChannel)
		}
	}
}

func TestMeasurementsReturnsCopy(t *testing.T) {
	m := newMessage()
	m.appendSample("Speed", NumberSample(1))
	names := m.Measurements()
	names[0] = "mutated"
	if again := m.Measurements(); again[0] != "Speed" {
		t.Errorf("internal name list was mutated: %v", again)
	}
}

func TestDatasetJSONShape(t *testing.T) {
	input := "ID: 0x100\nSpeed: 45.2rpm\nData Bytes: 01 02 03\nID: 0x200\nTorque: 12.0Nm\n"
	ds, _, err := New(Config{}).Extract([]byte(input))
	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	raw, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	want := `{"0x100":{"Data Bytes":[[1,2,3]],"Speed":[45.2]},"0x200":{"Torque":[12]}}`
	if string(raw) != want {
		t.Errorf("expected %s, got %s", want, raw)
	}
}

func TestMixedSeriesJSON(t *testing.T) {
	raw, err := json.Marshal([]Sample{NumberSample(45.2), TextSample("STATUS_OK")})
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(raw) != `[45.2,"STATUS_OK"]` {
		t.Errorf(`expected [45.2,"STATUS_OK"], got %s`, raw)
	}
}

func TestFrameJSON(t *testing.T) {
	raw, err := json.Marshal(Frame{10, 27, 255})
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(raw) != "[10,27,255]" {
		t.Errorf("expected [10,27,255], got %s", raw)
	}
	raw, err = json.Marshal(Frame{})
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected [], got %s", raw)
	}
}

func TestMessageJSONWithoutFrames(t *testing.T) {
	m := newMessage()
	m.appendSample("Speed", NumberSample(1))
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(raw) != `{"Speed":[1]}` {
		t.Errorf("expected no frame channel key, got %s", raw)
	}
}

func TestSampleString(t *testing.T) {
	if s := NumberSample(45.2).String(); s != "45.2" {
		t.Errorf("expected 45.2, got %s", s)
	}
	if s := NumberSample(12).String(); s != "12" {
		t.Errorf("expected 12, got %s", s)
	}
	if s := TextSample("RUNNING").String(); s != "RUNNING" {
		t.Errorf("expected RUNNING, got %s", s)
	}
}

func TestAllNumeric(t *testing.T) {
	if !AllNumeric(nil) {
		t.Error("expected empty series to count as numeric")
	}
	if !AllNumeric([]Sample{NumberSample(1), NumberSample(2)}) {
		t.Error("expected all-numeric series to report true")
	}
	if AllNumeric([]Sample{NumberSample(1), TextSample("x")}) {
		t.Error("expected mixed series to report false")
	}
}
