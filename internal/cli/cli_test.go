// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"canplot/internal/extract"
)

func TestChartFileName(t *testing.T) {
	if got := chartFileName("0x1A0", "Speed"); got != "0x1A0_Speed.png" {
		t.Errorf("expected 0x1A0_Speed.png, got %s", got)
	}
	if got := chartFileName("0x1", "Motor Temp"); got != "0x1_Motor_Temp.png" {
		t.Errorf("expected sanitized name, got %s", got)
	}
}

func TestNewExtractorStrictFlag(t *testing.T) {
	strictBytes = true
	defer func() { strictBytes = false }()

	ex, err := newExtractor()
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ex.Extract([]byte("ID: 0x1\nData Bytes: ZZ\n"))
	if !errors.Is(err, extract.ErrMalformedFrame) {
		t.Errorf("expected strict extraction to fail, got %v", err)
	}
}

func TestNewExtractorMatchFlag(t *testing.T) {
	matchExpr = []string{"^Speed$"}
	defer func() { matchExpr = nil }()

	ex, err := newExtractor()
	if err != nil {
		t.Fatal(err)
	}
	ds, _, err := ex.Extract([]byte("ID: 0x1\nSpeed: 1\nTorque: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	msg, _ := ds.Message("0x1")
	if names := msg.Measurements(); len(names) != 1 || names[0] != "Speed" {
		t.Errorf("expected only Speed recorded, got %v", names)
	}
}

func TestChartCommandWritesFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	logPath := filepath.Join(dir, "drive.log")
	if err := os.WriteFile(logPath, []byte("ID: 0x100\nSpeed: 1\nSpeed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "charts")
	rootCmd.SetArgs([]string{"chart", logPath, "--id", "0x100", "--out", out, "--width", "320", "--height", "200"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("chart command failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "0x100_Speed.png")); err != nil {
		t.Errorf("expected chart file written: %v", err)
	}
}
