// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Server.Bind != ":8080" {
		t.Errorf("expected default bind :8080, got %s", cfg.Server.Bind)
	}
	if cfg.Upload.MaxSizeMB != 64 {
		t.Errorf("expected default max size 64, got %d", cfg.Upload.MaxSizeMB)
	}
	if cfg.Extract.BytePolicy != "lenient" {
		t.Errorf("expected lenient byte policy, got %s", cfg.Extract.BytePolicy)
	}
	if cfg.Chart.Width != 1000 || cfg.Chart.Height != 420 {
		t.Errorf("expected 1000x420 chart defaults, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canplot.yaml")
	body := `server:
  bind: ":9000"
upload:
  max_size_mb: 8
extract:
  byte_policy: strict
  unit_suffixes: [A, rpm]
  allow: ["^Speed$"]
  block: ["^Debug"]
chart:
  width: 640
  height: 300
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Server.Bind != ":9000" {
		t.Errorf("expected bind :9000, got %s", cfg.Server.Bind)
	}
	if cfg.Upload.MaxSizeMB != 8 {
		t.Errorf("expected max size 8, got %d", cfg.Upload.MaxSizeMB)
	}
	if cfg.Extract.BytePolicy != "strict" {
		t.Errorf("expected strict policy, got %s", cfg.Extract.BytePolicy)
	}
	if len(cfg.Extract.UnitSuffixes) != 2 || cfg.Extract.UnitSuffixes[0] != "A" {
		t.Errorf("expected suffixes [A rpm], got %v", cfg.Extract.UnitSuffixes)
	}
	if len(cfg.Extract.Allow) != 1 || len(cfg.Extract.Block) != 1 {
		t.Errorf("expected one allow and one block expression, got %v / %v", cfg.Extract.Allow, cfg.Extract.Block)
	}
	if cfg.Chart.Width != 640 || cfg.Chart.Height != 300 {
		t.Errorf("expected 640x300, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
}

func TestLoadFillsEmptyValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canplot.yaml")
	if err := os.WriteFile(path, []byte("server:\n  bind: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Server.Bind != ":8080" {
		t.Errorf("expected empty bind filled with default, got %s", cfg.Server.Bind)
	}
	if cfg.Chart.Width != 1000 {
		t.Errorf("expected chart width default filled, got %d", cfg.Chart.Width)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canplot.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
