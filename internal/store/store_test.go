// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package store

import (
	"errors"
	"testing"

	"canplot/internal/extract"
	"canplot/internal/logger"
)

func newTestStore() Store {
	return NewStore(extract.New(extract.Config{}), logger.Nop())
}

func TestAddAssignsID(t *testing.T) {
	s := newTestStore()
	u, err := s.Add(&Config{Name: "drive.log", Data: []byte("ID: 0x1\nSpeed: 2\n")})
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if u.ID == "" {
		t.Error("expected a generated ID")
	}
	if u.Size != int64(len("ID: 0x1\nSpeed: 2\n")) {
		t.Errorf("expected size of raw text, got %d", u.Size)
	}
	if ids := u.Identifiers(); len(ids) != 1 || ids[0] != "0x1" {
		t.Errorf("expected extracted identifiers [0x1], got %v", ids)
	}
	if u.Stats().Samples != 1 {
		t.Errorf("expected one sample counted, got %+v", u.Stats())
	}
}

func TestAddKeepsGivenID(t *testing.T) {
	s := newTestStore()
	u, err := s.Add(&Config{ID: "fixed", Name: "drive.log"})
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if u.ID != "fixed" {
		t.Errorf("expected ID fixed, got %s", u.ID)
	}
}

func TestAddDuplicateID(t *testing.T) {
	s := newTestStore()
	if _, err := s.Add(&Config{ID: "dup", Name: "a.log"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(&Config{ID: "dup", Name: "b.log"}); !errors.Is(err, ErrUploadExists) {
		t.Errorf("expected ErrUploadExists, got %v", err)
	}
}

func TestAddRequiresName(t *testing.T) {
	s := newTestStore()
	if _, err := s.Add(&Config{Data: []byte("ID: 0x1\n")}); !errors.Is(err, ErrInvalidUpload) {
		t.Errorf("expected ErrInvalidUpload, got %v", err)
	}
}

func TestAddRejectsBadEncoding(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(&Config{ID: "bad", Name: "bad.log", Data: []byte{0xff, 0xfe}})
	if !errors.Is(err, extract.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
	if _, err := s.Get("bad"); !errors.Is(err, ErrNotFound) {
		t.Error("failed upload must not be stored")
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore()
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore()
	a, _ := s.Add(&Config{Name: "a.log"})
	if _, err := s.Add(&Config{Name: "a.log"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(&Config{Name: "b.log"}); err != nil {
		t.Fatal(err)
	}

	if got := s.List(nil, ""); len(got) != 3 {
		t.Errorf("expected 3 uploads, got %d", len(got))
	}
	if got := s.List(nil, "a.log"); len(got) != 2 {
		t.Errorf("expected 2 uploads named a.log, got %d", len(got))
	}
	if got := s.List([]string{a.ID}, ""); len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("expected only %s, got %v", a.ID, got)
	}
	if got := s.List([]string{a.ID}, "b.log"); len(got) != 0 {
		t.Errorf("expected no match for conflicting filters, got %d", len(got))
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore()
	u, _ := s.Add(&Config{Name: "a.log"})
	if err := s.Delete(u.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := s.Get(u.ID); !errors.Is(err, ErrNotFound) {
		t.Error("expected upload gone after delete")
	}
	if err := s.Delete(u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
