// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package store

import (
	"canplot/internal/extract"
)

// Config describes one log to add to the store.
type Config struct {
	ID   string // optional, assigned when empty
	Name string // original file name, shown in listings
	Data []byte // raw log text
}

// Upload is one extracted sniffer log held in memory.
type Upload struct {
	ID        string
	Name      string
	Size      int64
	CreatedAt int64

	dataset *extract.Dataset
	stats   extract.Stats
}

// Dataset returns the extraction result.
func (u *Upload) Dataset() *extract.Dataset {
	return u.dataset
}

// Stats returns the extraction counters.
func (u *Upload) Stats() extract.Stats {
	return u.stats
}

// Identifiers returns the identifiers seen in the upload, sorted.
func (u *Upload) Identifiers() []string {
	if u.dataset == nil {
		return nil
	}
	return u.dataset.Identifiers()
}

// Message returns the channels recorded for one identifier.
func (u *Upload) Message(id string) (*extract.Message, bool) {
	if u.dataset == nil {
		return nil, false
	}
	return u.dataset.Message(id)
}
