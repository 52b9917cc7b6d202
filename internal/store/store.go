// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package store

import (
	"sync"
	"time"

	"canplot/internal/extract"
	"canplot/internal/logger"

	"github.com/lithammer/shortuuid/v4"
)

// Store manages uploads in memory
type Store interface {
	Add(config *Config) (*Upload, error)
	Get(id string) (*Upload, error)
	List(ids []string, name string) []*Upload
	Delete(id string) error
}

type store struct {
	extractor extract.Extractor
	logger    logger.Logger
	uploads   map[string]*Upload
	mu        sync.RWMutex
}

// NewStore creates an upload store
func NewStore(ex extract.Extractor, log logger.Logger) Store {
	return &store{
		extractor: ex,
		logger:    log,
		uploads:   make(map[string]*Upload),
	}
}

func (s *store) Add(config *Config) (*Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(config.ID) == 0 {
		config.ID = shortuuid.New()
	}
	if len(config.Name) == 0 {
		return nil, ErrInvalidUpload
	}

	if _, exists := s.uploads[config.ID]; exists {
		return nil, ErrUploadExists
	}

	ds, stats, err := s.extractor.Extract(config.Data)
	if err != nil {
		return nil, err
	}

	upload := &Upload{
		ID:        config.ID,
		Name:      config.Name,
		Size:      int64(len(config.Data)),
		CreatedAt: time.Now().Unix(),
		dataset:   ds,
		stats:     stats,
	}
	s.uploads[config.ID] = upload

	s.logger.Info("upload %s (%s): %d identifiers, %d samples, %d frames",
		upload.ID, upload.Name, stats.Identifiers, stats.Samples, stats.Frames)

	return upload, nil
}

func (s *store) Get(id string) (*Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.uploads[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *store) List(ids []string, name string) []*Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Upload
	for _, u := range s.uploads {
		if len(name) > 0 && u.Name != name {
			continue
		}
		if len(ids) > 0 {
			found := false
			for _, id := range ids {
				if u.ID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.uploads[id]; !ok {
		return ErrNotFound
	}
	delete(s.uploads, id)

	s.logger.Info("upload %s deleted", id)
	return nil
}
