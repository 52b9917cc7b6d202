// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package monitor

// Sampler reports resource usage of the running service. NullSampler
// reports nothing.
type Sampler interface {
	Current() (cpu float64, memory uint64)
}

type nullSampler struct{}

// NewNullSampler returns a no-op sampler
func NewNullSampler() Sampler {
	return &nullSampler{}
}

func (s *nullSampler) Current() (float64, uint64) { return 0, 0 }
