// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package monitor

import (
	"os"
	"sync"

	gopsutilprocess "github.com/shirou/gopsutil/v3/process"
)

// sysSampler reads the service's own CPU and memory via gopsutil
type sysSampler struct {
	mu   sync.RWMutex
	proc *gopsutilprocess.Process
}

// NewSysSampler creates a sampler bound to the current process
func NewSysSampler() (Sampler, error) {
	proc, err := gopsutilprocess.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &sysSampler{proc: proc}, nil
}

func (s *sysSampler) Current() (cpu float64, memory uint64) {
	s.mu.RLock()
	proc := s.proc
	s.mu.RUnlock()
	if proc == nil {
		return 0, 0
	}
	if cpuPct, err := proc.CPUPercent(); err == nil {
		cpu = cpuPct
	}
	if memInfo, err := proc.MemoryInfo(); err == nil && memInfo != nil {
		memory = memInfo.RSS
	}
	return cpu, memory
}
