// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// NameFilter decides whether a measurement name is recorded. It never applies
// to identifier or frame lines.
type NameFilter interface {
	Admit(name string) bool
}

type nameFilter struct {
	allow []*regexp.Regexp
	block []*regexp.Regexp
}

// NewNameFilter creates a NameFilter from allow and block regular
// expressions. Empty expressions are ignored. A blocked name always loses;
// an empty allow list admits everything else.
func NewNameFilter(allow, block []string) (NameFilter, error) {
	f := &nameFilter{}

	for _, exp := range allow {
		exp = strings.TrimSpace(exp)
		if exp == "" {
			continue
		}
		re, err := regexp.Compile(exp)
		if err != nil {
			return nil, fmt.Errorf("invalid allow expression '%s': %w", exp, err)
		}
		f.allow = append(f.allow, re)
	}

	for _, exp := range block {
		exp = strings.TrimSpace(exp)
		if exp == "" {
			continue
		}
		re, err := regexp.Compile(exp)
		if err != nil {
			return nil, fmt.Errorf("invalid block expression '%s': %w", exp, err)
		}
		f.block = append(f.block, re)
	}

	return f, nil
}

func (f *nameFilter) Admit(name string) bool {
	for _, e := range f.block {
		if e.MatchString(name) {
			return false
		}
	}
	if len(f.allow) == 0 {
		return true
	}
	for _, e := range f.allow {
		if e.MatchString(name) {
			return true
		}
	}
	return false
}
