// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package render

import "errors"

var (
	ErrUnsupportedStyle = errors.New("unsupported chart style")
	ErrNoValues         = errors.New("no values to plot")
)
