// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package extract

import "errors"

var (
	ErrInvalidEncoding = errors.New("log data is not valid UTF-8 text")
	ErrMalformedFrame  = errors.New("malformed data bytes line")
)
