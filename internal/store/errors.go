// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package store

import "errors"

var (
	ErrNotFound      = errors.New("upload not found")
	ErrUploadExists  = errors.New("upload already exists")
	ErrInvalidUpload = errors.New("invalid upload: name is required")
)
