// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package api

import "canplot/internal/extract"

// LogInfo summarizes one uploaded log
type LogInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	SizeBytes   int64         `json:"size_bytes"`
	CreatedAt   int64         `json:"created_at"`
	Identifiers []string      `json:"identifiers"`
	Stats       extract.Stats `json:"stats"`
}

// SeriesResponse carries one measurement series
type SeriesResponse struct {
	Identifier  string           `json:"identifier"`
	Measurement string           `json:"measurement"`
	Values      []extract.Sample `json:"values"`
	Numeric     bool             `json:"numeric"`
	Count       int              `json:"count"`
}

// FramesResponse carries the reserved byte channel
type FramesResponse struct {
	Identifier string          `json:"identifier"`
	Frames     []extract.Frame `json:"frames"`
	Count      int             `json:"count"`
}

// StatusResponse for service health
type StatusResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	Uploads       int     `json:"uploads"`
	CPU           float64 `json:"cpu_usage"`
	Memory        uint64  `json:"memory_bytes"`
}

// ErrorResponse for API errors
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
