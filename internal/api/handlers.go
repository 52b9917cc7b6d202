// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"canplot/internal/extract"
	"canplot/internal/monitor"
	"canplot/internal/render"
	"canplot/internal/store"
)

// Handler holds dependencies
type Handler struct {
	store    store.Store
	renderer render.Renderer
	sampler  monitor.Sampler
	maxBytes int64
	started  time.Time
}

// NewHandler creates API handler
func NewHandler(st store.Store, r render.Renderer, sampler monitor.Sampler, maxUploadBytes int64) *Handler {
	if sampler == nil {
		sampler = monitor.NewNullSampler()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 64 << 20
	}
	return &Handler{
		store:    st,
		renderer: r,
		sampler:  sampler,
		maxBytes: maxUploadBytes,
		started:  time.Now(),
	}
}

func errResp(c *gin.Context, code int, msg, detail string) {
	c.JSON(code, ErrorResponse{Code: code, Message: msg, Detail: detail})
}

// AddLog POST /api/v1/logs
func (h *Handler) AddLog(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		errResp(c, http.StatusBadRequest, "Missing log file", err.Error())
		return
	}
	if file.Size > h.maxBytes {
		errResp(c, http.StatusBadRequest, "Log file too large", fmt.Sprintf("limit is %d bytes", h.maxBytes))
		return
	}

	f, err := file.Open()
	if err != nil {
		errResp(c, http.StatusBadRequest, "Unreadable log file", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes))
	if err != nil {
		errResp(c, http.StatusBadRequest, "Unreadable log file", err.Error())
		return
	}

	name := filepath.Base(file.Filename)
	if name == "." || name == "/" {
		name = ""
	}

	u, err := h.store.Add(&store.Config{ID: c.PostForm("id"), Name: name, Data: data})
	if err != nil {
		if err == store.ErrUploadExists {
			errResp(c, http.StatusBadRequest, "Upload exists", err.Error())
			return
		}
		errResp(c, http.StatusBadRequest, "Invalid log upload", err.Error())
		return
	}

	c.JSON(http.StatusOK, uploadToLogInfo(u))
}

// ListLogs GET /api/v1/logs
func (h *Handler) ListLogs(c *gin.Context) {
	name := c.DefaultQuery("name", "")
	idStr := c.DefaultQuery("id", "")

	var ids []string
	if idStr != "" {
		ids = strings.FieldsFunc(idStr, func(r rune) bool { return r == ',' })
		for i := range ids {
			ids[i] = strings.TrimSpace(ids[i])
		}
	}

	uploads := h.store.List(ids, name)
	sort.Slice(uploads, func(i, j int) bool {
		if uploads[i].CreatedAt != uploads[j].CreatedAt {
			return uploads[i].CreatedAt < uploads[j].CreatedAt
		}
		return uploads[i].ID < uploads[j].ID
	})

	infos := make([]LogInfo, 0, len(uploads))
	for _, u := range uploads {
		infos = append(infos, uploadToLogInfo(u))
	}

	c.JSON(http.StatusOK, infos)
}

// GetLog GET /api/v1/logs/:id
func (h *Handler) GetLog(c *gin.Context) {
	u, err := h.store.Get(c.Param("id"))
	if err != nil {
		errResp(c, http.StatusNotFound, "Unknown log ID", err.Error())
		return
	}
	c.JSON(http.StatusOK, uploadToLogInfo(u))
}

// DeleteLog DELETE /api/v1/logs/:id
func (h *Handler) DeleteLog(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		errResp(c, http.StatusNotFound, "Unknown log ID", err.Error())
		return
	}
	c.JSON(http.StatusOK, "OK")
}

// GetDataset GET /api/v1/logs/:id/dataset
func (h *Handler) GetDataset(c *gin.Context) {
	u, err := h.store.Get(c.Param("id"))
	if err != nil {
		errResp(c, http.StatusNotFound, "Unknown log ID", err.Error())
		return
	}
	c.JSON(http.StatusOK, u.Dataset())
}

// GetIdentifiers GET /api/v1/logs/:id/ids
func (h *Handler) GetIdentifiers(c *gin.Context) {
	u, err := h.store.Get(c.Param("id"))
	if err != nil {
		errResp(c, http.StatusNotFound, "Unknown log ID", err.Error())
		return
	}
	c.JSON(http.StatusOK, u.Identifiers())
}

// GetMeasurements GET /api/v1/logs/:id/ids/:cid/measurements
func (h *Handler) GetMeasurements(c *gin.Context) {
	msg, ok := h.message(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, msg.Measurements())
}

// GetSeries GET /api/v1/logs/:id/ids/:cid/measurements/:name
func (h *Handler) GetSeries(c *gin.Context) {
	msg, ok := h.message(c)
	if !ok {
		return
	}

	name := c.Param("name")
	series, ok := msg.Series(name)
	if !ok {
		errResp(c, http.StatusNotFound, "Unknown measurement", name)
		return
	}

	c.JSON(http.StatusOK, SeriesResponse{
		Identifier:  c.Param("cid"),
		Measurement: name,
		Values:      series,
		Numeric:     extract.AllNumeric(series),
		Count:       len(series),
	})
}

// GetFrames GET /api/v1/logs/:id/ids/:cid/frames
func (h *Handler) GetFrames(c *gin.Context) {
	msg, ok := h.message(c)
	if !ok {
		return
	}

	frames := msg.Frames()
	if frames == nil {
		frames = []extract.Frame{}
	}

	c.JSON(http.StatusOK, FramesResponse{
		Identifier: c.Param("cid"),
		Frames:     frames,
		Count:      len(frames),
	})
}

// GetChart GET /api/v1/logs/:id/ids/:cid/chart.png
func (h *Handler) GetChart(c *gin.Context) {
	msg, ok := h.message(c)
	if !ok {
		return
	}

	name := c.DefaultQuery("measurement", "")
	if name == "" {
		errResp(c, http.StatusBadRequest, "Missing measurement", "query parameter 'measurement' is required")
		return
	}
	series, ok := msg.Series(name)
	if !ok {
		errResp(c, http.StatusNotFound, "Unknown measurement", name)
		return
	}

	style, err := render.ParseStyle(c.DefaultQuery("style", ""))
	if err != nil {
		errResp(c, http.StatusBadRequest, "Invalid style", err.Error())
		return
	}
	width, err := intQuery(c, "width")
	if err != nil {
		errResp(c, http.StatusBadRequest, "Invalid width", err.Error())
		return
	}
	height, err := intQuery(c, "height")
	if err != nil {
		errResp(c, http.StatusBadRequest, "Invalid height", err.Error())
		return
	}

	img, err := h.renderer.Render(render.Request{
		Identifier:  c.Param("cid"),
		Measurement: name,
		Samples:     series,
		Style:       style,
		Width:       width,
		Height:      height,
	})
	if err != nil {
		if errors.Is(err, render.ErrUnsupportedStyle) || errors.Is(err, render.ErrNoValues) {
			errResp(c, http.StatusUnprocessableEntity, "Cannot render chart", err.Error())
			return
		}
		errResp(c, http.StatusInternalServerError, "Render failed", err.Error())
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}

// Styles GET /api/v1/styles
func (h *Handler) Styles(c *gin.Context) {
	c.JSON(http.StatusOK, render.Styles())
}

// Status GET /api/v1/status
func (h *Handler) Status(c *gin.Context) {
	cpu, mem := h.sampler.Current()
	c.JSON(http.StatusOK, StatusResponse{
		Status:        "running",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Uploads:       len(h.store.List(nil, "")),
		CPU:           cpu,
		Memory:        mem,
	})
}

// message resolves the :id and :cid path segments; on failure the error
// response has been written already.
func (h *Handler) message(c *gin.Context) (*extract.Message, bool) {
	u, err := h.store.Get(c.Param("id"))
	if err != nil {
		errResp(c, http.StatusNotFound, "Unknown log ID", err.Error())
		return nil, false
	}
	msg, ok := u.Message(c.Param("cid"))
	if !ok {
		errResp(c, http.StatusNotFound, "Unknown identifier", c.Param("cid"))
		return nil, false
	}
	return msg, true
}

func intQuery(c *gin.Context, key string) (int, error) {
	v := c.DefaultQuery(key, "")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}

func uploadToLogInfo(u *store.Upload) LogInfo {
	return LogInfo{
		ID:          u.ID,
		Name:        u.Name,
		SizeBytes:   u.Size,
		CreatedAt:   u.CreatedAt,
		Identifiers: u.Identifiers(),
		Stats:       u.Stats(),
	}
}
