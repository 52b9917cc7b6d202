// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"canplot/internal/api"
	"canplot/internal/config"
	"canplot/internal/extract"
	"canplot/internal/logger"
	"canplot/internal/monitor"
	"canplot/internal/render"
	"canplot/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	bind := flag.String("bind", "", "Bind address (overrides config)")
	policy := flag.String("policy", "", "Byte policy: lenient or strict (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Load config: %v", err)
		}
	}

	bindAddr := cfg.Server.Bind
	if *bind != "" {
		bindAddr = *bind
	}
	bytePolicy := cfg.Extract.BytePolicy
	if *policy != "" {
		bytePolicy = *policy
	}

	logger := logger.New("canplot")

	pol, err := extract.ParsePolicy(bytePolicy)
	if err != nil {
		log.Fatalf("Byte policy: %v", err)
	}
	filter, err := extract.NewNameFilter(cfg.Extract.Allow, cfg.Extract.Block)
	if err != nil {
		log.Fatalf("Name filter: %v", err)
	}

	extractor := extract.New(extract.Config{
		Policy:       pol,
		UnitSuffixes: cfg.Extract.UnitSuffixes,
		Filter:       filter,
	})

	store := store.NewStore(extractor, logger)
	renderer := render.New(render.Config{Width: cfg.Chart.Width, Height: cfg.Chart.Height})

	sampler, err := monitor.NewSysSampler()
	if err != nil {
		logger.Error("resource sampler unavailable: %v", err)
		sampler = monitor.NewNullSampler()
	}

	handler := api.NewHandler(store, renderer, sampler, cfg.Upload.MaxSizeMB<<20)

	r := gin.Default()
	r.Use(gin.Recovery(), cors.Default())

	// static frontend
	webDir := "web"
	indexPath := filepath.Join(webDir, "index.html")
	r.GET("/", func(c *gin.Context) { c.File(indexPath) })

	v1 := r.Group("/api/v1")
	{
		v1.GET("/styles", handler.Styles)
		v1.GET("/status", handler.Status)

		v1.GET("/logs", handler.ListLogs)
		v1.POST("/logs", handler.AddLog)
		v1.GET("/logs/:id", handler.GetLog)
		v1.DELETE("/logs/:id", handler.DeleteLog)
		v1.GET("/logs/:id/dataset", handler.GetDataset)
		v1.GET("/logs/:id/ids", handler.GetIdentifiers)
		v1.GET("/logs/:id/ids/:cid/measurements", handler.GetMeasurements)
		v1.GET("/logs/:id/ids/:cid/measurements/:name", handler.GetSeries)
		v1.GET("/logs/:id/ids/:cid/frames", handler.GetFrames)
		v1.GET("/logs/:id/ids/:cid/chart.png", handler.GetChart)
	}

	log.Printf("canplot listening on %s (Web UI: /)", bindAddr)
	if err := r.Run(bindAddr); err != nil {
		log.Fatalf("Server: %v", err)
	}
}
