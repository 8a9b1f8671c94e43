package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/statuspage/internal/config"
	"github.com/hamed0406/statuspage/internal/logging"
	"github.com/hamed0406/statuspage/internal/page"
	"github.com/hamed0406/statuspage/internal/watch"
	"github.com/hamed0406/statuspage/internal/web"
)

// statusd serves the generated page, rebuilds it when the collector
// writes a new summary, and pushes rebuild events to connected browsers.
func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	content, err := page.LoadContent(cfg.PageFile)
	if err != nil {
		log.Fatal(err)
	}

	hub := web.NewHub(logger)
	reb := watch.NewRebuilder(
		logger,
		cfg.InputPath,
		cfg.OutputPath,
		page.Options{Content: content, Style: cfg.Style, Thresholds: cfg.Thresholds},
		cfg.Rebuild,
		hub,
	)

	// The startup render is fatal; later rebuild failures only log and
	// keep the previous page up.
	if err := reb.BuildOnce(); err != nil {
		log.Fatal(err)
	}
	go reb.Run(context.Background())

	api := web.NewServer(logger, cfg.InputPath, cfg.OutputPath, cfg.Thresholds, hub)

	logger.Info("statusd_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
