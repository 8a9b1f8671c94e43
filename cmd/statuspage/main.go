package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/hamed0406/statuspage/internal/config"
	"github.com/hamed0406/statuspage/internal/logging"
	"github.com/hamed0406/statuspage/internal/page"
	"github.com/hamed0406/statuspage/internal/summary"
)

// statuspage is the one-shot generator: summary.json in, index.html out.
// No flags; paths come from the environment with fixed defaults.
func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	fatal := func(err error) {
		logger.Error("generate_failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	content, err := page.LoadContent(cfg.PageFile)
	if err != nil {
		fatal(err)
	}

	records, err := summary.Load(cfg.InputPath)
	if err != nil {
		fatal(err)
	}

	body, err := page.Render(records, page.Options{
		Content:    content,
		Style:      cfg.Style,
		Thresholds: cfg.Thresholds,
	})
	if err != nil {
		fatal(err)
	}

	if err := page.Write(cfg.OutputPath, body); err != nil {
		fatal(err)
	}

	logger.Info("page_written",
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath),
		zap.Int("services", len(records)),
	)
	fmt.Println("wrote", cfg.OutputPath)
}
