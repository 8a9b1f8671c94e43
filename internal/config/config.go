package config

import (
	"os"
	"strconv"
	"time"

	"github.com/hamed0406/statuspage/internal/page"
	"github.com/hamed0406/statuspage/internal/render"
)

type Config struct {
	InputPath  string            // summary file written by the external collector
	OutputPath string            // rendered page destination
	PageFile   string            // optional YAML page content (title, footer)
	LogDir     string            // logs directory
	Addr       string            // statusd bind address
	Style      page.Style        // card style: bars (default) or stripes
	Thresholds render.Thresholds // severity cut-offs
	Rebuild    time.Duration     // statusd rebuild poll interval; 0 disables
}

func FromEnv() Config {
	input := os.Getenv("INPUT_PATH")
	if input == "" {
		input = "data/summary.json"
	}

	output := os.Getenv("OUTPUT_PATH")
	if output == "" {
		output = "public/index.html"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	// Bind address (Windows-friendly default)
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	style := page.StyleBars
	if os.Getenv("RENDER_STYLE") == string(page.StyleStripes) {
		style = page.StyleStripes
	}

	th := render.DefaultThresholds()
	if v := os.Getenv("THRESHOLD_OK"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 100 {
			th.OK = f
		}
	}
	if v := os.Getenv("THRESHOLD_WARN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= th.OK {
			th.Warn = f
		}
	}

	rebuild := 30 * time.Second
	if v := os.Getenv("REBUILD_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			rebuild = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		InputPath:  input,
		OutputPath: output,
		PageFile:   os.Getenv("PAGE_FILE"),
		LogDir:     logDir,
		Addr:       addr,
		Style:      style,
		Thresholds: th,
		Rebuild:    rebuild,
	}
}
