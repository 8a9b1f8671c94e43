package config

import (
	"os"
	"testing"
	"time"

	"github.com/hamed0406/statuspage/internal/page"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("INPUT_PATH", "./in/summary.json")
	t.Setenv("OUTPUT_PATH", "./out/index.html")
	t.Setenv("PAGE_FILE", "./page.yaml")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("ADDR", ":9090")
	t.Setenv("RENDER_STYLE", "stripes")
	t.Setenv("THRESHOLD_OK", "99.5")
	t.Setenv("THRESHOLD_WARN", "98")
	t.Setenv("REBUILD_INTERVAL_MS", "250")

	cfg := FromEnv()

	if cfg.InputPath != "./in/summary.json" || cfg.OutputPath != "./out/index.html" {
		t.Fatalf("paths wrong: %+v", cfg)
	}
	if cfg.PageFile != "./page.yaml" || cfg.LogDir != "./_testlogs" || cfg.Addr != ":9090" {
		t.Fatalf("page/log/addr wrong: %+v", cfg)
	}
	if cfg.Style != page.StyleStripes {
		t.Fatalf("style wrong: %v", cfg.Style)
	}
	if cfg.Thresholds.OK != 99.5 || cfg.Thresholds.Warn != 98 {
		t.Fatalf("thresholds wrong: %+v", cfg.Thresholds)
	}
	if cfg.Rebuild != 250*time.Millisecond {
		t.Fatalf("rebuild interval wrong: %v", cfg.Rebuild)
	}

	// ensure defaults don’t crash if missing env
	os.Unsetenv("ADDR")
	_ = FromEnv()
}

func TestFromEnv_IgnoresBadValues(t *testing.T) {
	t.Setenv("RENDER_STYLE", "sparkles")
	t.Setenv("THRESHOLD_OK", "not-a-number")
	t.Setenv("THRESHOLD_WARN", "120")
	t.Setenv("REBUILD_INTERVAL_MS", "-5")

	cfg := FromEnv()

	if cfg.Style != page.StyleBars {
		t.Fatalf("unknown style should fall back to bars, got %v", cfg.Style)
	}
	if cfg.Thresholds.OK != 99 || cfg.Thresholds.Warn != 95 {
		t.Fatalf("bad threshold values should keep defaults: %+v", cfg.Thresholds)
	}
	if cfg.Rebuild != 30*time.Second {
		t.Fatalf("negative interval should keep default: %v", cfg.Rebuild)
	}
}
