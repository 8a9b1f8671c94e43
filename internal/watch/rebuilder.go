package watch

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/statuspage/internal/page"
	"github.com/hamed0406/statuspage/internal/summary"
)

// Notifier receives a signal after every successful rebuild.
type Notifier interface {
	Rebuilt(at time.Time)
}

// Rebuilder polls the summary file and regenerates the page whenever the
// collector has written a new one. A failed rebuild keeps the previous
// page on disk.
type Rebuilder struct {
	Logger     *zap.Logger
	InputPath  string
	OutputPath string
	Options    page.Options
	Interval   time.Duration
	Notifier   Notifier

	lastMod time.Time
}

func NewRebuilder(
	logger *zap.Logger,
	inputPath, outputPath string,
	opts page.Options,
	interval time.Duration,
	notifier Notifier,
) *Rebuilder {
	if interval < 0 {
		interval = 0
	}
	return &Rebuilder{
		Logger:     logger,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Options:    opts,
		Interval:   interval,
		Notifier:   notifier,
	}
}

// BuildOnce renders and writes the page unconditionally, remembering the
// input's mtime so the poll loop can skip unchanged files.
func (r *Rebuilder) BuildOnce() error {
	records, err := summary.Load(r.InputPath)
	if err != nil {
		return err
	}
	body, err := page.Render(records, r.Options)
	if err != nil {
		return err
	}
	if err := page.Write(r.OutputPath, body); err != nil {
		return err
	}
	if fi, err := os.Stat(r.InputPath); err == nil {
		r.lastMod = fi.ModTime()
	}

	r.Logger.Info("page_built",
		zap.String("output", r.OutputPath),
		zap.Int("services", len(records)),
	)
	if r.Notifier != nil {
		r.Notifier.Rebuilt(time.Now().UTC())
	}
	return nil
}

// Run starts the poll loop. Stops when ctx is cancelled.
func (r *Rebuilder) Run(ctx context.Context) {
	if r.Interval == 0 {
		// disabled
		r.Logger.Info("rebuilder_disabled")
		return
	}
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("rebuilder_stopped")
			return
		case <-t.C:
			r.pollOnce()
		}
	}
}

func (r *Rebuilder) pollOnce() {
	fi, err := os.Stat(r.InputPath)
	if err != nil {
		r.Logger.Warn("rebuilder_stat_error", zap.Error(err))
		return
	}
	if !fi.ModTime().After(r.lastMod) {
		return
	}
	if err := r.BuildOnce(); err != nil {
		// keep serving the previous page
		r.Logger.Warn("rebuilder_build_error", zap.Error(err))
	}
}
