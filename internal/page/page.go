package page

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hamed0406/statuspage/internal/render"
	"github.com/hamed0406/statuspage/internal/summary"
)

// Style selects how a card visualizes its uptime windows.
type Style string

const (
	// StyleBars renders four fixed windows, each classified on its own.
	// Fully deterministic: the same input always yields the same bytes.
	StyleBars Style = "bars"
	// StyleStripes renders one overall percentage as a shuffled tick
	// histogram. Deterministic only under a fixed Seed.
	StyleStripes Style = "stripes"
)

// ErrWrite marks a failure to create the output directory or write the
// page. Fatal, no retry.
var ErrWrite = errors.New("status page write failed")

type Options struct {
	Content    Content
	Style      Style
	Thresholds render.Thresholds
	Seed       int64 // stripe shuffle seed; 0 means wall clock
}

// Render produces the full HTML document for the given records, one card
// per record in input order. An empty record list renders a valid page
// with zero cards.
func Render(records []summary.ServiceRecord, opts Options) ([]byte, error) {
	if opts.Thresholds == (render.Thresholds{}) {
		opts.Thresholds = render.DefaultThresholds()
	}
	if opts.Content.Title == "" {
		opts.Content = DefaultContent()
	}

	b := render.Builder{Thresholds: opts.Thresholds}
	cards := make([]render.Card, 0, len(records))
	switch opts.Style {
	case StyleStripes:
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		for _, rec := range records {
			cards = append(cards, b.StripeCard(rec, rng))
		}
	default:
		for _, rec := range records {
			cards = append(cards, b.Card(rec))
		}
	}

	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, pageData{
		Content: opts.Content,
		Cards:   cards,
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// Write puts the rendered document at path, creating parent directories
// as needed and overwriting any previous page.
func Write(path string, body []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", ErrWrite, dir, err)
		}
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrWrite, path, err)
	}
	return nil
}

type pageData struct {
	Content Content
	Cards   []render.Card
}

var pageTmpl = template.Must(template.New("status").Parse(pageHTML))

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Content.Title}}</title>
<style>
:root{--ok:#2fbf71;--warn:#f0a202;--down:#e5484d;--fg:#1b1f24;--muted:#6a737d;--bg:#f6f8fa}
*{box-sizing:border-box}
body{margin:0;font-family:-apple-system,"Segoe UI",Roboto,sans-serif;color:var(--fg);background:var(--bg)}
header{max-width:720px;margin:0 auto;padding:48px 16px 8px}
header h1{margin:0 0 4px;font-size:28px}
header p{margin:0;color:var(--muted)}
main{max-width:720px;margin:0 auto;padding:16px}
.card{background:#fff;border:1px solid #d8dee4;border-radius:8px;padding:16px;margin-bottom:16px}
.card-head{display:flex;align-items:center;gap:10px;flex-wrap:wrap}
.card-head h2{margin:0;font-size:17px}
.pill{font-size:12px;font-weight:600;padding:2px 10px;border-radius:999px;color:#fff}
.pill-ok{background:var(--ok)}
.pill-warn{background:var(--warn)}
.pill-down{background:var(--down)}
.overall{margin-left:auto;color:var(--muted);font-size:13px}
.link{flex-basis:100%;font-size:13px;color:var(--muted);text-decoration:none;overflow-wrap:anywhere}
.bars{display:grid;grid-template-columns:repeat(4,1fr);gap:8px;margin-top:12px}
.bar{border-radius:6px;padding:8px;text-align:center;color:#fff}
.bar-ok{background:var(--ok)}
.bar-warn{background:var(--warn)}
.bar-down{background:var(--down)}
.bar-label{display:block;font-size:11px;opacity:.85}
.bar-value{display:block;font-size:14px;font-weight:600}
.stripe{display:flex;gap:1px;margin-top:12px}
.tick{flex:1;height:28px;border-radius:1px}
.tick-ok{background:var(--ok)}
.tick-warn{background:var(--warn)}
.tick-down{background:var(--down)}
.empty{color:var(--muted);text-align:center;padding:32px 0}
footer{max-width:720px;margin:0 auto;padding:8px 16px 48px;color:var(--muted);font-size:13px}
footer a{color:var(--muted)}
</style>
</head>
<body>
<header>
<h1>{{.Content.Title}}</h1>
<p>{{.Content.Description}}</p>
</header>
<main>
{{range .Cards}}<section class="card">
<div class="card-head">
<span class="pill pill-{{.Pill}}">{{.StatusText}}</span>
<h2>{{.Name}}</h2>
{{with .Uptime}}<span class="overall">{{.}}</span>{{end}}
<a class="link" href="{{.URL}}" rel="noopener">{{.URL}}</a>
</div>
{{if .Segments}}<div class="bars">
{{range .Segments}}<div class="bar bar-{{.Severity}}"><span class="bar-label">{{.Label}}</span><span class="bar-value">{{printf "%.2f" .Value}}%</span></div>
{{end}}</div>
{{end}}{{if .Ticks}}<div class="stripe">{{range .Ticks}}<i class="tick tick-{{.}}"></i>{{end}}</div>
{{end}}</section>
{{else}}<p class="empty">No services configured.</p>
{{end}}</main>
{{if .Content.Footer}}<footer>
{{range .Content.Footer}}<a href="{{.URL}}" rel="noopener">{{.Text}}</a>
{{end}}</footer>
{{end}}</body>
</html>
`
