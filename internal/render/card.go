package render

import (
	"math"
	"math/rand"

	"github.com/hamed0406/statuspage/internal/summary"
)

// StripeTicks is the fixed tick count of a stripe-histogram card.
const StripeTicks = 120

// Segment is one uptime window on a card: a fixed label, the normalized
// percentage, and its severity.
type Segment struct {
	Label    string
	Value    float64
	Severity Severity
}

// Card is the presentation unit for one service. Segments is populated in
// bar style, Ticks in stripe style; the other stays nil.
type Card struct {
	Name       string
	URL        string
	StatusText string
	Pill       Severity
	Uptime     string
	Segments   []Segment
	Ticks      []Severity
}

// Builder turns summary records into cards using one set of thresholds.
type Builder struct {
	Thresholds Thresholds
}

// Card builds a windowed-bars card: four fixed windows, each classified on
// its own, with the pill following the trailing-24h value.
func (b Builder) Card(rec summary.ServiceRecord) Card {
	windows := []struct {
		label string
		value summary.Percent
	}{
		{"24h", rec.UptimeDay},
		{"7d", rec.UptimeWeek},
		{"30d", rec.UptimeMonth},
		{"365d", rec.UptimeYear},
	}
	segs := make([]Segment, 0, len(windows))
	for _, w := range windows {
		segs = append(segs, Segment{
			Label:    w.label,
			Value:    w.value.Float(),
			Severity: b.Thresholds.Classify(w.value.Float()),
		})
	}
	return Card{
		Name:       rec.Name,
		URL:        rec.URL,
		StatusText: StatusLabel(rec.Status),
		Pill:       b.Thresholds.Classify(rec.UptimeDay.Float()),
		Uptime:     string(rec.Uptime),
		Segments:   segs,
	}
}

// StripeCard builds a stripe-histogram card: a single overall percentage
// rendered as StripeTicks colored ticks, unhealthy ticks in proportion to
// the downtime share, shuffled by rng. Callers own the seed, so a fixed
// seed gives reproducible output.
func (b Builder) StripeCard(rec summary.ServiceRecord, rng *rand.Rand) Card {
	overall := firstNonZero(
		rec.UptimeYear.Float(),
		rec.UptimeMonth.Float(),
		rec.UptimeWeek.Float(),
		rec.UptimeDay.Float(),
	)

	bad := int(math.Round(StripeTicks * (100 - overall) / 100))
	if bad < 0 {
		bad = 0
	}
	if bad > StripeTicks {
		bad = StripeTicks
	}

	// Unhealthy ticks split evenly between down and warn; warn takes the
	// odd one out.
	ticks := make([]Severity, 0, StripeTicks)
	for i := 0; i < bad/2; i++ {
		ticks = append(ticks, SeverityDown)
	}
	for i := bad / 2; i < bad; i++ {
		ticks = append(ticks, SeverityWarn)
	}
	for len(ticks) < StripeTicks {
		ticks = append(ticks, SeverityOK)
	}
	rng.Shuffle(len(ticks), func(i, j int) {
		ticks[i], ticks[j] = ticks[j], ticks[i]
	})

	return Card{
		Name:       rec.Name,
		URL:        rec.URL,
		StatusText: StatusLabel(rec.Status),
		Pill:       b.Thresholds.Classify(overall),
		Uptime:     string(rec.Uptime),
		Ticks:      ticks,
	}
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
