package render

// Severity is the three-level health bucket derived from an uptime
// percentage. Ordering matters: Down < Warn < OK.
type Severity int

const (
	SeverityDown Severity = iota
	SeverityWarn
	SeverityOK
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarn:
		return "warn"
	default:
		return "down"
	}
}

// Rank exposes the ordering for monotonicity checks and comparisons.
func (s Severity) Rank() int { return int(s) }

// Thresholds are the classification cut-offs, inclusive on the lower
// bound of each tier: >= OK is ok, >= Warn is warn, below that is down.
type Thresholds struct {
	OK   float64
	Warn float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{OK: 99, Warn: 95}
}

func (t Thresholds) Classify(uptimePercent float64) Severity {
	switch {
	case uptimePercent >= t.OK:
		return SeverityOK
	case uptimePercent >= t.Warn:
		return SeverityWarn
	default:
		return SeverityDown
	}
}

// StatusLabel maps the collector's status string to a display label.
// Total over strings: anything unrecognized (including empty) is Degraded.
func StatusLabel(status string) string {
	switch status {
	case "up":
		return "Operational"
	case "down":
		return "Outage"
	default:
		return "Degraded"
	}
}
