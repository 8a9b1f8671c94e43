package summary

// ServiceRecord is one monitored endpoint as written by the external
// collector. Field names match the summary.json it produces.
type ServiceRecord struct {
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Status      string         `json:"status"` // "up" | "down" | anything else means degraded
	UptimeDay   Percent        `json:"uptimeDay"`
	UptimeWeek  Percent        `json:"uptimeWeek"`
	UptimeMonth Percent        `json:"uptimeMonth"`
	UptimeYear  Percent        `json:"uptimeYear"`
	Uptime      DisplayPercent `json:"uptime"`
}
