package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// statusctl prints a terminal view of what statusd is serving.
func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}

	resp, err := http.Get(api + "/api/services")
	if err != nil {
		fmt.Println("Error contacting statusd:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Println("statusd returned status:", resp.Status)
		os.Exit(1)
	}

	var rows []struct {
		Name       string  `json:"name"`
		StatusText string  `json:"status_text"`
		Severity   string  `json:"severity"`
		UptimeDay  float64 `json:"uptime_day"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		fmt.Println("Error decoding response:", err)
		os.Exit(1)
	}

	if len(rows) == 0 {
		fmt.Println("No services configured.")
		return
	}
	for _, row := range rows {
		fmt.Printf("%-24s %-5s %-12s %6.2f%%\n", row.Name, row.Severity, row.StatusText, row.UptimeDay)
	}
}
