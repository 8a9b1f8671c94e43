package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/hamed0406/statuspage/internal/render"
)

// ---- test helpers ----

func setupServer(t *testing.T, summaryBody, pageBody string) (*Server, *httptest.Server) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "summary.json")
	output := filepath.Join(dir, "index.html")
	if summaryBody != "" {
		if err := os.WriteFile(input, []byte(summaryBody), 0o644); err != nil {
			t.Fatalf("fixture summary: %v", err)
		}
	}
	if pageBody != "" {
		if err := os.WriteFile(output, []byte(pageBody), 0o644); err != nil {
			t.Fatalf("fixture page: %v", err)
		}
	}

	log := zap.NewNop()
	srv := NewServer(log, input, output, render.DefaultThresholds(), NewHub(log))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

// ---- tests ----

func TestHealthz(t *testing.T) {
	_, ts := setupServer(t, "[]", "<html></html>")

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want 200", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "ok" {
		t.Fatalf("body=%q want ok", b)
	}
}

func TestServePage(t *testing.T) {
	_, ts := setupServer(t, "[]", "<html>status page</html>")

	for _, path := range []string{"/", "/index.html"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || string(b) != "<html>status page</html>" {
			t.Fatalf("GET %s: status=%d body=%q", path, resp.StatusCode, b)
		}
	}
}

func TestListServices(t *testing.T) {
	_, ts := setupServer(t, `[
		{"name":"API","url":"https://api.example.com","status":"up",
		 "uptimeDay":99.95,"uptimeWeek":"99.9%","uptime":"99.5%"},
		{"name":"Broken","status":"down","uptimeDay":40}
	]`, "")

	resp, err := http.Get(ts.URL + "/api/services")
	if err != nil {
		t.Fatalf("GET /api/services: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want 200", resp.StatusCode)
	}

	var rows []serviceRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "API" || rows[0].Severity != "ok" || rows[0].StatusText != "Operational" {
		t.Fatalf("row 0 wrong: %+v", rows[0])
	}
	if rows[0].UptimeWeek != 99.9 {
		t.Fatalf("row 0 week=%v want 99.9", rows[0].UptimeWeek)
	}
	if rows[1].Severity != "down" || rows[1].StatusText != "Outage" {
		t.Fatalf("row 1 wrong: %+v", rows[1])
	}
}

func TestListServices_InputMissing(t *testing.T) {
	_, ts := setupServer(t, "", "")

	resp, err := http.Get(ts.URL + "/api/services")
	if err != nil {
		t.Fatalf("GET /api/services: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d want 503", resp.StatusCode)
	}
}
