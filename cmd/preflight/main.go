// cmd/preflight/main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	input := strings.TrimSpace(os.Getenv("INPUT_PATH"))
	if input == "" {
		input = "data/summary.json"
		warn("INPUT_PATH is empty; using default " + input)
	}
	output := strings.TrimSpace(os.Getenv("OUTPUT_PATH"))
	if output == "" {
		output = "public/index.html"
		warn("OUTPUT_PATH is empty; using default " + output)
	}

	b, err := os.ReadFile(input)
	if err != nil {
		fail("cannot read summary at " + input + ": " + err.Error())
	}
	var records []json.RawMessage
	if err := json.Unmarshal(b, &records); err != nil {
		fail("summary at " + input + " is not a JSON array: " + err.Error())
	}
	ok(fmt.Sprintf("summary readable: %d record(s)", len(records)))

	if dir := filepath.Dir(output); dir != "" && dir != "." {
		if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
			fail("output parent " + dir + " exists but is not a directory")
		}
	}
	ok("OUTPUT_PATH=" + output)

	if pageFile := strings.TrimSpace(os.Getenv("PAGE_FILE")); pageFile != "" {
		if _, err := os.Stat(pageFile); err != nil {
			warn("PAGE_FILE set but unreadable — defaults will be used: " + err.Error())
		} else {
			ok("PAGE_FILE=" + pageFile)
		}
	}

	if addr := strings.TrimSpace(os.Getenv("ADDR")); addr == "" {
		warn("ADDR is empty; statusd will use its default bind address.")
	} else {
		ok("ADDR=" + addr)
	}

	if style := strings.TrimSpace(os.Getenv("RENDER_STYLE")); style != "" && style != "bars" && style != "stripes" {
		warn("RENDER_STYLE=" + style + " is unknown; bars will be used.")
	}

	ok("preflight passed")
}
