package main

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mosa3ed/launchicon/internal/config"
	"github.com/mosa3ed/launchicon/internal/eventlog"
)

func testLogger() (*bytes.Buffer, func() string) {
	var buf bytes.Buffer
	return &buf, func() string { return buf.String() }
}

func writeSource(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{20, 120, 60, 255})
		}
	}
	path := filepath.Join(dir, "assets", "images", "app.jpg")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
	return path
}

func tempStore(t *testing.T) *eventlog.SQLiteStore {
	t.Helper()
	s, err := eventlog.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// --- parseArgs ---

func TestParseArgsNoArgsGenerates(t *testing.T) {
	cmd, rest, cfgPath, err := parseArgs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cmd != "generate" || len(rest) != 0 || cfgPath != "" {
		t.Errorf("parseArgs(nil) = %q, %v, %q", cmd, rest, cfgPath)
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args    []string
		cmd     string
		rest    []string
		cfgPath string
	}{
		{[]string{"--config", "x.json"}, "generate", nil, "x.json"},
		{[]string{"-c", "x.json", "generate"}, "generate", nil, "x.json"},
		{[]string{"help"}, "help", nil, ""},
		{[]string{"--help"}, "help", nil, ""},
		{[]string{"-V"}, "version", nil, ""},
		{[]string{"history"}, "history", []string{}, ""},
		{[]string{"history", "5"}, "history", []string{"5"}, ""},
	}
	for _, tt := range tests {
		cmd, rest, cfgPath, err := parseArgs(tt.args)
		if err != nil {
			t.Errorf("parseArgs(%v): %v", tt.args, err)
			continue
		}
		if cmd != tt.cmd || cfgPath != tt.cfgPath || strings.Join(rest, " ") != strings.Join(tt.rest, " ") {
			t.Errorf("parseArgs(%v) = %q, %v, %q; want %q, %v, %q",
				tt.args, cmd, rest, cfgPath, tt.cmd, tt.rest, tt.cfgPath)
		}
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--config"},
		{"bogus"},
		{"generate", "extra"},
	} {
		if _, _, _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%v) should fail", args)
		}
	}
}

// --- generateLaunchIcon ---

func TestGenerateLaunchIconCreatesOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Source = writeSource(t, dir, 1024, 768)
	cfg.Output = filepath.Join(dir, "android", "app", "src", "main", "res", "mipmap-xxxhdpi", "launcher_icon.png")

	buf, out := testLogger()
	store := tempStore(t)
	generateLaunchIcon(cfg, newLogger(buf, false), store)

	if _, err := os.Stat(cfg.Output); err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(out(), "created "+cfg.Output) {
		t.Errorf("log missing success line:\n%s", out())
	}
	if !strings.Contains(out(), "content=200x150") {
		t.Errorf("log missing content dimensions:\n%s", out())
	}

	recs, err := store.Recent(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(recs))
	}
	r := recs[0]
	if r.Status != eventlog.StatusCreated || r.Width != 200 || r.Height != 150 || r.Y != 25 {
		t.Errorf("record = %+v", r)
	}
}

func TestGenerateLaunchIconMissingSource(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Source = filepath.Join(dir, "missing.jpg")
	cfg.Output = filepath.Join(dir, "out", "launcher_icon.png")

	buf, out := testLogger()
	store := tempStore(t)
	generateLaunchIcon(cfg, newLogger(buf, false), store)

	if _, err := os.Stat(filepath.Dir(cfg.Output)); !os.IsNotExist(err) {
		t.Errorf("output directory should not be created, stat err = %v", err)
	}
	if !strings.Contains(out(), "source image not found") || !strings.Contains(out(), cfg.Source) {
		t.Errorf("log should name the missing source:\n%s", out())
	}

	recs, _ := store.Recent(0)
	if len(recs) != 1 || recs[0].Status != eventlog.StatusMissingSource {
		t.Errorf("records = %+v", recs)
	}
}

func TestGenerateLaunchIconUndecodableSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.jpg")
	if err := os.WriteFile(src, []byte("plain text, not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Source = src
	cfg.Output = filepath.Join(dir, "out", "launcher_icon.png")

	buf, out := testLogger()
	generateLaunchIcon(cfg, newLogger(buf, false), nil)

	if !strings.Contains(out(), "error creating "+cfg.Output) {
		t.Errorf("log should name the destination:\n%s", out())
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Errorf("output should not exist, stat err = %v", err)
	}
}

func TestGenerateLaunchIconDegenerateSize(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Source = writeSource(t, dir, 400, 2)
	cfg.Output = filepath.Join(dir, "icon.png")
	cfg.Size = 100

	buf, out := testLogger()
	store := tempStore(t)
	generateLaunchIcon(cfg, newLogger(buf, false), store)

	if !strings.Contains(out(), "no visible content") {
		t.Errorf("log should explain the degenerate size:\n%s", out())
	}
	recs, _ := store.Recent(0)
	if len(recs) != 1 || recs[0].Status != eventlog.StatusFailed || recs[0].Error == "" {
		t.Errorf("records = %+v", recs)
	}
}

func TestGenerateLaunchIconNotificationFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Source = writeSource(t, dir, 64, 64)
	cfg.Output = filepath.Join(dir, "icon.png")
	cfg.MQTT = config.MQTT{Broker: "tcp://127.0.0.1:19999", Topic: "build/assets"}

	buf, out := testLogger()
	generateLaunchIcon(cfg, newLogger(buf, false), nil)

	if _, err := os.Stat(cfg.Output); err != nil {
		t.Fatalf("output should still be written: %v", err)
	}
	if !strings.Contains(out(), "build notification failed") {
		t.Errorf("log should warn about the notification:\n%s", out())
	}
}

// --- formatRecord ---

func TestFormatRecord(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	tests := []struct {
		r    eventlog.Record
		want []string
	}{
		{
			eventlog.Record{Time: ts, Output: "icon.png", Size: 200, Width: 200, Height: 150, Y: 25, Status: eventlog.StatusCreated},
			[]string{"2026-03-01 12:00:00", "created", "icon.png", "200x200", "content 200x150 at 0,25"},
		},
		{
			eventlog.Record{Time: ts, Source: "app.jpg", Status: eventlog.StatusMissingSource},
			[]string{"missing_source", "app.jpg"},
		},
		{
			eventlog.Record{Time: ts, Output: "icon.png", Status: eventlog.StatusFailed, Error: "boom"},
			[]string{"failed", "icon.png", "boom"},
		},
	}
	for _, tt := range tests {
		got := formatRecord(tt.r)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("formatRecord(%+v) = %q, missing %q", tt.r, got, w)
			}
		}
	}
}
