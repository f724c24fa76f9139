package main

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/benledwon/trip-insights/pkg/config"
)

func TestSplitDirs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "single directory",
			input: "/data/raw",
			want:  []string{"/data/raw"},
		},
		{
			name:  "multiple with whitespace",
			input: " /a , /b ,/c",
			want:  []string{"/a", "/b", "/c"},
		},
		{
			name:  "empty segments dropped",
			input: "/a,,/b,",
			want:  []string{"/a", "/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitDirs(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitDirs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnalyzeInitialize_Overrides(t *testing.T) {
	cmd := &analyzeCommand{
		inputDirs: []string{"/data/raw"},
		pattern:   "Trips_2019_Q*.csv",
		format:    "json",
		top:       5,
		noExport:  true,
	}

	cfg, log, err := cmd.initialize()
	if err != nil {
		t.Fatalf("initialize() error: %v", err)
	}
	if log == nil {
		t.Fatal("initialize() returned nil logger")
	}

	if len(cfg.InputDirs) != 1 || cfg.InputDirs[0] != "/data/raw" {
		t.Errorf("InputDirs = %v", cfg.InputDirs)
	}
	if cfg.FilePattern != "Trips_2019_Q*.csv" {
		t.Errorf("FilePattern = %q", cfg.FilePattern)
	}
	if cfg.Display.Mode != "json" {
		t.Errorf("Mode = %q, want json", cfg.Display.Mode)
	}
	if cfg.Reports.TopStations != 5 {
		t.Errorf("TopStations = %d, want 5", cfg.Reports.TopStations)
	}
	if cfg.OutputDir != "" {
		t.Errorf("OutputDir = %q, want empty with -no-export", cfg.OutputDir)
	}
}

func TestAnalyzeInitialize_Defaults(t *testing.T) {
	cmd := &analyzeCommand{}

	cfg, _, err := cmd.initialize()
	if err != nil {
		t.Fatalf("initialize() error: %v", err)
	}

	want := config.Default()
	if cfg.FilePattern != want.FilePattern {
		t.Errorf("FilePattern = %q, want default %q", cfg.FilePattern, want.FilePattern)
	}
	if cfg.Reports.TopStations != want.Reports.TopStations {
		t.Errorf("TopStations = %d, want default %d", cfg.Reports.TopStations, want.Reports.TopStations)
	}
	if cfg.Display.Mode != "table" {
		t.Errorf("Mode = %q, want table", cfg.Display.Mode)
	}
}

func TestAnalyzeInitialize_BadFormat(t *testing.T) {
	cmd := &analyzeCommand{format: "fancy"}

	_, _, err := cmd.initialize()
	if !errors.Is(err, config.ErrInvalidDisplayMode) {
		t.Errorf("initialize() error = %v, want ErrInvalidDisplayMode", err)
	}
}

func TestWatchInitialize_Overrides(t *testing.T) {
	cmd := &watchCommand{
		inputDirs: []string{"/data/raw"},
		format:    "json",
		debounce:  2 * time.Second,
	}

	cfg, _, err := cmd.initialize()
	if err != nil {
		t.Fatalf("initialize() error: %v", err)
	}

	if len(cfg.InputDirs) != 1 || cfg.InputDirs[0] != "/data/raw" {
		t.Errorf("InputDirs = %v", cfg.InputDirs)
	}
	if cfg.Display.Mode != "json" {
		t.Errorf("Mode = %q, want json", cfg.Display.Mode)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("Debounce = %v, want 2s", cfg.Watch.Debounce)
	}
}
