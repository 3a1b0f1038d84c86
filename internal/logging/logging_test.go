package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureStd swaps os.Stdout and os.Stderr for pipes while fn runs.
func captureStd(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origOut, origErr

	var stdout, stderr bytes.Buffer
	_, _ = io.Copy(&stdout, outR)
	_, _ = io.Copy(&stderr, errR)
	return stdout.String(), stderr.String()
}

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		logger    Logger
		wantInfo  bool
		wantDebug bool
	}{
		{"Quiet", Logger{}, false, false},
		{"Verbose", Logger{Verbose: true}, true, false},
		{"Debug", Logger{Debug: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := captureStd(t, func() {
				tt.logger.Infof("writing %s", "config.ini")
				tt.logger.Debugf("step %d", 2)
			})

			if got := strings.Contains(stdout, "[info] writing config.ini"); got != tt.wantInfo {
				t.Errorf("info shown = %t, want %t (stdout: %q)", got, tt.wantInfo, stdout)
			}
			if got := strings.Contains(stdout, "[debug] step 2"); got != tt.wantDebug {
				t.Errorf("debug shown = %t, want %t (stdout: %q)", got, tt.wantDebug, stdout)
			}
		})
	}
}

func TestWarnAndErrorAlwaysShown(t *testing.T) {
	color.NoColor = true

	_, stderr := captureStd(t, func() {
		Logger{}.Warnf("input will be echoed")
		Logger{}.Errorf("disk %s", "full")
	})

	if !strings.Contains(stderr, "[warn] input will be echoed") {
		t.Errorf("Expected warning on stderr, got: %q", stderr)
	}
	if !strings.Contains(stderr, "[error] disk full") {
		t.Errorf("Expected error on stderr, got: %q", stderr)
	}
}

func TestErrorfAndReturn(t *testing.T) {
	color.NoColor = true

	var err error
	_, stderr := captureStd(t, func() {
		err = Logger{}.ErrorfAndReturn("failed to load %s", "config.toml")
	})

	if err == nil || err.Error() != "failed to load config.toml" {
		t.Errorf("Expected returned error 'failed to load config.toml', got: %v", err)
	}
	if !strings.Contains(stderr, "[error] failed to load config.toml") {
		t.Errorf("Expected logged error, got: %q", stderr)
	}
}
