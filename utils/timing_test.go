package utils

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestDurationUS(t *testing.T) {
	d := 1234*time.Microsecond + 567*time.Nanosecond
	got := DurationUS(d)
	if math.Abs(got-1234.567) > 0.001 {
		t.Fatalf("want 1234.567µs, got %.3f", got)
	}
}

func TestPrintTimingStats(t *testing.T) {
	var buf bytes.Buffer
	oldVerbose, oldOutput := Verbose, Output
	Verbose, Output = true, &buf
	defer func() { Verbose, Output = oldVerbose, oldOutput }()

	stats := &TimingStats{
		TotalTime:    10 * time.Second,
		TrainingTime: 8 * time.Second,
	}
	PrintTimingStats(stats, 4)

	out := buf.String()
	if !strings.Contains(out, "TIMING STATISTICS") {
		t.Errorf("output missing header:\n%s", out)
	}
	if !strings.Contains(out, "Epochs completed: 4") {
		t.Errorf("output missing epoch count:\n%s", out)
	}
}

func TestPrintTimingStatsQuiet(t *testing.T) {
	var buf bytes.Buffer
	oldVerbose, oldOutput := Verbose, Output
	Verbose, Output = false, &buf
	defer func() { Verbose, Output = oldVerbose, oldOutput }()

	PrintTimingStats(&TimingStats{TotalTime: time.Second}, 1)

	if buf.Len() != 0 {
		t.Errorf("quiet mode wrote output: %q", buf.String())
	}
}
