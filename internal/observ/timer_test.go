package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	load := tm.Begin("load")
	tm.End(load, "12 bytes")
	walk := tm.Begin("walk")
	tm.End(walk, "")
	tm.End(42, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Name != "load" || rep.Phases[0].Note != "12 bytes" {
		t.Fatalf("unexpected first phase: %+v", rep.Phases[0])
	}
	if rep.TotalMS < rep.Phases[0].DurationMS {
		t.Fatalf("total %f smaller than a phase %f", rep.TotalMS, rep.Phases[0].DurationMS)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:", "load", "// 12 bytes", "walk", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	if rep := NewTimer().Report(); rep.TotalMS != 0 || rep.Phases != nil {
		t.Fatalf("empty report = %+v", rep)
	}
}
