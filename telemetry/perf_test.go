package telemetry

import (
	"testing"
	"time"

	"github.com/pthm-cable/evosim/systems"
)

func runTicks(pc *PerfCollector, n int, phaseSleep map[string]time.Duration) {
	for i := 0; i < n; i++ {
		pc.StartTick()
		for _, phase := range phases {
			pc.StartPhase(phase)
			time.Sleep(phaseSleep[phase])
		}
		pc.EndTick()
	}
}

func TestPerfCollector_TracksEveryPhase(t *testing.T) {
	pc := NewPerfCollector(10)
	runTicks(pc, 5, map[string]time.Duration{systems.PhaseCreatures: 200 * time.Microsecond})

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	for _, phase := range phases {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("phase %q not tracked", phase)
		}
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)
	runTicks(pc, 12, nil)

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want window size 5", pc.sampleCount)
	}
	if stats := pc.Stats(); stats.MinTickDuration > stats.MaxTickDuration {
		t.Errorf("min %v > max %v", stats.MinTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)
	runTicks(pc, 5, map[string]time.Duration{
		systems.PhaseSnapshot:  10 * time.Microsecond,
		systems.PhaseCreatures: 2 * time.Millisecond,
	})

	stats := pc.Stats()
	if stats.PhasePct[systems.PhaseCreatures] <= stats.PhasePct[systems.PhaseSnapshot] {
		t.Errorf("creatures %v%% should exceed snapshot %v%%",
			stats.PhasePct[systems.PhaseCreatures], stats.PhasePct[systems.PhaseSnapshot])
	}

	row := stats.ToCSV(42)
	if row.WindowEnd != 42 || row.CreaturesPct != stats.PhasePct[systems.PhaseCreatures] {
		t.Errorf("ToCSV = %+v", row)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}
}
