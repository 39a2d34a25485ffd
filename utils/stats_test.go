package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(0, 100, 40, 500*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("AveragePopulation = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("GenerationsPerSecond = %v, want 2", s.GenerationsPerSecond)
	}

	s.Update(1, 200, 60, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatal("zero duration must not change GenerationsPerSecond")
	}
	if s.TotalGenerations != 1 || s.ActiveCells != 200 || s.BoundingBoxSize != 60 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
