package workflow

import (
	"math"
	"testing"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		cursor   int
		fraction float64
		label    string
		clamped  bool
	}{
		{"second of four", 4, 1, 0.5, "2 / 4", false},
		{"single step", 1, 0, 1.0, "1 / 1", false},
		{"second of three", 3, 1, 2.0 / 3.0, "2 / 3", false},
		{"last step", 3, 2, 1.0, "3 / 3", false},
		{"negative cursor", 3, -1, 1.0 / 3.0, "1 / 3", true},
		{"cursor past end", 3, 7, 1.0, "3 / 3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ComputeProgress(tt.total, tt.cursor)
			if !ok {
				t.Fatal("ComputeProgress() ok = false for non-empty list")
			}
			if math.Abs(p.Fraction()-tt.fraction) > 1e-9 {
				t.Errorf("Fraction() = %v, want %v", p.Fraction(), tt.fraction)
			}
			if p.Label() != tt.label {
				t.Errorf("Label() = %q, want %q", p.Label(), tt.label)
			}
			if p.Clamped != tt.clamped {
				t.Errorf("Clamped = %v, want %v", p.Clamped, tt.clamped)
			}
			if p.Requested != tt.cursor {
				t.Errorf("Requested = %d, want %d", p.Requested, tt.cursor)
			}
		})
	}
}

func TestComputeProgress_Empty(t *testing.T) {
	if _, ok := ComputeProgress(0, 0); ok {
		t.Error("ComputeProgress(0, 0) should report no progress")
	}
	if _, ok := ComputeProgress(-2, 0); ok {
		t.Error("ComputeProgress(-2, 0) should report no progress")
	}
}

func TestComputeProgress_PercentInRange(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for cursor := -2; cursor < total+2; cursor++ {
			p, ok := ComputeProgress(total, cursor)
			if !ok {
				t.Fatalf("ComputeProgress(%d, %d) not ok", total, cursor)
			}
			if pct := p.Percent(); pct <= 0 || pct > 100 {
				t.Errorf("Percent() = %v for total=%d cursor=%d, want (0, 100]", pct, total, cursor)
			}
		}
	}
}
