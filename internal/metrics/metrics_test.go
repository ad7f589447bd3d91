package metrics

import (
	"math"
	"testing"
)

func TestMaxError(t *testing.T) {
	m := NewMaxError()

	m.Observe(1, 0.5)
	m.Observe(2, -3)
	m.Observe(3, 1)

	if m.Value() != 3 {
		t.Errorf("expected max 3, got %f", m.Value())
	}
	if m.At() != 2 {
		t.Errorf("expected max at x=2, got %f", m.At())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestRMSError(t *testing.T) {
	m := NewRMSError()
	if m.Value() != 0 {
		t.Error("expected zero with no samples")
	}

	m.Observe(0, 3)
	m.Observe(1, 4)

	expected := math.Sqrt(12.5)
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected rms %f, got %f", expected, m.Value())
	}
}

func TestFinalError(t *testing.T) {
	m := NewFinalError()

	m.Observe(0, 1)
	m.Observe(1, 7)
	if m.Value() != 7 {
		t.Errorf("expected 7, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestDefaultsNames(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Defaults() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		seen[m.Name()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 metrics, got %d", len(seen))
	}
}
