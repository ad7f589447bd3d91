package metrics

import "math"

// Metric folds an error series into a single value.
type Metric interface {
	Name() string
	Observe(x, err float64)
	Value() float64
	Reset()
}

// Defaults returns fresh instances of the standard summary metrics.
func Defaults() []Metric {
	return []Metric{NewMaxError(), NewRMSError(), NewFinalError()}
}

type MaxError struct {
	max float64
	at  float64
}

func NewMaxError() *MaxError {
	return &MaxError{}
}

func (m *MaxError) Name() string { return "max" }

func (m *MaxError) Observe(x, err float64) {
	if math.Abs(err) > m.max {
		m.max = math.Abs(err)
		m.at = x
	}
}

func (m *MaxError) Value() float64 { return m.max }

// At returns the x where the largest error was observed.
func (m *MaxError) At() float64 { return m.at }

func (m *MaxError) Reset() {
	m.max = 0
	m.at = 0
}

type RMSError struct {
	sumSq   float64
	samples int
}

func NewRMSError() *RMSError {
	return &RMSError{}
}

func (r *RMSError) Name() string { return "rms" }

func (r *RMSError) Observe(x, err float64) {
	r.sumSq += err * err
	r.samples++
}

func (r *RMSError) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMSError) Reset() {
	r.sumSq = 0
	r.samples = 0
}

type FinalError struct {
	last float64
}

func NewFinalError() *FinalError {
	return &FinalError{}
}

func (f *FinalError) Name() string { return "final" }

func (f *FinalError) Observe(x, err float64) { f.last = err }

func (f *FinalError) Value() float64 { return f.last }

func (f *FinalError) Reset() { f.last = 0 }
