// Package paramstore holds the current run parameters, notifies observers
// when a value changes and recomputes result sets on demand.
package paramstore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/ode"
)

// Observer is called after a parameter it subscribed to has changed.
type Observer func()

// Store is safe for concurrent use. Observers run on the goroutine that
// made the change, after the new value is visible to readers.
type Store struct {
	mu        sync.Mutex
	problem   ode.Problem
	params    ode.Params
	observers map[string][]Observer
}

// New returns a store for p. It does not validate params; call Validate
// first when they come from user input.
func New(p ode.Problem, params ode.Params) *Store {
	return &Store{
		problem:   p,
		params:    params,
		observers: make(map[string][]Observer),
	}
}

func (s *Store) Problem() ode.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.problem
}

func (s *Store) Params() ode.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

func (s *Store) Get(name string) (float64, error) {
	return Get(s.Params(), name)
}

// Subscribe registers fn for name. Observers of one name run in
// registration order.
func (s *Store) Subscribe(name string, fn Observer) error {
	if !Known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	s.mu.Lock()
	s.observers[name] = append(s.observers[name], fn)
	s.mu.Unlock()
	return nil
}

// Set stores v under name and notifies its observers. Setting the value
// already stored is a no-op. An invalid value leaves the store unchanged.
func (s *Store) Set(name string, v float64) error {
	s.mu.Lock()
	if err := Check(s.problem, s.params, name, v); err != nil {
		s.mu.Unlock()
		return err
	}
	cur, _ := Get(s.params, name)
	if cur == v {
		s.mu.Unlock()
		return nil
	}
	s.params, _ = With(s.params, name, v)
	obs := s.snapshot(name)
	s.mu.Unlock()

	for _, fn := range obs {
		fn()
	}
	return nil
}

// SetString parses text as a float and sets it.
func (s *Store) SetString(name, text string) error {
	if !Known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return fmt.Errorf("%s: invalid number %q: %w", name, text, err)
	}
	return s.Set(name, v)
}

// Apply replaces every parameter at once. Observers of each changed
// parameter are notified in Names order once all values are stored.
func (s *Store) Apply(params ode.Params) error {
	s.mu.Lock()
	if err := Validate(s.problem, params); err != nil {
		s.mu.Unlock()
		return err
	}

	var obs []Observer
	for _, name := range names {
		cur, _ := Get(s.params, name)
		next, _ := Get(params, name)
		if cur != next {
			obs = append(obs, s.snapshot(name)...)
		}
	}
	s.params = params
	s.mu.Unlock()

	for _, fn := range obs {
		fn()
	}
	return nil
}

// Initialize calls every observer of every parameter once.
func (s *Store) Initialize() {
	s.mu.Lock()
	var obs []Observer
	for _, name := range names {
		obs = append(obs, s.snapshot(name)...)
	}
	s.mu.Unlock()

	for _, fn := range obs {
		fn()
	}
}

func (s *Store) snapshot(name string) []Observer {
	obs := make([]Observer, len(s.observers[name]))
	copy(obs, s.observers[name])
	return obs
}

// Trajectories recomputes every method at the current parameters.
func (s *Store) Trajectories() ([]analysis.Curve, error) {
	p, params := s.state()
	return analysis.Trajectories(p, params)
}

func (s *Store) GlobalErrors() ([]analysis.Curve, error) {
	p, params := s.state()
	return analysis.GlobalErrors(p, params)
}

func (s *Store) LocalErrors() ([]analysis.Curve, error) {
	p, params := s.state()
	return analysis.LocalErrors(p, params)
}

func (s *Store) StepErrors() ([]analysis.Curve, error) {
	p, params := s.state()
	return analysis.StepErrorCurves(p, params)
}

// Report computes all result sets from one consistent snapshot.
func (s *Store) Report() (*analysis.Report, error) {
	p, params := s.state()
	return analysis.Run(p, params)
}

func (s *Store) state() (ode.Problem, ode.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.problem, s.params
}
