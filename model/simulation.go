package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// State is the lifecycle of a Simulation
type State int

const (
	Running State = iota
	Extinct
	Stable
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Extinct:
		return "Extinct"
	case Stable:
		return "Stable"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further step can change the simulation
func (s State) Terminal() bool {
	return s == Extinct || s == Stable
}

// StepResult is what a single call to Step reports back to the driver
type StepResult struct {
	Changed bool
	Grid    *Grid
	State   State
}

// Simulation owns the current generation and advances it one step at a
// time. Only the previous generation is compared against, so oscillators
// with a period of two or more keep running until the driver stops them.
type Simulation struct {
	current    *Grid
	state      State
	generation int
	rule       rules.Rule
	bounded    bool
}

// NewSimulation starts a simulation from initial. The simulation is always
// Running until the first Step, even if initial has no living cells.
func NewSimulation(initial *Grid, config utils.Config) (*Simulation, error) {
	if initial == nil {
		return nil, errors.Wrap(ErrMalformedGrid, "[NewSimulation] initial grid is nil")
	}
	return &Simulation{
		current: initial,
		state:   Running,
		rule:    rules.ApplyConwayRules,
		bounded: config.UseBoundedGrid,
	}, nil
}

// WithRule replaces the transition rule; nil restores Conway's rules
func (s *Simulation) WithRule(rule rules.Rule) *Simulation {
	if rule == nil {
		rule = rules.ApplyConwayRules
	}
	s.rule = rule
	return s
}

// Current returns the current generation. Grids are immutable, so the
// returned value stays valid after later steps.
func (s *Simulation) Current() *Grid {
	return s.current
}

// State returns the lifecycle state
func (s *Simulation) State() State {
	return s.state
}

// Generation returns how many steps changed the grid
func (s *Simulation) Generation() int {
	return s.generation
}

// Step advances the simulation by one generation. Terminal states are
// sticky: once Extinct or Stable, Step reports no change.
func (s *Simulation) Step() StepResult {
	if s.state.Terminal() {
		return StepResult{Grid: s.current, State: s.state}
	}

	next := s.current.NextGeneration(s.rule, s.bounded)
	if next.Equals(s.current) {
		if s.current.AnyAlive() {
			s.state = Stable
		} else {
			s.state = Extinct
		}
		return StepResult{Grid: s.current, State: s.state}
	}

	s.current = next
	s.generation++
	if !s.current.AnyAlive() {
		s.state = Extinct
	}
	return StepResult{Changed: true, Grid: s.current, State: s.state}
}
