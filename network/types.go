package network

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/walknet/core"
)

// Sentinel errors for network operations.
var (
	// ErrDuplicateNode is returned by AddNode when the ID is already present.
	ErrDuplicateNode = errors.New("network: duplicate node id")

	// ErrNodeNotFound is returned when an operation references a missing node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrStartNotFound is returned when the start node does not exist at trial time.
	ErrStartNotFound = errors.New("network: start node not found")

	// ErrGoalNotFound is returned when the goal is neither NoGoal nor an existing node.
	ErrGoalNotFound = errors.New("network: goal node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")
)

// NoGoal is the sentinel goal meaning "no node counts as success".
const NoGoal core.ID = math.MinInt

// Defaults taken from the reference training setup.
const (
	DefaultTrials        = 100
	DefaultPathLength    = 7
	DefaultReinforcement = 0.1
	DefaultStart         = core.ID(0)
)

// StopReason is the terminal state of one walk.
type StopReason int

const (
	// StoppedAtLimit: the step budget ran out.
	StoppedAtLimit StopReason = iota
	// StoppedAtDeadEnd: the current node has no outgoing edges.
	StoppedAtDeadEnd
	// StoppedAtGoal: the current node is the goal.
	StoppedAtGoal
	// StoppedNoChoice: the draw fell outside every edge range.
	StoppedNoChoice
)

// String implements fmt.Stringer.
func (s StopReason) String() string {
	switch s {
	case StoppedAtLimit:
		return "limit"
	case StoppedAtDeadEnd:
		return "dead_end"
	case StoppedAtGoal:
		return "goal"
	case StoppedNoChoice:
		return "no_choice"
	default:
		return fmt.Sprintf("StopReason(%d)", int(s))
	}
}

// Trial is the outcome of one walk from the start node.
type Trial struct {
	Path core.Path
	Stop StopReason
}

// Option configures a Network via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds training parameters and collaborators.
type Options struct {
	// Trials is the number of walks Train performs.
	Trials int

	// PathLength is the step budget of a single walk.
	PathLength int

	// Reinforcement is the magnitude added to (success) or removed from
	// (failure) every traversed edge.
	Reinforcement float64

	// Start is the node every walk begins from.
	Start core.ID

	// Goal is the node whose presence on a path marks success.
	Goal core.ID

	// Sampler supplies the uniform draws; the only source of randomness.
	Sampler core.Sampler

	// Logger receives debug traces of draws, paths and weight changes.
	Logger *slog.Logger

	// Observer, if set, sees each trial before it is reinforced.
	Observer Observer

	// Metrics, if set, counts trials, stops and reinforcements.
	Metrics *Metrics

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference defaults:
//   - 100 trials, path length 7, reinforcement 0.1
//   - start node 0, no goal
//   - deterministic sampler seeded with 1
//   - discarding logger, no observer, no metrics.
func DefaultOptions() Options {
	return Options{
		Trials:        DefaultTrials,
		PathLength:    DefaultPathLength,
		Reinforcement: DefaultReinforcement,
		Start:         DefaultStart,
		Goal:          NoGoal,
		Sampler:       core.NewSampler(0),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTrials sets the number of training walks (n >= 0).
func WithTrials(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: trials cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Trials = n
	}
}

// WithPathLength sets the per-walk step budget (n >= 0).
func WithPathLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: path length cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.PathLength = n
	}
}

// WithReinforcement sets the reinforcement magnitude (finite, >= 0).
func WithReinforcement(x float64) Option {
	return func(o *Options) {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			o.err = fmt.Errorf("%w: reinforcement must be finite and >= 0 (%g)", ErrOptionViolation, x)
			return
		}
		o.Reinforcement = x
	}
}

// WithStart sets the node every walk begins from.
func WithStart(id core.ID) Option {
	return func(o *Options) { o.Start = id }
}

// WithGoal sets the goal node. Existence is checked when trials run.
func WithGoal(id core.ID) Option {
	return func(o *Options) { o.Goal = id }
}

// WithSampler injects the source of uniform draws.
func WithSampler(s core.Sampler) Option {
	return func(o *Options) {
		if s != nil {
			o.Sampler = s
		}
	}
}

// WithSeed installs a deterministic sampler built from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Sampler = core.NewSampler(seed) }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a per-trial observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
