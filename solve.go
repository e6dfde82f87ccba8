package pipeloop

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pipeloop/classify"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/tile"
	"github.com/katalvlaran/pipeloop/trace"
)

// Option configures Solve.
type Option func(*Options)

// Options holds the tunable parameters of Solve.
type Options struct {
	// Logger receives one debug event per stage. Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// Trace is passed through to trace.Trace.
	Trace []trace.Option
}

// DefaultOptions returns Options with a no-op logger and no trace options.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes stage events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTraceHook installs fn as the per-step hook of the loop walk.
func WithTraceHook(fn func(step int, p gridgraph.Pos, t tile.Tile) error) Option {
	return func(o *Options) {
		o.Trace = append(o.Trace, trace.WithOnStep(fn))
	}
}

// WithMaxSteps bounds the loop walk; see trace.WithMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.Trace = append(o.Trace, trace.WithMaxSteps(n))
	}
}

// Report is the outcome of Solve.
type Report struct {
	Rows, Cols int

	Entry      gridgraph.Pos
	EntryShape tile.Tile

	// LoopLength is the number of steps around the loop.
	LoopLength int
	// Farthest is the greatest distance along the loop from the entry.
	Farthest int

	Interior int
	Exterior int

	Grid      *gridgraph.Grid
	Loop      *trace.Loop
	Classes   *classify.Result
	Distances *trace.DistanceResult
}

// Solve parses r and analyzes the grid; see Analyze.
func Solve(r io.Reader, opts ...Option) (*Report, error) {
	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, err
	}

	return Analyze(g, opts...)
}

// SolveString is Solve over an in-memory grid.
func SolveString(s string, opts ...Option) (*Report, error) {
	return Solve(strings.NewReader(s), opts...)
}

// Analyze runs the loop pipeline on a freshly loaded grid: trace the loop,
// resolve the entry's shape, classify every cell and measure distances.
// The grid's entry is resolved as a side effect, so a grid can be analyzed
// only once.
func Analyze(g *gridgraph.Grid, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, trace.ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.With().Int("rows", g.Rows()).Int("cols", g.Cols()).Logger()

	loop, err := trace.Trace(g, o.Trace...)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("steps", loop.Steps).Stringer("entry", loop.Entry).Msg("loop traced")

	shape, err := trace.ResolveEntry(g, loop)
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("shape", shape).Msg("entry resolved")

	classes, err := classify.Classify(g, loop)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("interior", classes.Interior).Int("exterior", classes.Exterior).Msg("tiles classified")

	dist, err := trace.Distances(g, loop)
	if err != nil {
		return nil, err
	}
	if dist.Max != loop.Farthest() {
		return nil, fmt.Errorf("%w: farthest cell is %d steps away, want %d",
			trace.ErrMalformedLoop, dist.Max, loop.Farthest())
	}
	log.Debug().Int("farthest", dist.Max).Stringer("at", dist.Farthest).Msg("distances measured")

	return &Report{
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Entry:      loop.Entry,
		EntryShape: shape,
		LoopLength: loop.Steps,
		Farthest:   loop.Farthest(),
		Interior:   classes.Interior,
		Exterior:   classes.Exterior,
		Grid:       g,
		Loop:       loop,
		Classes:    classes,
		Distances:  dist,
	}, nil
}
