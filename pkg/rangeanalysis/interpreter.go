package rangeanalysis

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// History records, per node, the environment that was in scope the last
// time that node's fixed-point step committed — the snapshot each
// subsequent visit joins against to decide whether anything changed.
type History map[string]Environment

// Options configures Analyze. The zero value is not useful directly; use
// the With* functions.
type Options struct {
	maxVisits int
	logger    *logrus.Logger
}

// Option configures an Analyze run.
type Option func(*Options)

// WithMaxVisits bounds how many times the interpreter will re-process a
// single node before giving up on convergence there. It resolves the
// termination question left open by unrestricted fixed-point iteration;
// see DESIGN.md.
func WithMaxVisits(n int) Option {
	return func(o *Options) { o.maxVisits = n }
}

// WithLogger directs the interpreter's per-visit diagnostics to l instead
// of the logger Analyze otherwise creates (a new logrus logger at Warn
// level).
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return Options{maxVisits: 4096, logger: logger}
}

// Analyze walks g from its entry node to a fixed point, narrowing each
// variable's interval set along every edge and collecting a Diagnostic
// wherever a comparison's current ranges already settle its outcome.
func Analyze(g Graph, opts ...Option) (diagnostics []Diagnostic, err error) {
	defer recoverInvariant(&err)

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visits := make(map[string]int)
	history := make(History)
	w := &walker{graph: g, visits: visits, history: history, opts: &o}
	w.step(g.First(), Environment{})
	return w.diagnostics, nil
}

type walker struct {
	graph       Graph
	visits      map[string]int
	history     History
	opts        *Options
	diagnostics []Diagnostic
}

// step performs one fixed-point iteration at location: it joins the
// incoming environment against the last published snapshot, and if
// nothing has changed since that snapshot, stops — this is the
// interpreter's only termination condition besides the visit cap.
func (w *walker) step(location string, env Environment) {
	stmt, ok := w.graph.ValueOf(location)
	if !ok {
		raiseInvariant(fmt.Errorf("%w: %s", ErrUnknownNode, location))
	}

	if prior, seen := w.history[location]; seen {
		anyChanged := false
		for key, value := range prior {
			if cur, has := env[key]; has {
				joined := cur.Union(value)
				if !cur.Equal(joined) {
					env[key] = joined
					anyChanged = true
				}
			} else {
				env[key] = value
				anyChanged = true
			}
		}
		for key := range env {
			if _, ok := prior[key]; !ok {
				anyChanged = true
			}
		}
		if !anyChanged {
			return
		}
	}

	w.visits[location]++
	if w.visits[location] > w.opts.maxVisits {
		w.opts.logger.WithField("location", location).
			Warn("visit cap reached before convergence; halting propagation from this node")
		return
	}

	w.history[location] = env.Clone()
	w.opts.logger.WithFields(logrus.Fields{"location": location, "visit": w.visits[location]}).
		Debug("visiting node")

	var slices []slice
	switch stmt.Kind {
	case StmtVariableDeclaration:
		for _, d := range stmt.Declarations {
			env[d.Identifier] = Eval(d.Initializer, env)
		}
	case StmtVariableAssignment:
		env[stmt.AssignLeft] = Eval(stmt.AssignRight, env)
	case StmtComparison:
		var diags []Diagnostic
		slices, diags = handleComparison(location, stmt.CompareLeft, stmt.CompareOp, stmt.CompareRight, env)
		w.diagnostics = append(w.diagnostics, diags...)
	}

	succs, ok := w.graph.SuccessorsOf(location)
	if !ok {
		raiseInvariant(fmt.Errorf("%w: %s", ErrUnknownNode, location))
	}
	for _, succ := range succs {
		next := env.Clone()
		for _, sl := range slices {
			var chosen Range
			switch succ.Value {
			case EdgeTrue:
				chosen = sl.pass
			case EdgeFalse:
				chosen = sl.fail
			default:
				raiseInvariant(fmt.Errorf("%w: %s -> %s", ErrMalformedEdge, location, succ.Key))
			}
			next[sl.name] = next[sl.name].IntersectRange(chosen)
		}
		w.step(succ.Key, next)
	}
}
