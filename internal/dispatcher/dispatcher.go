// Package dispatcher implements rank 0: the demand-driven bag-of-tasks
// scheduler that drives the INIT -> DISPATCHING -> DRAINING -> DONE state
// machine shared by both workloads. It owns all input state through a
// TaskSource and never inspects task payloads, which is what lets the same
// scheduling loop serve WordStats and CCC without knowing which one it is
// running.
package dispatcher

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/alx/taskfarm/internal/metrics"
	"github.com/alx/taskfarm/internal/taskmodel"
	"github.com/alx/taskfarm/internal/transport"
)

// ErrConfig tags a dispatcher misconfiguration (e.g. zero workers).
var ErrConfig = errors.New("dispatcher: invalid configuration")

// State is the dispatcher's run-wide lifecycle stage.
type State int

const (
	StateInit State = iota
	StateDispatching
	StateDraining
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateDispatching:
		return "DISPATCHING"
	case StateDraining:
		return "DRAINING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// TaskSource produces the next unit of work. It returns ok=false once every
// task has been produced; the dispatcher keeps calling it after that (once
// per rank it retires), so it must keep returning ok=false.
type TaskSource interface {
	NextTask() (taskmodel.Task, bool)
}

// ResultHandler folds one collected result into whatever aggregate the
// caller is building. A handler error aborts the run.
type ResultHandler func(taskmodel.Result) error

// Dispatcher runs the rank-0 scheduling loop over a fixed transport.
type Dispatcher struct {
	tr       *transport.Transport
	kind     taskmodel.Kind
	source   TaskSource
	onResult ResultHandler
	logger   *zap.Logger

	state State
	stats metrics.RunStats
}

// New builds a Dispatcher. tr.NumWorkers() must be >= 1.
func New(tr *transport.Transport, kind taskmodel.Kind, source TaskSource, onResult ResultHandler, logger *zap.Logger) (*Dispatcher, error) {
	if tr.NumWorkers() < 1 {
		return nil, errors.Wrap(ErrConfig, "at least one worker is required")
	}
	return &Dispatcher{
		tr:       tr,
		kind:     kind,
		source:   source,
		onResult: onResult,
		logger:   logger,
		state:    StateInit,
	}, nil
}

// State reports the dispatcher's current lifecycle stage.
func (d *Dispatcher) State() State {
	return d.state
}

// Run executes the bootstrap-then-steady-state scheduling loop: one task is
// sent to every worker rank up front, then each collected result triggers
// either the next task back to the same rank (keeping it busy) or, once the
// source is exhausted, a sentinel that retires that rank. Run returns once
// every rank has been retired (DONE) or ctx is cancelled by a fatal error
// elsewhere in the run.
func (d *Dispatcher) Run(ctx context.Context) error {
	numWorkers := d.tr.NumWorkers()
	active := numWorkers

	d.state = StateDispatching
	for rank := 1; rank <= numWorkers; rank++ {
		retired, err := d.dispatchNextOrSentinel(rank)
		if err != nil {
			return err
		}
		if retired {
			active--
		}
	}

	for active > 0 {
		if active < numWorkers {
			d.state = StateDraining
		}

		rank, result, err := d.tr.RecvAnyResult(ctx)
		if err != nil {
			return errors.Wrap(err, "dispatcher: collect result")
		}
		d.stats.ResultsCollected++

		if err := d.onResult(result); err != nil {
			return errors.Wrapf(err, "dispatcher: handle result for fileId %d", result.FileID)
		}

		retired, err := d.dispatchNextOrSentinel(rank)
		if err != nil {
			return err
		}
		if retired {
			active--
		}
	}

	d.state = StateDone
	d.stats.LogDone(d.logger, numWorkers)
	return nil
}

// dispatchNextOrSentinel sends the next task to rank if the source has one,
// otherwise sends the termination sentinel and reports the rank retired.
func (d *Dispatcher) dispatchNextOrSentinel(rank int) (retired bool, err error) {
	task, ok := d.source.NextTask()
	if !ok {
		if err := d.tr.SendTask(rank, taskmodel.NewSentinel(d.kind)); err != nil {
			return false, errors.Wrapf(err, "dispatcher: send sentinel to rank %d", rank)
		}
		d.stats.SentinelsSent++
		return true, nil
	}

	if err := d.tr.SendTask(rank, task); err != nil {
		return false, errors.Wrapf(err, "dispatcher: send task to rank %d", rank)
	}
	d.stats.TasksDispatched++
	return false, nil
}
