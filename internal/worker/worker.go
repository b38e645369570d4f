// Package worker implements one worker rank's loop: receive a task, run the
// kernel for its workload, send back a result, repeat until the sentinel
// task arrives. Adapted from the teacher's Worker.DoWork, generalized from
// "read one file chunk" to "run the CCC kernel or the tokenizer over one
// task" and from a channel pair to the rank-addressed internal/transport.
package worker

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/alx/taskfarm/internal/ccckernel"
	"github.com/alx/taskfarm/internal/taskmodel"
	"github.com/alx/taskfarm/internal/tokenizer"
	"github.com/alx/taskfarm/internal/transport"
)

// Worker runs one rank's receive/compute/send loop.
type Worker struct {
	rank   int
	kind   taskmodel.Kind
	tr     *transport.Transport
	logger *zap.Logger
}

// New builds a worker for the given rank and transport. kind fixes which
// kernel this worker runs for its whole lifetime (a rank never mixes
// workloads within one run).
func New(rank int, kind taskmodel.Kind, tr *transport.Transport, logger *zap.Logger) *Worker {
	return &Worker{rank: rank, kind: kind, tr: tr, logger: logger}
}

// Run blocks, processing tasks until the sentinel arrives or ctx is
// cancelled. It returns nil on clean sentinel-triggered exit.
func (w *Worker) Run(ctx context.Context) error {
	for {
		task, err := w.tr.RecvTask(ctx, w.rank)
		if err != nil {
			return errors.Wrapf(err, "worker %d: recv", w.rank)
		}
		if task.Sentinel {
			w.logger.Debug("sentinel received, exiting", zap.Int("rank", w.rank))
			return nil
		}

		result, err := w.process(task)
		if err != nil {
			return errors.Wrapf(err, "worker %d: fileId %d", w.rank, task.FileID)
		}

		if err := w.tr.SendResult(w.rank, result); err != nil {
			return errors.Wrapf(err, "worker %d: send result", w.rank)
		}
	}
}

func (w *Worker) process(task taskmodel.Task) (taskmodel.Result, error) {
	switch w.kind {
	case taskmodel.KindWordStats:
		return w.processWordStats(task)
	case taskmodel.KindCCC:
		return w.processCCC(task)
	default:
		return taskmodel.Result{}, errors.Errorf("worker %d: unknown kind %d", w.rank, w.kind)
	}
}

func (w *Worker) processWordStats(task taskmodel.Task) (taskmodel.Result, error) {
	cs, err := tokenizer.Tokenize(task.WordStats.Chunk)
	if err != nil {
		return taskmodel.Result{}, errors.Wrapf(err, "tokenize fileId %d", task.FileID)
	}
	return taskmodel.Result{
		Kind:       taskmodel.KindWordStats,
		WorkerRank: int32(w.rank),
		FileID:     task.FileID,
		WordStats:  cs,
	}, nil
}

func (w *Worker) processCCC(task taskmodel.Task) (taskmodel.Result, error) {
	t := task.CCC
	value, err := ccckernel.Correlate(t.X, t.Y, int(t.Tau))
	if err != nil {
		return taskmodel.Result{}, errors.Wrapf(err, "correlate fileId %d tau %d", task.FileID, t.Tau)
	}

	return taskmodel.Result{
		Kind:       taskmodel.KindCCC,
		WorkerRank: int32(w.rank),
		FileID:     task.FileID,
		CCC:        taskmodel.CCCResult{Tau: t.Tau, Value: value},
	}, nil
}
