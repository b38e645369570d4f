// Package transport implements the point-to-point, rank-addressed message
// channel between the dispatcher (rank 0) and W worker ranks (1..W) that the
// task-farm core communicates over.
//
// Ranks are goroutines rather than MPI processes or OS threads, so "sending"
// a message is pushing it onto the destination rank's mailbox and "receiving"
// is popping from one. Order is preserved per (src, dst) pair because each
// direction has its own internal/mailbox.Mailbox; there is deliberately no
// ordering relationship across different worker ranks, matching the spec's
// "no FIFO guarantee across different (src,dst) pairs."
package transport

import (
	"context"

	"github.com/pkg/errors"

	"github.com/alx/taskfarm/internal/mailbox"
	"github.com/alx/taskfarm/internal/taskmodel"
)

// ErrTransportClosed is returned by blocking operations when the run's
// context is cancelled (a fatal error elsewhere aborted the run).
var ErrTransportClosed = errors.New("transport: closed")

// resultEnvelope pairs a Result with the worker rank that produced it, so the
// dispatcher's wildcard receive can tell which slot to refill.
type resultEnvelope struct {
	rank   int
	result taskmodel.Result
}

// Transport is the shared rendezvous point for one dispatcher and W workers.
type Transport struct {
	taskBoxes  []*mailbox.Mailbox[taskmodel.Task] // taskBoxes[r-1] is dispatcher -> rank r
	resultBox  *mailbox.Mailbox[resultEnvelope]   // shared: any rank -> dispatcher
	numWorkers int
}

// New builds a transport for numWorkers worker ranks (ranks 1..numWorkers).
func New(numWorkers int) *Transport {
	tr := &Transport{
		taskBoxes:  make([]*mailbox.Mailbox[taskmodel.Task], numWorkers),
		resultBox:  mailbox.New[resultEnvelope](),
		numWorkers: numWorkers,
	}
	for i := range tr.taskBoxes {
		tr.taskBoxes[i] = mailbox.New[taskmodel.Task]()
	}
	return tr
}

// NumWorkers reports W, the number of worker ranks (the transport's group
// size minus the dispatcher).
func (t *Transport) NumWorkers() int {
	return t.numWorkers
}

// SendTask delivers a task to worker rank dst (1..NumWorkers). Blocking
// until "accepted" is trivial here: Push never blocks.
func (t *Transport) SendTask(dst int, task taskmodel.Task) error {
	if dst < 1 || dst > t.numWorkers {
		return errors.Errorf("transport: destination rank %d out of range [1,%d]", dst, t.numWorkers)
	}
	t.taskBoxes[dst-1].Push(task)
	return nil
}

// RecvTask is called by worker rank `self` to block for its next task.
func (t *Transport) RecvTask(ctx context.Context, self int) (taskmodel.Task, error) {
	if self < 1 || self > t.numWorkers {
		return taskmodel.Task{}, errors.Errorf("transport: rank %d out of range [1,%d]", self, t.numWorkers)
	}
	task, ok := t.taskBoxes[self-1].PopContext(ctx)
	if !ok {
		return taskmodel.Task{}, ErrTransportClosed
	}
	return task, nil
}

// SendResult is called by a worker to report a result back to the
// dispatcher.
func (t *Transport) SendResult(rank int, result taskmodel.Result) error {
	if rank < 1 || rank > t.numWorkers {
		return errors.Errorf("transport: source rank %d out of range [1,%d]", rank, t.numWorkers)
	}
	t.resultBox.Push(resultEnvelope{rank: rank, result: result})
	return nil
}

// RecvAnyResult is the dispatcher's wildcard receive: it blocks until any
// worker has produced a result and reports which rank it came from.
func (t *Transport) RecvAnyResult(ctx context.Context) (rank int, result taskmodel.Result, err error) {
	env, ok := t.resultBox.PopContext(ctx)
	if !ok {
		return 0, taskmodel.Result{}, ErrTransportClosed
	}
	return env.rank, env.result, nil
}
