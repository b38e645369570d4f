// Package mailbox provides a thread-safe, blocking FIFO used as the transport
// primitive between dispatcher and worker ranks.
//
// It is the message-passing collapse of the "shared-memory monitor with
// condition variables" coordination variant described in the task-farm
// design notes: a Mailbox's mutex is the monitor's mutual exclusion, and
// Push/Pop's condition-variable signalling is the monitor's one-shot
// handshake, reused for every message instead of a single "files are ready"
// event.
package mailbox

import (
	"context"
	"sync"

	"github.com/alx/taskfarm/internal/queue"
)

// Mailbox is a single-direction, unbounded FIFO of messages of type T.
// Multiple producers may Push concurrently; Pop/PopContext block until a
// message is available.
type Mailbox[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    *queue.Queue[T]
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	m := &Mailbox[T]{q: queue.New[T]()}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Push enqueues msg and wakes one blocked receiver, if any. Push never
// blocks: the underlying queue grows on demand.
func (m *Mailbox[T]) Push(msg T) {
	m.mu.Lock()
	m.q.Push(msg)
	m.mu.Unlock()
	m.cond.Signal()
}

// Pop blocks until a message is available and returns it.
func (m *Mailbox[T]) Pop() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.q.Empty() {
		m.cond.Wait()
	}
	return m.q.Pop()
}

// PopContext blocks until a message is available or ctx is done. ok is false
// when ctx was cancelled first.
func (m *Mailbox[T]) PopContext(ctx context.Context) (msg T, ok bool) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			m.cond.Broadcast()
		case <-done:
		}
	}()
	defer close(done)

	m.mu.Lock()
	defer m.mu.Unlock()
	for m.q.Empty() {
		if ctx.Err() != nil {
			var zero T
			return zero, false
		}
		m.cond.Wait()
	}
	return m.q.Pop(), true
}

// Len reports the number of messages currently queued.
func (m *Mailbox[T]) Len() int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.Len()
}
