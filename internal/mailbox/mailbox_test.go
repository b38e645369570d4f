package mailbox

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMailbox_PushPopOrder(t *testing.T) {
	m := New[int]()
	for i := 0; i < 10; i++ {
		m.Push(i)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, m.Pop())
	}
}

func TestMailbox_PopBlocksUntilPush(t *testing.T) {
	m := New[string]()
	done := make(chan string, 1)

	go func() {
		done <- m.Pop()
	}()

	time.Sleep(10 * time.Millisecond)
	m.Push("hello")

	select {
	case v := <-done:
		assert.Equal(t, "hello", v)
	case <-time.After(time.Second):
		t.Fatal("Pop never returned")
	}
}

func TestMailbox_PopContextCancelled(t *testing.T) {
	m := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	resultCh := make(chan bool, 1)
	go func() {
		_, ok := m.PopContext(ctx)
		resultCh <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case ok := <-resultCh:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("PopContext never returned after cancellation")
	}
}

func TestMailbox_ConcurrentProducers(t *testing.T) {
	m := New[int]()
	const producers = 8
	const perProducer = 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				m.Push(i)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, producers*perProducer, m.Len())

	count := 0
	for m.Len() > 0 {
		m.Pop()
		count++
	}
	assert.Equal(t, producers*perProducer, count)
}
