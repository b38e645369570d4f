package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alx/taskfarm/internal/taskmodel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTransport_SendRecvTaskPerRank(t *testing.T) {
	tr := New(3)
	ctx := context.Background()

	task := taskmodel.Task{Kind: taskmodel.KindCCC, FileID: 1, CCC: taskmodel.CCCTask{N: 1, X: []float64{1}, Y: []float64{1}, Tau: 0}}
	require.NoError(t, tr.SendTask(2, task))

	got, err := tr.RecvTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, task.FileID, got.FileID)
}

func TestTransport_OrderPreservedPerRank(t *testing.T) {
	tr := New(1)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, tr.SendTask(1, taskmodel.Task{FileID: int32(i)}))
	}
	for i := 0; i < 10; i++ {
		got, err := tr.RecvTask(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(i), got.FileID)
	}
}

func TestTransport_RecvAnyResultWildcard(t *testing.T) {
	tr := New(3)
	ctx := context.Background()

	require.NoError(t, tr.SendResult(2, taskmodel.Result{FileID: 5}))

	rank, result, err := tr.RecvAnyResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	assert.Equal(t, int32(5), result.FileID)
}

func TestTransport_RecvBlocksThenUnblocksOnCancel(t *testing.T) {
	tr := New(1)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := tr.RecvTask(ctx, 1)
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrTransportClosed)
	case <-time.After(time.Second):
		t.Fatal("RecvTask never returned after cancellation")
	}
}

func TestTransport_OutOfRangeRankRejected(t *testing.T) {
	tr := New(2)
	assert.Error(t, tr.SendTask(3, taskmodel.Task{}))
	assert.Error(t, tr.SendResult(0, taskmodel.Result{}))
}
