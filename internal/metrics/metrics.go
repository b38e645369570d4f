// Package metrics adapts the teacher thread-pool's Metrics struct to the
// task-farm's dispatcher: instead of submitted/queued/spawned goroutine
// counts it tracks the quantities the DONE-state log line actually needs.
package metrics

import "go.uber.org/zap"

// RunStats accumulates dispatcher-wide counters over the life of one run.
// It is owned by a single goroutine (the dispatcher loop) so it needs no
// locking of its own.
type RunStats struct {
	TasksDispatched  uint32
	ResultsCollected uint32
	SentinelsSent    uint32
}

// LogDone emits the run summary once the dispatcher reaches DONE.
func (s RunStats) LogDone(logger *zap.Logger, numWorkers int) {
	logger.Info("run complete",
		zap.Uint32("tasksDispatched", s.TasksDispatched),
		zap.Uint32("resultsCollected", s.ResultsCollected),
		zap.Uint32("sentinelsSent", s.SentinelsSent),
		zap.Int("numWorkers", numWorkers),
	)
}
