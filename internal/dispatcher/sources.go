package dispatcher

import (
	"go.uber.org/zap"

	"github.com/alx/taskfarm/internal/signalfile"
	"github.com/alx/taskfarm/internal/taskmodel"
	"github.com/alx/taskfarm/internal/tokenizer"
)

// WordStatsSource adapts a tokenizer.ChunkReader over one or more files into
// a TaskSource, producing one WordStats task per chunk of at most bufSize
// bytes (longer only when a single word is longer than bufSize).
type WordStatsSource struct {
	reader  *tokenizer.ChunkReader
	bufSize int
	logger  *zap.Logger
}

// NewWordStatsSource wraps reader, chunking at bufSize bytes per task.
func NewWordStatsSource(reader *tokenizer.ChunkReader, bufSize int, logger *zap.Logger) *WordStatsSource {
	return &WordStatsSource{reader: reader, bufSize: bufSize, logger: logger}
}

// NextTask implements dispatcher.TaskSource.
func (s *WordStatsSource) NextTask() (taskmodel.Task, bool) {
	chunk, fileID, ok, err := s.reader.GetTextChunk(s.bufSize)
	if err != nil {
		s.logger.Error("chunk read failed", zap.Error(err))
		return taskmodel.Task{}, false
	}
	if !ok {
		return taskmodel.Task{}, false
	}
	return taskmodel.Task{
		Kind:      taskmodel.KindWordStats,
		FileID:    fileID,
		WordStats: taskmodel.WordStatsTask{Chunk: chunk},
	}, true
}

// CCCSource produces one task per tau in [0, N) for a single signal file,
// per "N and vectors loaded once when the first task for this file is
// produced; vectors live until last tau for this file is dispatched."
type CCCSource struct {
	fileID  int32
	sf      *signalfile.SignalFile
	nextTau int32
}

// NewCCCSource builds a task source over a single already-loaded file.
func NewCCCSource(fileID int32, sf *signalfile.SignalFile) *CCCSource {
	return &CCCSource{fileID: fileID, sf: sf}
}

// NextTask implements dispatcher.TaskSource.
func (s *CCCSource) NextTask() (taskmodel.Task, bool) {
	if s.nextTau >= s.sf.N {
		return taskmodel.Task{}, false
	}
	tau := s.nextTau
	s.nextTau++
	return taskmodel.Task{
		Kind:   taskmodel.KindCCC,
		FileID: s.fileID,
		CCC: taskmodel.CCCTask{
			N:   s.sf.N,
			X:   s.sf.X,
			Y:   s.sf.Y,
			Tau: tau,
		},
	}, true
}

// MultiCCCSource chains a CCCSource per file in order, so the whole run
// (possibly many files) still looks like one TaskSource to the dispatcher.
// Exhausting one file's source advances to the next; files are opened
// lazily so a file's vectors aren't held in memory before its first task is
// produced, and released (the dispatcher's own reference to them, not the
// still-open output handle) once its last tau has been dispatched, per
// "vectors live until last tau for this file is dispatched."
//
// onFileOpened is invoked once per file, right after it is loaded, so the
// caller can retain the open *signalfile.SignalFile (keyed by fileID) for
// as long as it takes results to finish arriving and WriteResults/
// CompareResults to run — a concern MultiCCCSource itself has no visibility
// into, since it only knows about dispatch order, not collection order.
type MultiCCCSource struct {
	paths        []string
	withRef      bool
	onFileOpened func(fileID int32, sf *signalfile.SignalFile)
	idx          int
	cur          *CCCSource
	logger       *zap.Logger
}

// NewMultiCCCSource builds a source over paths, opened in order.
func NewMultiCCCSource(paths []string, withRef bool, onFileOpened func(int32, *signalfile.SignalFile), logger *zap.Logger) *MultiCCCSource {
	return &MultiCCCSource{paths: paths, withRef: withRef, onFileOpened: onFileOpened, logger: logger}
}

// NextTask implements dispatcher.TaskSource.
func (s *MultiCCCSource) NextTask() (taskmodel.Task, bool) {
	for {
		if s.cur != nil {
			if task, ok := s.cur.NextTask(); ok {
				return task, true
			}
			s.cur = nil
		}

		if s.idx >= len(s.paths) {
			return taskmodel.Task{}, false
		}

		path := s.paths[s.idx]
		fileID := int32(s.idx)
		s.idx++

		sf, err := signalfile.Load(path, s.withRef)
		if err != nil {
			s.logger.Error("failed to load signal file", zap.String("path", path), zap.Error(err))
			continue
		}
		s.onFileOpened(fileID, sf)
		s.cur = NewCCCSource(fileID, sf)
	}
}
