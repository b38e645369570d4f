package dispatcher

import (
	"encoding/binary"
	"io"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/alx/taskfarm/internal/signalfile"
	"github.com/alx/taskfarm/internal/tokenizer"
)

func TestWordStatsSource_YieldsChunksThenExhausts(t *testing.T) {
	reader := tokenizer.NewChunkReader([]io.Reader{strings.NewReader("Hello, world!\n")})
	source := NewWordStatsSource(reader, 1024, zap.NewNop())

	task, ok := source.NextTask()
	if !ok {
		t.Fatal("expected a task")
	}
	if string(task.WordStats.Chunk) != "Hello, world!\n" {
		t.Fatalf("chunk = %q", task.WordStats.Chunk)
	}

	if _, ok := source.NextTask(); ok {
		t.Fatal("expected exhaustion after the only file's content is consumed")
	}
}

// TestWordStatsSource_ChunkTokenizesIntoTwoWords is the end-to-end check for
// spec scenario 4/5: a chunk straight out of WordStatsSource must still
// carry the delimiter between "Hello," and "world!", so Tokenize reports
// two five-letter words instead of merging them into one ten-letter word.
func TestWordStatsSource_ChunkTokenizesIntoTwoWords(t *testing.T) {
	reader := tokenizer.NewChunkReader([]io.Reader{strings.NewReader("Hello, world!\n")})
	source := NewWordStatsSource(reader, 16*1024, zap.NewNop())

	task, ok := source.NextTask()
	if !ok {
		t.Fatal("expected a task")
	}

	cs, err := tokenizer.Tokenize(task.WordStats.Chunk)
	if err != nil {
		t.Fatal(err)
	}
	if cs.WordLen[5] != 2 {
		t.Fatalf("wordLen[5] = %d, want 2 (got chunk %q)", cs.WordLen[5], task.WordStats.Chunk)
	}
	var total int32
	for _, n := range cs.WordLen {
		total += n
	}
	if total != 2 {
		t.Fatalf("total words = %d, want 2", total)
	}
}

func TestCCCSource_YieldsOneTaskPerTau(t *testing.T) {
	sf := &signalfile.SignalFile{N: 3, X: []float64{1, 1, 1}, Y: []float64{1, 1, 1}}
	source := NewCCCSource(0, sf)

	var taus []int32
	for {
		task, ok := source.NextTask()
		if !ok {
			break
		}
		taus = append(taus, task.CCC.Tau)
	}

	if len(taus) != 3 {
		t.Fatalf("got %d tasks, want 3", len(taus))
	}
	for i, tau := range taus {
		if tau != int32(i) {
			t.Fatalf("taus = %v, want [0,1,2]", taus)
		}
	}
}

func TestMultiCCCSource_ChainsFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	path1 := writeTestSignalFile(t, dir, "a.bin", []float64{1, 0}, []float64{1, 2})
	path2 := writeTestSignalFile(t, dir, "b.bin", []float64{1, 1, 1}, []float64{1, 1, 1})

	opened := map[int32]*signalfile.SignalFile{}
	source := NewMultiCCCSource([]string{path1, path2}, false, func(fileID int32, sf *signalfile.SignalFile) {
		opened[fileID] = sf
	}, zap.NewNop())

	var fileIDs []int32
	for {
		task, ok := source.NextTask()
		if !ok {
			break
		}
		fileIDs = append(fileIDs, task.FileID)
	}

	if len(fileIDs) != 5 { // 2 taus for file 0, 3 for file 1
		t.Fatalf("got %d tasks, want 5", len(fileIDs))
	}
	if len(opened) != 2 {
		t.Fatalf("opened %d files, want 2", len(opened))
	}
	for _, sf := range opened {
		sf.Close()
	}
}

func writeTestSignalFile(t *testing.T, dir, name string, x, y []float64) string {
	t.Helper()
	path := dir + "/" + name

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, int32(len(x))); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(f, binary.LittleEndian, x); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(f, binary.LittleEndian, y); err != nil {
		t.Fatal(err)
	}
	return path
}
