// Package taskmodel defines the tagged task/result records exchanged between
// dispatcher and worker ranks, and their binary wire encoding.
//
// The in-process Transport (internal/transport) passes these values directly
// between goroutines; the MarshalBinary methods and the UnmarshalTask/
// UnmarshalResult functions exist so the
// exact same types could be dropped onto a real socket-backed transport
// unchanged, and so the wire layout named in the spec's external interfaces
// is itself property-tested.
package taskmodel

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Kind identifies which of the two workloads a Task/Result carries.
type Kind int

const (
	KindWordStats Kind = iota
	KindCCC
)

// SentinelFileID is the reserved fileId that signals a worker to exit.
const SentinelFileID int32 = -1

// WordStatsTask is the per-chunk payload sent to a worker.
type WordStatsTask struct {
	Chunk []byte
}

// CCCTask is the per-tau payload sent to a worker. X and Y are shared by
// every task for a given file; the dispatcher holds one backing array per
// file and slices it out of SignalFile.
type CCCTask struct {
	N   int32
	X   []float64
	Y   []float64
	Tau int32
}

// Task is a tagged union: exactly one of WordStats/CCC is populated,
// depending on Kind, unless Sentinel is set in which case neither is.
type Task struct {
	Kind      Kind
	FileID    int32
	Sentinel  bool
	WordStats WordStatsTask
	CCC       CCCTask
}

// NewSentinel builds the termination task for the given kind.
func NewSentinel(kind Kind) Task {
	return Task{Kind: kind, FileID: SentinelFileID, Sentinel: true}
}

// ChunkStats is the worker's per-chunk tokenization result for WordStats.
type ChunkStats struct {
	MaxLen     int32
	MaxVowel   int32
	WordLen    []int32   // indices [0, MaxLen]
	VowelByLen [][]int32 // [v][0, MaxLen], v in [0, MaxVowel]
}

// NewChunkStats allocates a ChunkStats sized for maxLen/maxVowel (inclusive).
func NewChunkStats(maxLen, maxVowel int32) ChunkStats {
	cs := ChunkStats{
		MaxLen:     maxLen,
		MaxVowel:   maxVowel,
		WordLen:    make([]int32, maxLen+1),
		VowelByLen: make([][]int32, maxVowel+1),
	}
	for v := range cs.VowelByLen {
		cs.VowelByLen[v] = make([]int32, maxLen+1)
	}
	return cs
}

// CCCResult is the worker's answer for one (fileId, tau) task.
type CCCResult struct {
	Tau   int32
	Value float64
}

// Result is a tagged union mirroring Task.
type Result struct {
	Kind       Kind
	WorkerRank int32
	FileID     int32
	WordStats  ChunkStats
	CCC        CCCResult
}

// MarshalBinary encodes a Task per the wire layout:
//
//	fileId:int32, then if fileId != sentinel:
//	  WordStats: chunkLen:int32, chunk:chunkLen*byte
//	  CCC:       N:int32, x:N*float64, y:N*float64, tau:int32
func (t Task) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, t.FileID); err != nil {
		return nil, err
	}
	if t.Sentinel {
		return buf.Bytes(), nil
	}

	switch t.Kind {
	case KindWordStats:
		if err := binary.Write(&buf, binary.LittleEndian, int32(len(t.WordStats.Chunk))); err != nil {
			return nil, err
		}
		if _, err := buf.Write(t.WordStats.Chunk); err != nil {
			return nil, err
		}
	case KindCCC:
		if err := binary.Write(&buf, binary.LittleEndian, t.CCC.N); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, t.CCC.X); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, t.CCC.Y); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, t.CCC.Tau); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("taskmodel: unknown kind %d", t.Kind)
	}
	return buf.Bytes(), nil
}

// UnmarshalTask decodes a Task previously produced by MarshalBinary. kind
// must be supplied by the caller because the wire format itself carries no
// workload tag (the worker knows its own kind at startup, per the spec).
func UnmarshalTask(kind Kind, data []byte) (Task, error) {
	r := bytes.NewReader(data)
	t := Task{Kind: kind}

	if err := binary.Read(r, binary.LittleEndian, &t.FileID); err != nil {
		return Task{}, err
	}
	if t.FileID == SentinelFileID {
		t.Sentinel = true
		return t, nil
	}

	switch kind {
	case KindWordStats:
		var chunkLen int32
		if err := binary.Read(r, binary.LittleEndian, &chunkLen); err != nil {
			return Task{}, err
		}
		chunk := make([]byte, chunkLen)
		if _, err := r.Read(chunk); err != nil && chunkLen > 0 {
			return Task{}, err
		}
		t.WordStats.Chunk = chunk
	case KindCCC:
		if err := binary.Read(r, binary.LittleEndian, &t.CCC.N); err != nil {
			return Task{}, err
		}
		t.CCC.X = make([]float64, t.CCC.N)
		if err := binary.Read(r, binary.LittleEndian, &t.CCC.X); err != nil {
			return Task{}, err
		}
		t.CCC.Y = make([]float64, t.CCC.N)
		if err := binary.Read(r, binary.LittleEndian, &t.CCC.Y); err != nil {
			return Task{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &t.CCC.Tau); err != nil {
			return Task{}, err
		}
	default:
		return Task{}, fmt.Errorf("taskmodel: unknown kind %d", kind)
	}
	return t, nil
}

// MarshalBinary encodes a Result per the wire layout:
//
//	WordStats: fileId:int32, maxLen:int32, maxVowel:int32, wordLen:(maxLen+1)*int32,
//	           then (maxVowel+1) rows of vowelByLen:(maxLen+1)*int32
//	CCC:       workerRank:int32, fileId:int32, tau:int32, value:float64
func (r Result) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	switch r.Kind {
	case KindWordStats:
		if err := binary.Write(&buf, binary.LittleEndian, r.FileID); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, r.WordStats.MaxLen); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, r.WordStats.MaxVowel); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, r.WordStats.WordLen); err != nil {
			return nil, err
		}
		for _, row := range r.WordStats.VowelByLen {
			if err := binary.Write(&buf, binary.LittleEndian, row); err != nil {
				return nil, err
			}
		}
	case KindCCC:
		if err := binary.Write(&buf, binary.LittleEndian, r.WorkerRank); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, r.FileID); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, r.CCC.Tau); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, r.CCC.Value); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("taskmodel: unknown kind %d", r.Kind)
	}
	return buf.Bytes(), nil
}

// UnmarshalResult decodes a Result previously produced by MarshalBinary.
func UnmarshalResult(kind Kind, data []byte) (Result, error) {
	r := bytes.NewReader(data)
	res := Result{Kind: kind}

	switch kind {
	case KindWordStats:
		if err := binary.Read(r, binary.LittleEndian, &res.FileID); err != nil {
			return Result{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &res.WordStats.MaxLen); err != nil {
			return Result{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &res.WordStats.MaxVowel); err != nil {
			return Result{}, err
		}
		res.WordStats.WordLen = make([]int32, res.WordStats.MaxLen+1)
		if err := binary.Read(r, binary.LittleEndian, &res.WordStats.WordLen); err != nil {
			return Result{}, err
		}
		res.WordStats.VowelByLen = make([][]int32, res.WordStats.MaxVowel+1)
		for v := range res.WordStats.VowelByLen {
			row := make([]int32, res.WordStats.MaxLen+1)
			if err := binary.Read(r, binary.LittleEndian, &row); err != nil {
				return Result{}, err
			}
			res.WordStats.VowelByLen[v] = row
		}
	case KindCCC:
		if err := binary.Read(r, binary.LittleEndian, &res.WorkerRank); err != nil {
			return Result{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &res.FileID); err != nil {
			return Result{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &res.CCC.Tau); err != nil {
			return Result{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &res.CCC.Value); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("taskmodel: unknown kind %d", kind)
	}
	return res, nil
}
