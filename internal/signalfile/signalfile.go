// Package signalfile implements the binary codec for CCC input/output files:
// two equal-length signals, plus either a stored reference correlation (for
// compare mode) or the computed correlation to append (append mode).
package signalfile

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrIO tags failures reading or writing a signal file.
var ErrIO = errors.New("signalfile: I/O error")

// SignalFile holds one file's decoded samples. Reference is nil unless the
// file was opened in compare mode and carried a stored R[] vector.
type SignalFile struct {
	Path      string
	N         int32
	X         []float64
	Y         []float64
	Reference []float64 // len == N if present, else nil

	f *os.File
}

// Load reads N, x[] and y[] from path. If withReference is true it also
// reads the trailing N doubles as the stored reference correlation.
// The file handle stays open (positioned right after whatever was read) so
// WriteResults can append in place without reopening.
func Load(path string, withReference bool) (*SignalFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "open %s: %v", path, err)
	}

	sf := &SignalFile{Path: path, f: f}

	if err := binary.Read(f, binary.LittleEndian, &sf.N); err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrIO, "read N from %s: %v", path, err)
	}
	if sf.N <= 0 {
		f.Close()
		return nil, errors.Wrapf(ErrIO, "%s: N must be positive, got %d", path, sf.N)
	}

	sf.X = make([]float64, sf.N)
	if err := binary.Read(f, binary.LittleEndian, &sf.X); err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrIO, "read x[] from %s: %v", path, err)
	}
	sf.Y = make([]float64, sf.N)
	if err := binary.Read(f, binary.LittleEndian, &sf.Y); err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrIO, "read y[] from %s: %v", path, err)
	}

	if withReference {
		sf.Reference = make([]float64, sf.N)
		if err := binary.Read(f, binary.LittleEndian, &sf.Reference); err != nil {
			f.Close()
			return nil, errors.Wrapf(ErrIO, "read reference R[] from %s: %v", path, err)
		}
	}

	return sf, nil
}

// Close releases the underlying file handle.
func (sf *SignalFile) Close() error {
	return sf.f.Close()
}

// WriteResults writes the computed R[] vector (indexed by tau, len == N) to
// the file right after the two signals, the position Load leaves the handle
// at when no reference is read. cmd/ccc calls it only once every tau for
// this file has been stored, per the no-partial-results-on-fatal-error rule.
func (sf *SignalFile) WriteResults(r []float64) error {
	if int32(len(r)) != sf.N {
		return errors.Errorf("signalfile: %s: R[] length %d != N %d", sf.Path, len(r), sf.N)
	}
	if _, err := sf.f.Seek(4+16*int64(sf.N), io.SeekStart); err != nil {
		return errors.Wrapf(ErrIO, "seek %s: %v", sf.Path, err)
	}
	if err := binary.Write(sf.f, binary.LittleEndian, r); err != nil {
		return errors.Wrapf(ErrIO, "write R[] to %s: %v", sf.Path, err)
	}
	return nil
}

// CompareResult is the outcome of comparing a computed R[] against the
// file's stored reference.
type CompareResult struct {
	N         int32
	Mismatches int32
	MaxAbsDiff float64
}

// CompareResults compares computed against sf.Reference, which must already
// be loaded (Load was called with withReference=true). tol is the maximum
// per-element absolute difference that still counts as a match.
func (sf *SignalFile) CompareResults(computed []float64, tol float64) (CompareResult, error) {
	if sf.Reference == nil {
		return CompareResult{}, errors.Errorf("signalfile: %s: no reference loaded", sf.Path)
	}
	if int32(len(computed)) != sf.N {
		return CompareResult{}, errors.Errorf("signalfile: %s: computed length %d != N %d", sf.Path, len(computed), sf.N)
	}

	res := CompareResult{N: sf.N}
	for i, ref := range sf.Reference {
		diff := computed[i] - ref
		if diff < 0 {
			diff = -diff
		}
		if diff > res.MaxAbsDiff {
			res.MaxAbsDiff = diff
		}
		if diff > tol {
			res.Mismatches++
		}
	}
	return res, nil
}
