// Package fixtures generates synthetic WordStats text corpora and CCC
// signal files for exercising the farm without hand-built inputs, adapted
// from the teacher's file generator: same SHA-256 checksum-per-file and
// terminal progress bar, pointed at our two input formats instead of
// throwaway Go source.
package fixtures

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

// wordPool is sampled to build synthetic WordStats corpora; it deliberately
// mixes plain ASCII, accented vowels and a merger so generated fixtures
// exercise every branch of the tokenizer's classification tables.
var wordPool = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"café", "naïve", "don't", "résumé", "über", "façade",
}

// WriteTextCorpus generates numWords words (joined by a single space,
// delimiter-separated per the tokenizer's contract) into path, returning
// the SHA-256 checksum of the generated content.
func WriteTextCorpus(path string, numWords int, seed int64) (checksum string, err error) {
	r := rand.New(rand.NewSource(seed))

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "fixtures: create %s", path)
	}
	defer f.Close()

	h := sha256.New()
	w := io.MultiWriter(f, h)

	for i := 0; i < numWords; i++ {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, wordPool[r.Intn(len(wordPool))])
	}
	fmt.Fprint(w, "\n")

	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteSignalFile generates a random length-n signal pair (x, y) into path
// in the §6.2 binary layout, returning the SHA-256 checksum of the file's
// bytes.
func WriteSignalFile(path string, n int, seed int64) (checksum string, err error) {
	if n <= 0 {
		return "", errors.Errorf("fixtures: n must be positive, got %d", n)
	}
	r := rand.New(rand.NewSource(seed))

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "fixtures: create %s", path)
	}
	defer f.Close()

	h := sha256.New()
	w := io.MultiWriter(f, h)

	if err := binary.Write(w, binary.LittleEndian, int32(n)); err != nil {
		return "", errors.Wrapf(err, "fixtures: write N to %s", path)
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = r.Float64()*2 - 1
		y[i] = r.Float64()*2 - 1
	}
	if err := binary.Write(w, binary.LittleEndian, x); err != nil {
		return "", errors.Wrapf(err, "fixtures: write x[] to %s", path)
	}
	if err := binary.Write(w, binary.LittleEndian, y); err != nil {
		return "", errors.Wrapf(err, "fixtures: write y[] to %s", path)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
