// Package report pretty-prints WordStats histograms and CCC comparison
// summaries, grounded on the original printResults() table layout.
package report

import (
	"fmt"
	"io"

	"github.com/alx/taskfarm/internal/aggregator"
	"github.com/alx/taskfarm/internal/signalfile"
)

// WordStats writes one file's (vowelCount, wordLen) histogram as a table:
// a header row of word lengths, a row of raw counts, a row of percentages,
// then one row per vowel count with the percentage of words of that length
// having that many vowels.
func WordStats(w io.Writer, filename string, a *aggregator.WordStatsAggregate) {
	total := a.TotalWords()

	fmt.Fprintf(w, "File name: %s\n", filename)
	fmt.Fprintf(w, "Total number of words: %d\n", total)
	fmt.Fprintln(w, "Word length")

	fmt.Fprint(w, "   ")
	for i := int32(1); i <= a.MaxLen; i++ {
		fmt.Fprintf(w, "%6d", i)
	}
	fmt.Fprint(w, "\n   ")
	for i := int32(1); i <= a.MaxLen; i++ {
		fmt.Fprintf(w, "%6d", a.WordLen[i])
	}
	fmt.Fprint(w, "\n   ")
	for i := int32(1); i <= a.MaxLen; i++ {
		pct := 0.0
		if total > 0 {
			pct = float64(a.WordLen[i]) * 100.0 / float64(total)
		}
		fmt.Fprintf(w, "%6.2f", pct)
	}
	fmt.Fprintln(w)

	for v := int32(0); v <= a.MaxVowel; v++ {
		fmt.Fprintf(w, "%2d ", v)
		for length := int32(1); length <= a.MaxLen; length++ {
			denom := a.WordLen[length]
			pct := 0.0
			if denom > 0 {
				pct = float64(a.VowelByLen[v][length]) * 100.0 / float64(denom)
			}
			fmt.Fprintf(w, "%6.1f", pct)
		}
		fmt.Fprintln(w)
	}
}

// CCCCompare writes a one-line summary of a compare-mode run for one file.
func CCCCompare(w io.Writer, filename string, res signalfile.CompareResult) {
	if res.Mismatches == 0 {
		fmt.Fprintf(w, "%s: MATCH (N=%d, max abs diff %.3e)\n", filename, res.N, res.MaxAbsDiff)
		return
	}
	fmt.Fprintf(w, "%s: MISMATCH (%d/%d taus differ, max abs diff %.3e)\n",
		filename, res.Mismatches, res.N, res.MaxAbsDiff)
}

// CCCAppend writes a one-line confirmation of an append-mode run for one
// file.
func CCCAppend(w io.Writer, filename string, n int32) {
	fmt.Fprintf(w, "%s: wrote %d correlation values\n", filename, n)
}
