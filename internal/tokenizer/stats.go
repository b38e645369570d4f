package tokenizer

import (
	"github.com/pkg/errors"

	"github.com/alx/taskfarm/internal/taskmodel"
)

// Tokenize builds the (vowelCount, wordLen) histogram for a single chunk.
// It is stateless and pure: a chunk never splits a word across its
// boundary (ChunkReader guarantees that), so a chunk's words can be
// finalized without any knowledge of neighboring chunks.
func Tokenize(chunk []byte) (taskmodel.ChunkStats, error) {
	wordLen := map[int32]int32{}
	vowelByLen := map[[2]int32]int32{}

	var maxLen, maxVowel int32
	var curLen, curVowels int32

	finalize := func() {
		if curLen == 0 {
			return
		}
		wordLen[curLen]++
		vowelByLen[[2]int32{curVowels, curLen}]++
		if curLen > maxLen {
			maxLen = curLen
		}
		if curVowels > maxVowel {
			maxVowel = curVowels
		}
		curLen, curVowels = 0, 0
	}

	for i := 0; i < len(chunk); {
		cp, size, ok := nextCodePoint(chunk[i:])
		if !ok {
			return taskmodel.ChunkStats{}, errors.Errorf("tokenizer: malformed UTF-8 at byte offset %d", i)
		}
		i += size

		switch {
		case IsDelimiter(cp):
			finalize()
		case IsMerger(cp):
			if IsVowel(cp) {
				curVowels++
			}
		default:
			curLen++
			if IsVowel(cp) {
				curVowels++
			}
		}
	}
	finalize()

	cs := taskmodel.NewChunkStats(maxLen, maxVowel)
	for length, count := range wordLen {
		cs.WordLen[length] = count
	}
	for key, count := range vowelByLen {
		cs.VowelByLen[key[0]][key[1]] = count
	}
	return cs, nil
}
