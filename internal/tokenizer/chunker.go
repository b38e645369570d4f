package tokenizer

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ChunkReader owns the dispatcher-side per-file streaming state: the reader
// for the file currently being consumed, the index of that file, and the
// carry-over partial word (tmpWord in the original source) that must not be
// split across a buffer boundary.
//
// A ChunkReader is exclusively owned by the dispatcher; it holds no
// concurrency primitives of its own because it is never touched from more
// than one goroutine.
type ChunkReader struct {
	readers        []*bufio.Reader
	currentFileIdx int
	tmpWord        []byte
}

// NewChunkReader builds a ChunkReader over readers, consumed strictly in
// order (readers[0] first, etc).
func NewChunkReader(readers []io.Reader) *ChunkReader {
	bufReaders := make([]*bufio.Reader, len(readers))
	for i, r := range readers {
		bufReaders[i] = bufio.NewReader(r)
	}
	return &ChunkReader{readers: bufReaders}
}

// GetTextChunk refills a chunk up to bufSize bytes without splitting a word
// across the boundary (§4.4). Every delimiter byte is kept in the returned
// chunk, since Tokenize finds word boundaries by scanning for them; a word
// (with its delimiter) that would push the chunk past bufSize is held back,
// to be prefixed onto the next chunk instead of split. A chunk exceeds
// bufSize only when it holds a single word longer than bufSize. It returns
// the chunk, the file index it
// belongs to, and ok=false once every file has been fully drained.
func (c *ChunkReader) GetTextChunk(bufSize int) (chunk []byte, fileID int32, ok bool, err error) {
	chunk = append(chunk, c.tmpWord...)
	c.tmpWord = c.tmpWord[:0]

	advanceFile := false

	if c.currentFileIdx < len(c.readers) {
		r := c.readers[c.currentFileIdx]

		for len(chunk) < bufSize {
			b, rerr := r.ReadByte()
			if rerr == io.EOF {
				if len(chunk) > 0 && len(chunk)+len(c.tmpWord) > bufSize {
					break
				}
				chunk = append(chunk, c.tmpWord...)
				c.tmpWord = c.tmpWord[:0]
				advanceFile = true
				break
			}
			if rerr != nil {
				return nil, 0, false, errors.Wrap(rerr, "tokenizer: read error")
			}

			n, okLen := codePointLen(b)
			if !okLen {
				return nil, 0, false, errors.Errorf("tokenizer: malformed UTF-8 leading byte 0x%02x", b)
			}

			buf := make([]byte, n)
			buf[0] = b
			for i := 1; i < n; i++ {
				nb, rerr := r.ReadByte()
				if rerr != nil {
					return nil, 0, false, errors.Wrap(rerr, "tokenizer: truncated UTF-8 sequence")
				}
				buf[i] = nb
			}

			if IsDelimiter(string(buf)) {
				// Flush the completed word and the delimiter that ended it
				// together: Tokenize finds word boundaries by scanning for
				// delimiter code points, so dropping this byte would merge
				// this word with whatever follows it in the chunk. If the pair
				// would push a non-empty chunk past bufSize, both are held
				// back to open the next chunk instead.
				if len(chunk) > 0 && len(chunk)+len(c.tmpWord)+len(buf) > bufSize {
					c.tmpWord = append(c.tmpWord, buf...)
					break
				}
				chunk = append(chunk, c.tmpWord...)
				c.tmpWord = c.tmpWord[:0]
				chunk = append(chunk, buf...)
			} else {
				c.tmpWord = append(c.tmpWord, buf...)
			}
		}
	}

	fileID = int32(c.currentFileIdx)
	ok = len(chunk) > 0

	if advanceFile {
		c.currentFileIdx++
	}
	if !ok {
		if advanceFile {
			// This file had nothing left; move on to the next one.
			return c.GetTextChunk(bufSize)
		}
		fileID = -1
	}

	return chunk, fileID, ok, nil
}
