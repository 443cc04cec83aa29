// Package textchunk embeds fixed-capacity UTF-8 text fragments as
// sumtree.Item values, making a sumtree.Tree usable as the backing store for
// a rope: a sequence of Chunks whose running Bytes/Chars/Lines/DisplayWidth
// summaries let a cursor seek by any of those coordinates in O(log n).
//
// Chunk itself is a small fixed-capacity byte array plus bitmaps marking
// rune-start and newline offsets, so per-chunk rune and line counts are cheap
// popcounts rather than a byte-by-byte rescan; display width is measured
// from the text.
package textchunk

import (
	"math/bits"
	"unicode/utf8"
)

// Bitmap indexes byte-local properties inside a chunk; bit i corresponds to
// byte offset i in chunk-local coordinates.
type Bitmap = uint64

const (
	// MaxBase is the maximum chunk payload length in bytes.
	MaxBase = 64
	// MinBase is half of MaxBase. Neither FromString nor a splice enforces
	// it: chunks are never merged or rebalanced, so a tree can hold chunks
	// shorter than MinBase.
	MinBase = MaxBase / 2
)

// Chunk is an immutable fragment of text stored as a sumtree leaf item.
type Chunk struct {
	chars    Bitmap
	newlines Bitmap
	text     [MaxBase]byte
	n        uint8
}

// New creates a Chunk from a UTF-8 string.
func New(text string) (Chunk, error) {
	if !utf8.ValidString(text) {
		return Chunk{}, ErrInvalidUTF8
	}
	if len(text) > MaxBase {
		return Chunk{}, ErrChunkTooLarge
	}
	var c Chunk
	copy(c.text[:], text)
	c.n = uint8(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			c.newlines |= bit(i)
		}
	}
	for i := range text {
		c.chars |= bit(i)
	}
	return c, nil
}

// Len returns the chunk's text length in bytes.
func (c Chunk) Len() int { return int(c.n) }

// IsEmpty reports whether the chunk holds no bytes.
func (c Chunk) IsEmpty() bool { return c.n == 0 }

// String returns the chunk's text.
func (c Chunk) String() string { return string(c.text[:c.n]) }

// Bytes returns a copy of the chunk's text.
func (c Chunk) Bytes() []byte { return append([]byte(nil), c.text[:c.n]...) }

// IsCharBoundary reports whether offset is a UTF-8 rune boundary.
func (c Chunk) IsCharBoundary(offset int) bool {
	if offset == c.Len() {
		return true
	}
	if offset < 0 || offset > c.Len() {
		return false
	}
	return c.chars&bit(offset) != 0
}

// Summarize implements sumtree.Item: Bytes, Chars and Lines come from the
// chunk's length and bitmaps without rescanning text; DisplayWidth is
// measured by segmenting the chunk's text into grapheme clusters.
func (c Chunk) Summarize() Summary {
	return Summary{
		Bytes:        uint64(c.n),
		Chars:        uint64(bits.OnesCount64(c.chars)),
		Lines:        uint64(bits.OnesCount64(c.newlines)),
		DisplayWidth: displayWidth(c.String()),
	}
}

func bit(offset int) Bitmap {
	if offset < 0 || offset >= MaxBase {
		return 0
	}
	return Bitmap(1) << uint(offset)
}
