package textchunk

import (
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Summary aggregates text metrics over a chunk or a subtree of chunks.
type Summary struct {
	Bytes        uint64
	Chars        uint64
	Lines        uint64
	DisplayWidth uint64
}

// Add implements sumtree.Summary. Every field is a plain running total, so
// Add is commutative here, but it is still defined as "self plus other" to
// match the monoid contract: subtree summaries fold left-to-right.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes:        s.Bytes + other.Bytes,
		Chars:        s.Chars + other.Chars,
		Lines:        s.Lines + other.Lines,
		DisplayWidth: s.DisplayWidth + other.DisplayWidth,
	}
}

// displayWidth measures how many terminal columns a chunk's text occupies,
// grapheme cluster by grapheme cluster, under a Latin (narrow) East-Asian
// width context.
func displayWidth(text string) uint64 {
	if text == "" {
		return 0
	}
	gstr := grapheme.StringFromString(text)
	return uint64(uax11.StringWidth(gstr, uax11.LatinContext))
}

// ByteDimension seeks by byte offset.
type ByteDimension uint64

func (ByteDimension) FromSummary(s Summary) ByteDimension { return ByteDimension(s.Bytes) }
func (d ByteDimension) Add(other ByteDimension) ByteDimension { return d + other }
func (d ByteDimension) Compare(other ByteDimension) int { return cmpUint64(uint64(d), uint64(other)) }

// CharDimension seeks by Unicode scalar (rune) count.
type CharDimension uint64

func (CharDimension) FromSummary(s Summary) CharDimension { return CharDimension(s.Chars) }
func (d CharDimension) Add(other CharDimension) CharDimension { return d + other }
func (d CharDimension) Compare(other CharDimension) int { return cmpUint64(uint64(d), uint64(other)) }

// LineDimension seeks by newline count.
type LineDimension uint64

func (LineDimension) FromSummary(s Summary) LineDimension { return LineDimension(s.Lines) }
func (d LineDimension) Add(other LineDimension) LineDimension { return d + other }
func (d LineDimension) Compare(other LineDimension) int { return cmpUint64(uint64(d), uint64(other)) }

// DisplayWidthDimension seeks by rendered terminal column width. Folding it
// into the tree summary lets a cursor seek "the chunk covering terminal
// column N" directly, which a CLI renderer needs to implement horizontal
// scrolling without rescanning text.
type DisplayWidthDimension uint64

func (DisplayWidthDimension) FromSummary(s Summary) DisplayWidthDimension {
	return DisplayWidthDimension(s.DisplayWidth)
}
func (d DisplayWidthDimension) Add(other DisplayWidthDimension) DisplayWidthDimension {
	return d + other
}
func (d DisplayWidthDimension) Compare(other DisplayWidthDimension) int {
	return cmpUint64(uint64(d), uint64(other))
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
