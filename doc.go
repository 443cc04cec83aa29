/*
Package sumtree implements a persistent, immutable-by-sharing B-tree that
stores an ordered sequence of items and maintains a monoidal summary of
every subtree.

The tree is generic over an item type and a summary type supplied by the
embedder (text chunks and byte/rune/line counts, integers and running
sums, syntax tokens and source spans — anything that can be folded into a
monoid). Edits are non-destructive: Push, PushTree, and Splice return a
new logical tree and leave prior handles observing the unedited structure
untouched, using copy-on-write on the path from root to the edit point.

	t := intitem.New()
	t = t.Push(intitem.Item(1))
	t = t.Push(intitem.Item(2))
	c := t.Cursor()
	sumtree.Seek[intitem.Count](c, intitem.Count(1), sumtree.SeekBiasRight)
	item, _ := c.Item()

Package intitem and package textchunk contain example item/summary/
dimension instantiations.
*/
package sumtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sumtree'.
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
