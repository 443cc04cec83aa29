package sumtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sumtree/intitem"
)

// TestPushTreeRandomAgainstReference builds trees via random interleavings
// of Push and PushTree (concatenating two independently-built subtrees) and
// checks the result against plain slice concatenation, with invariants
// re-checked after every step.
func TestPushTreeRandomAgainstReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))

		tree := intitem.New()
		var reference []int

		for step := 0; step < 60; step++ {
			if rng.Intn(2) == 0 || len(reference) == 0 {
				v := rng.Intn(1 << 15)
				tree = tree.Push(intitem.Item(v))
				reference = append(reference, v)
			} else {
				n := rng.Intn(8)
				chunk := make([]int, n)
				chunkItems := make([]intitem.Item, n)
				for i := range chunk {
					v := rng.Intn(1 << 15)
					chunk[i] = v
					chunkItems[i] = intitem.Item(v)
				}
				other := intitem.New().Extend(chunkItems)
				tree = tree.PushTree(other)
				reference = append(reference, chunk...)
			}

			if msg, ok := CheckInvariants(tree); !ok {
				t.Fatalf("seed %d step %d: invariant violated: %s", seed, step, msg)
			}
			got := intitem.ToSlice(tree)
			if !intSliceEqual(got, reference) {
				t.Fatalf("seed %d step %d: got %v, want %v", seed, step, got, reference)
			}
			if s := tree.Summary(); s.Count != len(reference) {
				t.Fatalf("seed %d step %d: Count = %d, want %d", seed, step, s.Count, len(reference))
			}
		}
	}
}

// TestIteratorMatchesCursorForwardWalk checks that Iterator and a
// forward-walking Cursor agree on item order for a variety of tree shapes,
// since they are two independent traversal implementations over the same
// structure.
func TestIteratorMatchesCursorForwardWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtree")
	defer teardown()
	//
	for n := 0; n < 40; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = i * 7 % 101
		}
		tree := intitem.FromSlice(values)

		var fromIter []int
		it := tree.Iter()
		for {
			item, ok := it.Next()
			if !ok {
				break
			}
			fromIter = append(fromIter, int(item))
		}

		var fromCursor []int
		cur := tree.Cursor()
		Seek[intitem.Count](cur, intitem.Count(0), SeekBiasRight)
		for {
			item, ok := cur.Item()
			if !ok {
				break
			}
			fromCursor = append(fromCursor, int(item))
			cur.Next()
		}

		if !intSliceEqual(fromIter, values) {
			t.Fatalf("n=%d: iterator got %v, want %v", n, fromIter, values)
		}
		if !intSliceEqual(fromCursor, values) {
			t.Fatalf("n=%d: cursor got %v, want %v", n, fromCursor, values)
		}
	}
}
