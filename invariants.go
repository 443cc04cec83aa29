package sumtree

import "fmt"

// CheckInvariants walks t and reports a description of the first structural
// violation it finds — uneven leaf depth, a summary that doesn't fold its
// children, a child count outside [MinChildren, MaxChildren], or a stale
// rightmost-leaf cache — or ok=true if none is found. It is exported for
// embedders' own property-based tests (see intitem and textchunk); it is
// not used by the mutating operations themselves, which maintain the
// invariants by construction rather than checking them after the fact.
func CheckInvariants[I Item[S], S Summary[S]](t Tree[I, S]) (violation string, ok bool) {
	if t.root == nil {
		return "", true
	}
	depth, msg := leafDepth[I, S](t.root, 0)
	if msg != "" {
		return msg, false
	}
	_ = depth
	return checkNode[I, S](t.root, true, 0)
}

// leafDepth verifies that every leaf sits at the same depth by returning
// the depth of the first leaf found and failing if any other leaf disagrees.
func leafDepth[I Item[S], S Summary[S]](n *node[I, S], depth int) (int, string) {
	if n.isLeaf() {
		return depth, ""
	}
	var want int
	for i, child := range n.children {
		got, msg := leafDepth[I, S](child, depth+1)
		if msg != "" {
			return 0, msg
		}
		if i == 0 {
			want = got
		} else if got != want {
			return 0, fmt.Sprintf("uneven leaf depth: %d != %d", got, want)
		}
	}
	return want, ""
}

func checkNode[I Item[S], S Summary[S]](n *node[I, S], isRoot bool, depth int) (string, bool) {
	if n.isLeaf() {
		return "", true
	}
	if !isRoot {
		if len(n.children) < MinChildren || len(n.children) > MaxChildren {
			return fmt.Sprintf("non-root node has %d children, outside [%d,%d]", len(n.children), MinChildren, MaxChildren), false
		}
	} else if len(n.children) > MaxChildren {
		return fmt.Sprintf("root has %d children, exceeds %d", len(n.children), MaxChildren), false
	}

	wantSummary := sumChildren[I, S](n.children)
	if !summaryEqual(wantSummary, n.summary) {
		return "cached summary does not equal fold of children", false
	}

	var wantRightmost *node[I, S]
	if len(n.children) > 0 {
		wantRightmost = n.children[len(n.children)-1].rightmostLeaf()
	}
	if wantRightmost != n.rightmost {
		return "rightmost-leaf cache mismatch", false
	}

	for _, child := range n.children {
		if !child.isLeaf() && child.height != n.height-1 {
			return fmt.Sprintf("child height %d, expected %d", child.height, n.height-1), false
		}
		if msg, ok := checkNode[I, S](child, false, depth+1); !ok {
			return msg, false
		}
	}
	return "", true
}

// summaryEqual compares two summaries structurally via fmt, since Summary
// does not require comparability (many real summaries embed slices or
// maps). This is adequate for test diagnostics; it is not used by any
// hot path.
func summaryEqual[S any](a, b S) bool {
	return fmt.Sprintf("%+v", a) == fmt.Sprintf("%+v", b)
}
