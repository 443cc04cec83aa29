package sumtree

// Splice replaces the positional range [start, end) — expressed as
// Dimension values — with newItems, and returns the resulting tree.
// Dimension comparisons are total, so a range extending beyond the tree
// collapses to its extremes rather than erroring. An inverted range
// (start after end) is not a boundary condition but a malformed call and
// returns ErrIllegalArguments, leaving t untouched.
func Splice[D Dimension[S, D], I Item[S], S Summary[S]](t Tree[I, S], start, end D, newItems []I) (Tree[I, S], error) {
	if start.Compare(end) > 0 {
		return t, ErrIllegalArguments
	}
	var d D
	treeEnd := d.FromSummary(t.Summary())
	result := New[I, S]()
	result = appendSubsequence[D](result, t, dimensionZero[S, D](), start)
	result = result.Extend(newItems)
	result = appendSubsequence[D](result, t, end, treeEnd)
	return result, nil
}

// appendSubsequence pushes onto result the portion of t covering
// [start, end) — using Dimension D's total order — and returns result.
// start/end are absolute positions measured from the root of t; the
// recursion tracks nodeStart, the position of the node currently visited,
// so children can be compared without refolding their ancestors' summary.
func appendSubsequence[D Dimension[S, D], I Item[S], S Summary[S]](result, t Tree[I, S], start, end D) Tree[I, S] {
	if t.root == nil {
		return result
	}
	return appendSubsequenceNode[D](result, t.root, dimensionZero[S, D](), start, end)
}

func appendSubsequenceNode[D Dimension[S, D], I Item[S], S Summary[S]](result Tree[I, S], n *node[I, S], nodeStart, start, end D) Tree[I, S] {
	var d D
	if n.isLeaf() {
		// Half-open, start-inclusive end-exclusive leaf boundary on the
		// leaf's start position only. A leaf that starts inside the range
		// is included whole even if it extends past end; a leaf that starts
		// before start is left out even if it overlaps the range. Splicing
		// never splits an item, only the sequence of items around it.
		if start.Compare(nodeStart) <= 0 && nodeStart.Compare(end) < 0 {
			result = result.PushTree(Tree[I, S]{root: n})
		}
		return result
	}
	nodeEnd := nodeStart.Add(d.FromSummary(n.summary))
	if start.Compare(nodeStart) <= 0 && nodeEnd.Compare(end) <= 0 {
		tracer().Debugf("appendSubsequence: whole subtree [%v,%v) inside range, sharing by handle", nodeStart, nodeEnd)
		result = result.PushTree(Tree[I, S]{root: n})
		return result
	}
	if nodeStart.Compare(end) < 0 || start.Compare(nodeEnd) < 0 {
		childStart := nodeStart
		for _, child := range n.children {
			result = appendSubsequenceNode[D](result, child, childStart, start, end)
			childStart = childStart.Add(d.FromSummary(child.summary))
		}
	}
	return result
}

func dimensionZero[S Summary[S], D Dimension[S, D]]() D {
	var d D
	return d
}
