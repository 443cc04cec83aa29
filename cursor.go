package sumtree

// SeekBias resolves ties when a seek position lands exactly on the boundary
// between two adjacent items or subtrees. SeekBiasRight consumes the
// boundary item (the cursor lands just after it); SeekBiasLeft stops before
// it (the cursor lands on the boundary item itself). At non-boundary
// positions the bias has no effect.
type SeekBias int

const (
	SeekBiasLeft SeekBias = iota
	SeekBiasRight
)

// cursorFrame records how the cursor reached one level of the tree: the
// ancestor node, the child index currently being visited, and the running
// left-summary at the start of that ancestor (before its first child). Prev()
// restores this snapshot and adds the summaries of the children before the
// new index, which reconstructs the summary in O(depth) instead of O(n).
type cursorFrame[I Item[S], S Summary[S]] struct {
	n       *node[I, S]
	index   int
	summary S
}

// Cursor is a stateful seeker over a Tree: it maintains a path from root to
// the current leaf plus the cumulative summary of everything to the left of
// the current position, and supports seeking by any Dimension, slicing out
// a prefix, and stepping forward or backward.
//
// Calling Item/Next/Prev before any Seek/Slice call is a programmer error and
// panics; PrevItem before a seek reports ok=false.
type Cursor[I Item[S], S Summary[S]] struct {
	tree     Tree[I, S]
	didSeek  bool
	stack    []cursorFrame[I, S]
	prevLeaf *node[I, S]
	summary  S
}

func newCursor[I Item[S], S Summary[S]](t Tree[I, S]) *Cursor[I, S] {
	return &Cursor[I, S]{tree: t}
}

// Reset clears the cursor back to its just-created state.
func (c *Cursor[I, S]) Reset() {
	c.didSeek = false
	c.stack = c.stack[:0]
	c.prevLeaf = nil
	var zero S
	c.summary = zero
}

// StartOf returns the Dimension value at the cursor's current position —
// i.e. the projection of everything accumulated to the left of it.
func StartOf[D Dimension[S, D], I Item[S], S Summary[S]](c *Cursor[I, S]) D {
	var d D
	return d.FromSummary(c.summary)
}

func (c *Cursor[I, S]) curLeaf() *node[I, S] {
	assert(c.didSeek, "must seek before reading cursor position")
	if len(c.stack) == 0 {
		return nil
	}
	top := c.stack[len(c.stack)-1]
	return top.n.children[top.index]
}

// Item returns the item at the cursor's current position, or ok=false if
// the cursor is positioned past the last item.
func (c *Cursor[I, S]) Item() (item I, ok bool) {
	leaf := c.curLeaf()
	if leaf == nil {
		return item, false
	}
	return leaf.value(), true
}

// PrevItem returns the item immediately before the cursor's current
// position, or ok=false at the start of the tree.
func (c *Cursor[I, S]) PrevItem() (item I, ok bool) {
	if c.prevLeaf == nil {
		return item, false
	}
	return c.prevLeaf.value(), true
}

// Next advances the cursor by one item.
func (c *Cursor[I, S]) Next() {
	assert(c.didSeek, "must seek before calling Next")
	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.n.height == 1 {
			leaf := top.n.children[top.index]
			c.prevLeaf = leaf
			c.summary = c.summary.Add(leaf.summary)
		}
		top.index++
		if top.index < len(top.n.children) {
			c.seekToFirst(top.n.children[top.index])
			return
		}
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Prev retreats the cursor by one item.
func (c *Cursor[I, S]) Prev() {
	assert(c.didSeek, "must seek before calling Prev")

	if len(c.stack) == 0 && c.prevLeaf != nil {
		var zero S
		c.summary = zero
		c.seekToLast(c.tree.root)
	} else {
		for len(c.stack) > 0 {
			top := &c.stack[len(c.stack)-1]
			if top.index == 0 {
				c.stack = c.stack[:len(c.stack)-1]
				continue
			}
			top.index--
			c.summary = top.summary
			for _, sibling := range top.n.children[:top.index] {
				c.summary = c.summary.Add(sibling.summary)
			}
			c.seekToLast(top.n.children[top.index])
			break
		}
	}

	c.prevLeaf = nil
	for i := len(c.stack) - 1; i >= 0; i-- {
		frame := c.stack[i]
		if frame.index > 0 {
			c.prevLeaf = frame.n.children[frame.index-1].rightmostLeaf()
			break
		}
	}
}

func (c *Cursor[I, S]) seekToFirst(n *node[I, S]) {
	c.didSeek = true
	for !n.isLeaf() {
		c.stack = append(c.stack, cursorFrame[I, S]{n: n, index: 0, summary: c.summary})
		n = n.children[0]
	}
}

func (c *Cursor[I, S]) seekToLast(n *node[I, S]) {
	c.didSeek = true
	for !n.isLeaf() {
		last := len(n.children) - 1
		c.stack = append(c.stack, cursorFrame[I, S]{n: n, index: last, summary: c.summary})
		for _, child := range n.children[:last] {
			c.summary = c.summary.Add(child.summary)
		}
		n = n.children[last]
	}
}

// Seek resets the cursor and positions it at pos along dimension D,
// resolving a boundary tie per bias.
func Seek[D Dimension[S, D], I Item[S], S Summary[S]](c *Cursor[I, S], pos D, bias SeekBias) {
	c.Reset()
	seekAndSlice[D](c, pos, bias, nil)
}

// Slice positions the cursor at end along dimension D and returns the tree
// covering everything consumed to get there. Unlike Seek, Slice does not
// reset first: it advances from the cursor's current position, so calling
// Slice repeatedly with increasing bounds yields consecutive segments.
func Slice[D Dimension[S, D], I Item[S], S Summary[S]](c *Cursor[I, S], end D, bias SeekBias) Tree[I, S] {
	sliceOut := New[I, S]()
	seekAndSlice[D](c, end, bias, &sliceOut)
	return sliceOut
}

// seekAndSlice implements the shared unwind/descend traversal behind both
// Seek and Slice. When slice is non-nil, every subtree consumed
// along the way is also pushed onto it, by handle, so slicing reuses
// structure rather than copying items.
func seekAndSlice[D Dimension[S, D], I Item[S], S Summary[S]](c *Cursor[I, S], pos D, bias SeekBias, slice *Tree[I, S]) {
	var curSubtree *node[I, S]
	var d D

	consume := func(n *node[I, S]) {
		c.summary = c.summary.Add(n.summary)
		c.prevLeaf = n.rightmostLeaf()
		if slice != nil {
			*slice = slice.PushTree(Tree[I, S]{root: n})
		}
	}

	shouldConsume := func(end D) bool {
		return pos.Compare(end) > 0 || (pos.Compare(end) == 0 && bias == SeekBiasRight)
	}

	if c.didSeek {
		assert(d.FromSummary(c.summary).Compare(pos) <= 0, "seeking backwards is a programmer error")
		for len(c.stack) > 0 {
			top := &c.stack[len(c.stack)-1]
			if top.n.height > 1 {
				top.index++
			}
			for top.index < len(top.n.children) {
				child := top.n.children[top.index]
				childEnd := d.FromSummary(c.summary).Add(d.FromSummary(child.summary))
				if shouldConsume(childEnd) {
					consume(child)
					top.index++
					continue
				}
				curSubtree = child
				break
			}
			if curSubtree != nil {
				break
			}
			c.stack = c.stack[:len(c.stack)-1]
		}
	} else {
		c.Reset()
		c.didSeek = true
		curSubtree = c.tree.root
	}

	for curSubtree != nil {
		n := curSubtree
		curSubtree = nil
		if n.isLeaf() {
			leafEnd := d.FromSummary(c.summary).Add(d.FromSummary(n.summary))
			if shouldConsume(leafEnd) {
				consume(n)
			}
			continue
		}
		subtreeEnd := d.FromSummary(c.summary).Add(d.FromSummary(n.summary))
		if shouldConsume(subtreeEnd) {
			consume(n)
			continue
		}
		nodeStart := c.summary
		for index, child := range n.children {
			childEnd := d.FromSummary(c.summary).Add(d.FromSummary(child.summary))
			if shouldConsume(childEnd) {
				consume(child)
				continue
			}
			c.stack = append(c.stack, cursorFrame[I, S]{n: n, index: index, summary: nodeStart})
			curSubtree = child
			break
		}
	}
}
