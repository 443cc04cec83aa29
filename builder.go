package sumtree

// Push appends item and returns the resulting tree.
func (t Tree[I, S]) Push(item I) Tree[I, S] {
	return t.PushTree(FromItem[I, S](item))
}

// Extend appends each item in items, in order, and returns the resulting
// tree. It is the bulk equivalent of calling Push repeatedly.
func (t Tree[I, S]) Extend(items []I) Tree[I, S] {
	for _, item := range items {
		t = t.Push(item)
	}
	return t
}

// PushTree concatenates other onto t and returns the resulting tree. This
// is the bulk-append / concat operation.
func (t Tree[I, S]) PushTree(other Tree[I, S]) Tree[I, S] {
	if other.IsEmpty() {
		return t
	}
	selfRoot := t.root
	if selfRoot == nil {
		selfRoot = fromChildren[I, S](nil)
	}

	if selfRoot.height < other.root.height {
		// other is taller: push its children one at a time, the only way
		// a taller right-hand tree is attached.
		result := Tree[I, S]{root: selfRoot}
		for _, child := range other.root.children {
			result = result.PushTree(Tree[I, S]{root: child})
		}
		return result
	}

	self := selfRoot.clone()
	split := pushRecursive[I, S](self, other.root)
	if split != nil {
		self = fromChildren[I, S]([]*node[I, S]{self, split})
	}
	return Tree[I, S]{root: self}
}

// pushRecursive pushes other's contents into self in place (self must
// already be a private, clonable node — see node.clone) and returns a
// split sibling if self overflowed, or nil otherwise. Precondition:
// self.height >= other.height and self is internal.
//
// Mirrors tree.rs's push_recursive: update aggregates first, then branch
// on the height relation between self and other.
func pushRecursive[I Item[S], S Summary[S]](self, other *node[I, S]) *node[I, S] {
	assert(!self.isLeaf(), "pushRecursive requires an internal self node")
	self.summary = self.summary.Add(other.summary)
	self.rightmost = other.rightmostLeaf()

	switch {
	case other.height == self.height:
		tracer().Debugf("append %d same-height children into node at height %d", len(other.children), self.height)
		return appendChildren(self, other.children)
	case other.height == self.height-1 && !other.underflowing():
		tracer().Debugf("adopt other as single child at height %d", self.height)
		return appendChildren(self, []*node[I, S]{other})
	default:
		tracer().Debugf("descend into last child of node at height %d", self.height)
		last := len(self.children) - 1
		child := self.children[last].clone()
		self.children[last] = child
		split := pushRecursive[I, S](child, other)
		if split == nil {
			return nil
		}
		return appendChildren(self, []*node[I, S]{split})
	}
}

// appendChildren appends newChildren to self.children, splitting self if
// the combined count would exceed MaxChildren. self is mutated in place;
// the returned node, if non-nil, is a brand new sibling holding the
// overflow.
func appendChildren[I Item[S], S Summary[S]](self *node[I, S], newChildren []*node[I, S]) *node[I, S] {
	assert(!self.isLeaf(), "appendChildren called on a leaf node")
	count := len(self.children) + len(newChildren)
	if count <= MaxChildren {
		self.children = append(self.children, newChildren...)
		self.summary = sumChildren[I, S](self.children)
		if len(self.children) > 0 {
			self.rightmost = self.children[len(self.children)-1].rightmostLeaf()
		}
		return nil
	}

	// Split: the upper half gets the smaller share when count is odd:
	// midpoint = (k + k%2) / 2.
	midpoint := (count + count%2) / 2
	all := make([]*node[I, S], 0, count)
	all = append(all, self.children...)
	all = append(all, newChildren...)
	tracer().Debugf("splitting node: %d children overflow to %d/%d", count, midpoint, count-midpoint)

	self.children = all[:midpoint]
	self.summary = sumChildren[I, S](self.children)
	self.rightmost = self.children[len(self.children)-1].rightmostLeaf()

	sibling := fromChildren[I, S](append([]*node[I, S](nil), all[midpoint:]...))
	return sibling
}
