package bptree

import "cmp"

// Validate walks the whole tree and reports whether its structure is sound.
// For every node it checks the key-count bounds (the root is exempt from the
// lower bound), strictly ascending keys, len(keys) == len(values) for leaves
// and len(children) == len(keys)+1 for internal nodes. For every internal
// node it checks that each child's minimum key is below the separator to its
// right and that the last child's minimum key is not below the last
// separator. It checks that the non-empty leaves along the leaf chain are in
// strictly ascending order. It does not check that all leaves sit at the
// same depth, that the leaf chain reaches every leaf exactly once, or that
// keys other than a child's minimum lie within its separators' bounds. It
// is intended for tests and debugging, not for use on any hot path.
func (t *Tree[K, V]) Validate() bool {
	if !t.validateNode(t.root, true) {
		return false
	}
	return t.validateLeafChain()
}

func (t *Tree[K, V]) validateNode(n node[K], isRoot bool) bool {
	switch cur := n.(type) {
	case *leafNode[K, V]:
		if len(cur.keys) != len(cur.values) {
			return false
		}
		if len(cur.keys) >= t.degree {
			return false
		}
		if !isRoot && len(cur.keys) < t.minKeys {
			return false
		}
		return keysAscending(cur.keys)

	case *internalNode[K]:
		if len(cur.children) != len(cur.keys)+1 {
			return false
		}
		if len(cur.keys) >= t.degree {
			return false
		}
		if !isRoot && len(cur.keys) < t.minKeys {
			return false
		}
		if !keysAscending(cur.keys) {
			return false
		}
		for i, child := range cur.children {
			if !t.validateNode(child, false) {
				return false
			}
			if i < len(cur.keys) {
				if !(child.minKey() < cur.keys[i]) {
					return false
				}
			} else {
				if child.minKey() < cur.keys[i-1] {
					return false
				}
			}
		}
		return true
	}
	return false
}

func keysAscending[K cmp.Ordered](keys []K) bool {
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			return false
		}
	}
	return true
}

// validateLeafChain checks that the leaf chain visits every leaf in
// strictly ascending order, comparing the last key of each leaf against the
// first key of the next one. This is a tighter check than the original
// source's (which compared last-key-of-left against last-key-of-right);
// tightening it does not change what Validate reports for any tree that
// was built exclusively through Insert/Delete.
func (t *Tree[K, V]) validateLeafChain() bool {
	leaf := t.firstLeaf
	var haveLast bool
	var last K
	for leaf != nil {
		if len(leaf.keys) > 0 {
			if haveLast && !(last < leaf.keys[0]) {
				return false
			}
			last = leaf.keys[len(leaf.keys)-1]
			haveLast = true
		}
		leaf = leaf.next
	}
	return true
}
