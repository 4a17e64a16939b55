package attribute

import "sort"

// node is one level of the prefix trie. children is keyed by casefolded
// segment; terminal marks that the path ending here was explicitly added.
type node struct {
	children map[string]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Set is a prefix-trie-backed bag of attributes, as used by a Course's
// attribute mapping (spec §3) and by the matcher's wildcard bookkeeping
// (spec §4.1/§4.2).
//
// Set is not safe for concurrent use without external synchronization;
// catalogs are mutable only during import (spec §5) and immutable after.
type Set struct {
	root *node
	full map[string]struct{} // canonical string -> membership, for O(1) Has
}

// NewSet returns an empty attribute Set.
func NewSet() *Set {
	return &Set{root: newNode(), full: make(map[string]struct{})}
}

// Add inserts a into the set. Re-adding an existing attribute is a no-op.
func (s *Set) Add(a Attribute) {
	segs := a.Segments()
	if len(segs) == 0 {
		return
	}
	cur := s.root
	for _, seg := range segs {
		next, ok := cur.children[seg]
		if !ok {
			next = newNode()
			cur.children[seg] = next
		}
		cur = next
	}
	cur.terminal = true
	s.full[join(segs).String()] = struct{}{}
}

// Has reports whether a is an exact member of the set.
func (s *Set) Has(a Attribute) bool {
	_, ok := s.full[a.String()]
	return ok
}

// Remove deletes the exact attribute a, if present.
func (s *Set) Remove(a Attribute) {
	segs := a.Segments()
	if len(segs) == 0 {
		return
	}
	cur := s.root
	for _, seg := range segs {
		next, ok := cur.children[seg]
		if !ok {
			return
		}
		cur = next
	}
	cur.terminal = false
	delete(s.full, join(segs).String())
}

// RemoveByHead deletes every attribute whose segment sequence begins
// with head's segments (head itself included, if present).
func (s *Set) RemoveByHead(head Attribute) {
	for _, a := range s.GetByHead(head) {
		s.Remove(a)
	}
}

// GetByHead returns every attribute in the set whose segment sequence
// begins with head's segments, sorted lexicographically for determinism.
func (s *Set) GetByHead(head Attribute) []Attribute {
	hseg := head.Segments()
	cur := s.root
	for _, seg := range hseg {
		next, ok := cur.children[seg]
		if !ok {
			return nil
		}
		cur = next
	}

	var out []Attribute
	var walk func(n *node, segs []string)
	walk = func(n *node, segs []string) {
		if n.terminal {
			out = append(out, join(append(append([]string{}, hseg...), segs...)))
		}
		keys := make([]string, 0, len(n.children))
		for k := range n.children {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(n.children[k], append(segs, k))
		}
	}
	walk(cur, nil)

	return out
}

// Next returns the set of distinct segments immediately following head
// across all attributes that extend it, sorted for determinism.
func (s *Set) Next(head Attribute) []string {
	hseg := head.Segments()
	cur := s.root
	for _, seg := range hseg {
		next, ok := cur.children[seg]
		if !ok {
			return nil
		}
		cur = next
	}

	// Remove leaves trie nodes in place, so a child only counts if some
	// attribute still ends at or below it.
	var live func(n *node) bool
	live = func(n *node) bool {
		if n.terminal {
			return true
		}
		for _, child := range n.children {
			if live(child) {
				return true
			}
		}
		return false
	}

	out := make([]string, 0, len(cur.children))
	for k, child := range cur.children {
		if live(child) {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// BeforeWildcard returns the prefix of a up to (but not including) the
// first Wildcard ("*") segment. If a contains no wildcard segment,
// BeforeWildcard returns a unchanged.
func BeforeWildcard(a Attribute) Attribute {
	segs := a.Segments()
	for i, seg := range segs {
		if seg == Wildcard {
			return join(segs[:i])
		}
	}
	return a
}

// ReplaceWildcard removes a from the set (if present) and adds
// BeforeWildcard(a) + "." + v in its place.
func ReplaceWildcard(s *Set, a Attribute, v string) {
	s.Remove(a)
	prefix := BeforeWildcard(a)
	if prefix == "" {
		s.Add(Attribute(v))
		return
	}
	s.Add(Attribute(string(prefix) + "." + v))
}

// All returns every attribute currently in the set, sorted for
// determinism. Intended for diagnostics and tests, not hot paths.
func (s *Set) All() []Attribute {
	return s.GetByHead("")
}

// Len reports the number of distinct attributes in the set.
func (s *Set) Len() int {
	return len(s.full)
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	out := NewSet()
	for a := range s.full {
		out.Add(Attribute(a))
	}
	return out
}
