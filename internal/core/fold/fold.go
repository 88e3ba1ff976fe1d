// Package fold groups a flat denormalized row stream into one value per key
// Rules
// 1 one pass over rows, no backtracking
// 2 the first row seen for a key creates its group, later rows never re-apply head fields
// 3 every row contributes to its group in arrival order
// 4 group order is key first-seen order
package fold

import "slices"

// Folder accumulates rows into groups keyed by K
// a Folder is not safe for concurrent use; build one per result set
type Folder[R any, K comparable, G any] struct {
	key  func(R) K
	head func(R) G
	add  func(*G, R)

	index  map[K]int
	groups []G
}

// New builds a Folder
// key extracts the grouping key, head builds a group from its first row,
// add merges a row into its group (called for the first row too)
func New[R any, K comparable, G any](key func(R) K, head func(R) G, add func(*G, R)) *Folder[R, K, G] {
	if key == nil || head == nil {
		panic("fold: key and head are required")
	}
	if add == nil {
		add = func(*G, R) {}
	}
	return &Folder[R, K, G]{
		key:   key,
		head:  head,
		add:   add,
		index: make(map[K]int),
	}
}

// Add folds one row
func (f *Folder[R, K, G]) Add(r R) {
	k := f.key(r)
	i, ok := f.index[k]
	if !ok {
		i = len(f.groups)
		f.index[k] = i
		f.groups = append(f.groups, f.head(r))
	}
	f.add(&f.groups[i], r)
}

// Len returns the number of distinct keys seen
func (f *Folder[R, K, G]) Len() int { return len(f.groups) }

// Groups returns the groups in first-seen key order, never nil
// the slice is clipped so a later Add never writes into it, but groups already
// returned still share their own fields (slices, maps) with the Folder
func (f *Folder[R, K, G]) Groups() []G {
	if f.groups == nil {
		return []G{}
	}
	return slices.Clip(f.groups)
}

// First returns the first group or false when nothing was folded
func (f *Folder[R, K, G]) First() (G, bool) {
	if len(f.groups) == 0 {
		var zero G
		return zero, false
	}
	return f.groups[0], true
}

// Distinct drops groups structurally equal to an earlier one, keeping order
// it returns the kept groups and how many were dropped
// eq is only asked about groups with the same key, so the pass is linear in
// len(groups) unless many groups share a key; eq must imply equal keys
// with correct keying nothing is ever dropped; a non-zero count means the key is wrong
func Distinct[G any, K comparable](groups []G, key func(G) K, eq func(a, b G) bool) ([]G, int) {
	out := make([]G, 0, len(groups))
	byKey := make(map[K][]int, len(groups))
	dropped := 0
next:
	for _, g := range groups {
		k := key(g)
		for _, i := range byKey[k] {
			if eq(out[i], g) {
				dropped++
				continue next
			}
		}
		byKey[k] = append(byKey[k], len(out))
		out = append(out, g)
	}
	return out, dropped
}
