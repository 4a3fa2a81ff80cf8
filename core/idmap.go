// SPDX-License-Identifier: MIT
//
// File: idmap.go
// Role: Bidirectional mapping between external string ids and dense node ids.
// Policy:
//   - Dense ids are assigned in first-seen order (0,1,2,...), never reused.
//   - Scan iterates external ids in ascending lexical order (B-tree), so result
//     printing is deterministic regardless of insertion order.

package core

import (
	"github.com/tidwall/btree"
)

// IDMap maps external node ids to dense ids and back.
// It is not safe for concurrent mutation; a built CSR only reads it.
type IDMap struct {
	byExternal btree.Map[string, int]
	byDense    []string
}

// NewIDMap returns an empty IDMap with room for sizeHint nodes.
func NewIDMap(sizeHint int) *IDMap {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &IDMap{byDense: make([]string, 0, sizeHint)}
}

// Add returns the dense id of external, assigning the next free one when the
// id is new. The boolean reports whether a new id was assigned.
//
// Complexity: O(log V).
func (m *IDMap) Add(external string) (int, bool, error) {
	if external == "" {
		return 0, false, ErrEmptyNodeID
	}
	if id, ok := m.byExternal.Get(external); ok {
		return id, false, nil
	}
	id := len(m.byDense)
	m.byExternal.Set(external, id)
	m.byDense = append(m.byDense, external)

	return id, true, nil
}

// ToMapped returns the dense id of external.
func (m *IDMap) ToMapped(external string) (int, bool) {
	return m.byExternal.Get(external)
}

// ToOriginal returns the external id of a dense node id.
func (m *IDMap) ToOriginal(node int) (string, error) {
	if node < 0 || node >= len(m.byDense) {
		return "", ErrNodeOutOfRange
	}
	return m.byDense[node], nil
}

// Len returns the number of mapped nodes.
func (m *IDMap) Len() int {
	return len(m.byDense)
}

// Scan visits (external, dense) pairs in ascending external order until fn returns false.
//
// Complexity: O(V).
func (m *IDMap) Scan(fn func(external string, node int) bool) {
	m.byExternal.Scan(fn)
}
