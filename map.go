// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

// A Map is a map[string]string kept in key order in a splay tree.
// The zero value of a Map is an empty Map ready to use.
// A nil *Map, like a nil Go map, can be read but not written and contains no entries.
type Map struct {
	tree *Tree[Pair]
}

func (m *Map) init() {
	if m.tree == nil {
		m.tree = NewFunc(ComparePairs)
	}
}

// Set sets m[key] = value.
func (m *Map) Set(key, value string) {
	m.init()
	m.tree.Insert(Pair{key, value})
}

// Get returns m[key] and whether key is present.
// A present key can map to the empty string.
func (m *Map) Get(key string) (value string, ok bool) {
	if m == nil {
		return
	}
	p, ok := m.tree.Find(Pair{Key: key})
	if !ok || p.Key != key {
		return "", false
	}
	return p.Value, true
}

// Value returns m[key], or the empty string if key is not present.
// Use Get to tell a missing key from an empty value.
func (m *Map) Value(key string) string {
	value, _ := m.Get(key)
	return value
}

// Delete deletes m[key].
func (m *Map) Delete(key string) {
	if m == nil {
		panic("Delete of nil Map")
	}
	if m.tree == nil {
		return
	}
	m.tree.Erase(Pair{Key: key})
}

// Len returns the number of entries in m.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// Clear deletes all entries from m.
func (m *Map) Clear() {
	if m.tree != nil {
		m.tree.Clear()
	}
}

// Dump returns the shape of the tree holding m, for debugging.
func (m *Map) Dump() string {
	if m == nil {
		return "nil"
	}
	return m.tree.Dump()
}
