// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splay implements an in-memory ordered map from strings to strings
// backed by a splay tree.
//
// [Tree][T] is the underlying self-adjusting binary search tree,
// usable with any totally ordered element type.
// [Map] binds it to key/value [Pair]s ordered by key alone.
//
// Every operation restructures the tree, lookups included:
// the node touched last is rotated to the root.
// Neither type is safe for concurrent use.
// Callers sharing one across goroutines must serialize every call,
// reads as well as writes, behind a single lock.
package splay

// The implementation is a bottom-up splay tree. See:
// https://en.wikipedia.org/wiki/Splay_tree
// https://www.cs.cmu.edu/~sleator/papers/self-adjusting.pdf

import (
	"bytes"
	"cmp"
	"fmt"
)

// A Tree is a set of elements of type T ordered by a comparison function.
// Elements that compare equal are the same element:
// inserting one replaces the other.
//
// The zero value of a Tree is not meaningful since it has no comparison function.
// Use [New] or [NewFunc] to create a Tree.
type Tree[T any] struct {
	root *node[T]
	cmp  func(T, T) int
	n    int
}

// A node is a node in the splay tree.
// The parent link is a back reference used only while rotating.
type node[T any] struct {
	parent *node[T]
	left   *node[T]
	right  *node[T]
	elem   T
}

// New returns an empty Tree ordered by T's standard Go ordering.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty Tree ordered according to cmp.
// cmp(a, b) must return a negative number, zero or a positive number
// when a < b, a == b or a > b, and must define a total order.
func NewFunc[T any](cmp func(T, T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Len returns the number of elements in t.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Root returns the element at the root of t,
// which is the element most recently inserted or found.
func (t *Tree[T]) Root() (elem T, ok bool) {
	if t == nil || t.root == nil {
		return
	}
	return t.root.elem, true
}

func (t *Tree[T]) setRoot(x *node[T]) {
	t.root = x
	if x != nil {
		x.parent = nil
	}
}

func (x *node[T]) setLeft(y *node[T]) {
	x.left = y
	if y != nil {
		y.parent = x
	}
}

func (x *node[T]) setRight(y *node[T]) {
	x.right = y
	if y != nil {
		y.parent = x
	}
}

// replaceChild makes x take old's place below p.
func (t *Tree[T]) replaceChild(p, old, x *node[T]) {
	switch {
	case p == nil:
		if t.root != old {
			panic("corrupt splay tree")
		}
		t.setRoot(x)
	case p.left == old:
		p.setLeft(x)
	case p.right == old:
		p.setRight(x)
	default:
		panic("corrupt splay tree")
	}
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *Tree[T]) rotateLeft(x *node[T]) {
	// p -> (x a (y b c))
	p := x.parent
	y := x.right
	b := y.left

	y.setLeft(x)
	x.setRight(b)
	t.replaceChild(p, x, y)
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *Tree[T]) rotateRight(y *node[T]) {
	// p -> (y (x a b) c)
	p := y.parent
	x := y.left
	b := x.right

	x.setRight(y)
	y.setLeft(b)
	t.replaceChild(p, y, x)
}

// rotateUp moves x one level up by rotating its parent.
func (t *Tree[T]) rotateUp(x *node[T]) {
	if p := x.parent; p.left == x {
		t.rotateRight(p)
	} else {
		t.rotateLeft(p)
	}
}

// splay rotates x up until it is the root of t.
func (t *Tree[T]) splay(x *node[T]) {
	for x.parent != nil {
		p := x.parent
		g := p.parent
		switch {
		case g == nil:
			// zig
			t.rotateUp(x)
		case (p.left == x) == (g.left == p):
			// zig-zig: rotate g, then p.
			t.rotateUp(p)
			t.rotateUp(x)
		default:
			// zig-zag: rotate p, then g.
			t.rotateUp(x)
			t.rotateUp(x)
		}
	}
}

// locate returns the link that holds or would hold elem,
// along with the parent of that link.
func (t *Tree[T]) locate(elem T) (pos **node[T], parent *node[T]) {
	pos, x := &t.root, t.root
	for x != nil {
		c := t.cmp(elem, x.elem)
		if c == 0 {
			break
		}
		parent = x
		if c < 0 {
			pos, x = &x.left, x.left
		} else {
			pos, x = &x.right, x.right
		}
	}
	return pos, parent
}

// Insert adds elem to t, replacing any element that compares equal to it.
// Afterward elem is at the root of t.
func (t *Tree[T]) Insert(elem T) {
	pos, parent := t.locate(elem)
	if x := *pos; x != nil {
		x.elem = elem
		t.splay(x)
		return
	}
	x := &node[T]{elem: elem, parent: parent}
	*pos = x
	t.n++
	t.splay(x)
}

// find returns the node holding elem, splayed to the root.
// On a miss it splays the last node on the search path and returns nil.
func (t *Tree[T]) find(elem T) *node[T] {
	if t == nil {
		return nil
	}
	pos, parent := t.locate(elem)
	if x := *pos; x != nil {
		t.splay(x)
		return x
	}
	if parent != nil {
		t.splay(parent)
	}
	return nil
}

// Find returns the element of t that compares equal to elem.
// Whether or not one is found, the search moves the closest
// element on its path to the root.
func (t *Tree[T]) Find(elem T) (found T, ok bool) {
	x := t.find(elem)
	if x == nil {
		return
	}
	return x.elem, true
}

// Contains reports whether t holds an element equal to elem.
// Like Find, it restructures t.
func (t *Tree[T]) Contains(elem T) bool {
	return t.find(elem) != nil
}

// Erase removes the element equal to elem from t
// and reports whether there was one.
func (t *Tree[T]) Erase(elem T) bool {
	x := t.find(elem)
	if x == nil {
		return false
	}
	t.delete(x)
	return true
}

// delete unlinks x from t.
// When x has two children, its in-order successor is spliced
// into x's place instead of rotating x down.
func (t *Tree[T]) delete(x *node[T]) {
	switch {
	case x.left == nil:
		t.replaceChild(x.parent, x, x.right)
	case x.right == nil:
		t.replaceChild(x.parent, x, x.left)
	default:
		y := x.right.min()
		if y.parent != x {
			t.replaceChild(y.parent, y, y.right)
			y.setRight(x.right)
		}
		t.replaceChild(x.parent, x, y)
		y.setLeft(x.left)
	}
	x.parent = nil
	x.left = nil
	x.right = nil
	t.n--
}

func (x *node[T]) min() *node[T] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// Clear removes all elements from t.
func (t *Tree[T]) Clear() {
	// Unlink iteratively: a splay tree can degrade to a long chain
	// before it is next accessed.
	var stack []*node[T]
	if t.root != nil {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x.left != nil {
			stack = append(stack, x.left)
		}
		if x.right != nil {
			stack = append(stack, x.right)
		}
		x.parent = nil
		x.left = nil
		x.right = nil
	}
	t.root = nil
	t.n = 0
}

// Depth returns the number of nodes on the longest path from the root.
func (t *Tree[T]) Depth() int {
	if t == nil || t.root == nil {
		return 0
	}
	depth := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		depth++
		var next []*node[T]
		for _, x := range level {
			if x.left != nil {
				next = append(next, x.left)
			}
			if x.right != nil {
				next = append(next, x.right)
			}
		}
		level = next
	}
	return depth
}

// Dump returns the shape of t as an s-expression (elem left right),
// with nil for a missing child.
func (t *Tree[T]) Dump() string {
	var buf bytes.Buffer
	var walk func(*node[T])
	walk = func(x *node[T]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%v ", x.elem)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	if t != nil {
		walk(t.root)
	} else {
		walk(nil)
	}
	return buf.String()
}

// check panics if t is not a well-formed binary search tree:
// links must agree in both directions, elements must be strictly
// ordered, and the node count must match Len.
func (t *Tree[T]) check() {
	if t.root == nil {
		if t.n != 0 {
			panic(fmt.Sprintf("empty splay tree has Len %d", t.n))
		}
		return
	}
	if t.root.parent != nil {
		panic("splay tree root has parent")
	}

	type frame struct {
		x      *node[T]
		lo, hi *node[T] // exclusive bounds, nil for unbounded
	}
	count := 0
	stack := []frame{{x: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := f.x
		count++
		if f.lo != nil && t.cmp(f.lo.elem, x.elem) >= 0 {
			panic(fmt.Sprintf("splay tree out of order: %v not after %v", x.elem, f.lo.elem))
		}
		if f.hi != nil && t.cmp(x.elem, f.hi.elem) >= 0 {
			panic(fmt.Sprintf("splay tree out of order: %v not before %v", x.elem, f.hi.elem))
		}
		if x.left != nil {
			if x.left.parent != x {
				panic("bad parent")
			}
			stack = append(stack, frame{x.left, f.lo, x})
		}
		if x.right != nil {
			if x.right.parent != x {
				panic("bad parent")
			}
			stack = append(stack, frame{x.right, x, f.hi})
		}
	}
	if count != t.n {
		panic(fmt.Sprintf("splay tree has %d nodes, Len %d", count, t.n))
	}
}
