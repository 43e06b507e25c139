// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import "strings"

// A Pair is a key/value entry of a [Map].
type Pair struct {
	Key   string
	Value string
}

// ComparePairs orders pairs by key alone,
// so two pairs with the same key are the same entry
// regardless of their values.
func ComparePairs(a, b Pair) int {
	return strings.Compare(a.Key, b.Key)
}

func (p Pair) String() string {
	return p.Key + ":" + p.Value
}
