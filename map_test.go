// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBasic(t *testing.T) {
	var m Map
	m.Set("keyOne", "valueOne")
	m.Set("keyTwo", "valueTwo")
	m.Set("keyThree", "valueThree")

	assert.Equal(t, "valueOne", m.Value("keyOne"))
	assert.Equal(t, "valueTwo", m.Value("keyTwo"))
	assert.Equal(t, "valueThree", m.Value("keyThree"))

	v, ok := m.Get("keyDoesNotExist")
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "", m.Value("anotherMissing"))

	m.Delete("keyOne")
	_, ok = m.Get("keyOne")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
	m.tree.check()
}

func TestMapUpdateDelete(t *testing.T) {
	t.Run("overwrite", func(t *testing.T) {
		var m Map
		m.Set("user", "Brad")
		require.Equal(t, "Brad", m.Value("user"))
		m.Set("user", "Bellinder")
		assert.Equal(t, "Bellinder", m.Value("user"))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("delete", func(t *testing.T) {
		var m Map
		m.Set("user", "Brad")
		require.Equal(t, "Brad", m.Value("user"))
		m.Delete("user")
		_, ok := m.Get("user")
		assert.False(t, ok)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("delete missing", func(t *testing.T) {
		var m Map
		m.Set("user", "Brad")
		m.Delete("doesNotExist")
		assert.Equal(t, "Brad", m.Value("user"))
		assert.Equal(t, 1, m.Len())
	})
}

func TestMapEmptyValue(t *testing.T) {
	var m Map
	m.Set("blank", "")
	v, ok := m.Get("blank")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = m.Get("absent")
	assert.False(t, ok)
}

var fruits = []Pair{
	{"mango", "yellow"},
	{"apple", "red"},
	{"banana", "yellow"},
	{"grape", "purple"},
	{"cherry", "red"},
}

// permutations returns every ordering of ps.
func permutations(ps []Pair) [][]Pair {
	if len(ps) <= 1 {
		return [][]Pair{append([]Pair(nil), ps...)}
	}
	var out [][]Pair
	for i := range ps {
		rest := make([]Pair, 0, len(ps)-1)
		rest = append(rest, ps[:i]...)
		rest = append(rest, ps[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Pair{ps[i]}, p...))
		}
	}
	return out
}

func TestMapFruitOrders(t *testing.T) {
	for _, order := range permutations(fruits) {
		var m Map
		for _, p := range order {
			m.Set(p.Key, p.Value)
		}
		for _, p := range fruits {
			require.Equal(t, p.Value, m.Value(p.Key), "insert order %v", order)
		}

		m.Delete("apple")
		m.Delete("grape")
		m.tree.check()
		assert.Equal(t, 3, m.Len())
		for _, p := range fruits {
			v, ok := m.Get(p.Key)
			switch p.Key {
			case "apple", "grape":
				assert.False(t, ok, "%s survived delete, insert order %v", p.Key, order)
			default:
				assert.True(t, ok, "%s lost, insert order %v", p.Key, order)
				assert.Equal(t, p.Value, v)
			}
		}
	}
}

func TestMapRandom(t *testing.T) {
	const N = 500
	r := rand.New(rand.NewPCG(1, 2))
	var m Map
	want := make(map[string]string)
	for i := range 5 * N {
		k := fmt.Sprintf("k%03d", r.IntN(N))
		switch r.IntN(3) {
		case 0:
			m.Delete(k)
			delete(want, k)
		default:
			v := fmt.Sprint(i)
			m.Set(k, v)
			want[k] = v
			got, ok := m.Get(k)
			require.True(t, ok)
			require.Equal(t, v, got)
		}
		if i%50 == 0 {
			m.tree.check()
		}
	}
	m.tree.check()
	require.Equal(t, len(want), m.Len())
	for k, v := range want {
		got, ok := m.Get(k)
		require.True(t, ok, "missing %s", k)
		require.Equal(t, v, got, "key %s", k)
	}
}

func TestMapBulk(t *testing.T) {
	const N, M = 200, 70
	var m Map
	keys := rand.Perm(N)
	for _, k := range keys {
		m.Set(fmt.Sprint(k), "v"+fmt.Sprint(k))
	}
	for _, k := range keys[:M] {
		m.Delete(fmt.Sprint(k))
	}
	assert.Equal(t, N-M, m.Len())
	for _, k := range keys[M:] {
		assert.Equal(t, "v"+fmt.Sprint(k), m.Value(fmt.Sprint(k)))
	}
	for _, k := range keys[:M] {
		_, ok := m.Get(fmt.Sprint(k))
		assert.False(t, ok)
	}

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "nil", m.Dump())
}

func TestNilMap(t *testing.T) {
	var m *Map
	_, ok := m.Get("x")
	assert.False(t, ok)
	assert.Equal(t, "", m.Value("x"))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "nil", m.Dump())
	assert.Panics(t, func() { m.Delete("x") })

	var zero Map
	zero.Delete("x")
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, "nil", zero.Dump())
}

func TestMapDump(t *testing.T) {
	var m Map
	m.Set("b", "2")
	m.Set("a", "1")
	assert.Equal(t, "(a:1 nil (b:2 nil nil))", m.Dump())
}
