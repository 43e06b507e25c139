// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"rsc.io/splay"
)

// An op is one map operation in a script.
type op struct {
	Op    string `yaml:"op"`
	Key   string `yaml:"key"`
	Value string `yaml:"value,omitempty"`
}

type script struct {
	Ops []op `yaml:"ops"`
}

var demoOps = []op{
	{Op: "put", Key: "keyOne", Value: "valueOne"},
	{Op: "put", Key: "keyTwo", Value: "valueTwo"},
	{Op: "put", Key: "keyThree", Value: "valueThree"},
	{Op: "get", Key: "keyOne"},
	{Op: "get", Key: "keyThree"},
	{Op: "get", Key: "keyDoesNotExist"},
	{Op: "delete", Key: "keyOne"},
}

func loadScript(path string) ([]op, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	ops, err := parseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ops, nil
}

func parseScript(data []byte) ([]op, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, o := range s.Ops {
		switch o.Op {
		case "put", "get", "delete":
		default:
			return nil, fmt.Errorf("ops[%d]: unknown op %q", i, o.Op)
		}
	}
	return s.Ops, nil
}

// run applies ops to m in order, writing one line to w per get.
func run(m *splay.Map, ops []op, w io.Writer, logger *slog.Logger) error {
	for i, o := range ops {
		switch o.Op {
		case "put":
			m.Set(o.Key, o.Value)
			logger.Debug("put", "key", o.Key, "value", o.Value)
		case "get":
			v, ok := m.Get(o.Key)
			logger.Debug("get", "key", o.Key, "found", ok)
			if !ok {
				v = "[]"
			}
			if _, err := fmt.Fprintln(w, v); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		case "delete":
			m.Delete(o.Key)
			logger.Debug("delete", "key", o.Key)
		default:
			return fmt.Errorf("ops[%d]: unknown op %q", i, o.Op)
		}
	}
	return nil
}
