// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Splaydemo runs a sequence of map operations against a splay-tree map
// and prints the result of every get.
//
// Usage:
//
//	splaydemo [--script ops.yaml] [--dump] [--log-level level]
//
// Without --script it runs a fixed demonstration sequence.
// A script is a YAML document listing operations:
//
//	ops:
//	  - {op: put, key: user, value: Brad}
//	  - {op: get, key: user}
//	  - {op: delete, key: user}
//
// A get prints the stored value, or [] if the key is absent.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"rsc.io/splay"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		script   string
		dump     bool
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "splaydemo",
		Short:        "Run put/get/delete operations against a splay-tree map",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := configLogger(logLevel, cmd.ErrOrStderr())

			ops := demoOps
			if script != "" {
				var err error
				if ops, err = loadScript(script); err != nil {
					return err
				}
				logger.Debug("loaded script", "path", script, "ops", len(ops))
			}

			var m splay.Map
			if err := run(&m, ops, cmd.OutOrStdout(), logger); err != nil {
				return err
			}
			if dump {
				fmt.Fprintln(cmd.OutOrStdout(), m.Dump())
			}
			logger.Info("done", "ops", len(ops), "entries", m.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "YAML file of operations to run instead of the demo sequence")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the tree shape after running")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: error, warn, info or debug")
	return cmd
}
