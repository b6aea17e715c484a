// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command arbortree is a small demo CLI that configures an arbor.Tree from
// an optional TOML config and builds a fixed sample tree in it; the demo
// command prints the sample's structure and the check command runs the
// integrity checker on it, grounded on the rclone-style single-cobra.Command-per-concern CLI
// layout (SPEC_FULL.md §3 DOMAIN STACK).
package main

import (
	"fmt"
	"os"

	"github.com/gaissmai/arbor"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debugCheck bool
)

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCommand = &cobra.Command{
	Use:   "arbortree",
	Short: "Build and inspect an arbor ownership tree",
}

func init() {
	rootCommand.PersistentFlags().StringVar(&configPath, "config", "", "path to a tree TOML config")
	rootCommand.PersistentFlags().BoolVar(&debugCheck, "debug-check", false, "run the integrity checker after every mutation")
	rootCommand.AddCommand(demoCommand)
	rootCommand.AddCommand(checkCommand)
}

func buildTree() (*arbor.Tree, error) {
	var opts []arbor.TreeOption
	if configPath != "" {
		fileOpts, err := arbor.LoadTreeOptions(configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}
	if debugCheck {
		opts = append(opts, arbor.WithDebugCheck(true))
	}
	return arbor.NewTree(opts...), nil
}

var demoCommand = &cobra.Command{
	Use:   "demo",
	Short: "Build a small sample tree and dump it",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTree()
		if err != nil {
			return err
		}
		defer t.Shutdown()

		conn := arbor.Alloc(t, nil, "connection", arbor.WithName("conn"))
		arbor.Alloc(t, conn, "request-buffer", arbor.WithName("req"))
		arbor.Alloc(t, conn, "response-buffer", arbor.WithName("resp"))

		return arbor.Dump(cmd.OutOrStdout(), t)
	},
}

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Build the sample tree and run its integrity checker",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTree()
		if err != nil {
			return err
		}
		defer t.Shutdown()

		arbor.Alloc(t, nil, "connection", arbor.WithName("conn"))
		if err := arbor.Check(t, nil); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}
