// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import "log/slog"

// logDebug emits a structured debug-level record if t has a logger
// configured (WithLogger); it is a no-op otherwise, so the hot path pays
// nothing when logging isn't wired up (SPEC_FULL.md §2 Logging, grounded
// on rclone's slog-based fs/log package).
func (t *Tree) logDebug(msg string, args ...any) {
	if t.logger == nil {
		return
	}
	t.logger.Debug(msg, args...)
}

func (t *Tree) logWarn(msg string, args ...any) {
	if t.logger == nil {
		return
	}
	t.logger.Warn(msg, args...)
}

func logAttrsForNode(n *Node) []any {
	name, _, ok := n.findName()
	if !ok {
		return []any{slog.String("node", "<unnamed>")}
	}
	return []any{slog.String("node", name)}
}
