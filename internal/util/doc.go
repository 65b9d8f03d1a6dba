// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across mdcheat.
//
// String Utilities (cell-width aware, via go-runewidth):
//   - Width, TruncateWidth, PadRight, JoinEnds, FirstLine
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
