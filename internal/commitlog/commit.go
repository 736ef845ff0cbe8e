// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitlabel - Commitlabel relabels commit history by the project areas each commit touches.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commitlog parses exported commit logs.
//
// A log is a sequence of blocks separated by blank lines. The first line of a
// block is "<hash><sep><message>"; the remaining lines are file paths relative
// to the repository root.
package commitlog

// DefaultSeparator splits the hash from the message on a commit line.
const DefaultSeparator = "|"

// Commit is a single commit record read from the log.
type Commit struct {
	Hash    string
	Message string
	Files   []string
}

// Log is the result of parsing a commit log.
type Log struct {
	Commits []Commit
	// Stray holds file lines after the last commit header that no commit
	// could take over.
	Stray []string
}

// Source provides a parsed commit log.
type Source interface {
	Load() (Log, error)
}
