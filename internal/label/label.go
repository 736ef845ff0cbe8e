// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitlabel - Commitlabel relabels commit history by the project areas each commit touches.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package label builds descriptive commit names from the areas a commit touches.
package label

import (
	"sort"
	"strings"

	"github.com/bartekus/commitlabel/internal/classify"
	"github.com/bartekus/commitlabel/internal/commitlog"
)

// Header is the column header row of the output table.
var Header = []string{"commit_hash", "original_message", "new_name"}

// Options controls summary rendering.
type Options struct {
	// SerialComma places a comma before "and" when three or more areas are listed.
	SerialComma bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{SerialComma: true}
}

// Row is one line of the output table.
type Row struct {
	Hash    string
	Message string
	Label   string
}

// Fields returns the row in column order.
func (r Row) Fields() []string {
	return []string{r.Hash, r.Message, r.Label}
}

// Result holds the rows to write and the hashes of commits that produced none.
type Result struct {
	Rows    []Row
	Skipped []string
}

// Tagger maps a file path to a tag.
type Tagger interface {
	Classify(path string) classify.Tag
}

// Tags returns the distinct tags touched by files, sorted by identifier.
func Tags(files []string, tagger Tagger) []classify.Tag {
	seen := make(map[classify.Tag]struct{}, len(files))
	tags := make([]classify.Tag, 0, len(files))
	for _, f := range files {
		tag := tagger.Classify(f)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].String() < tags[j].String()
	})
	return tags
}

// Prefix renders the bracketed tag list, e.g. "[DB,SERVER] ".
func Prefix(tags []classify.Tag) string {
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.String()
	}
	return "[" + strings.Join(ids, ",") + "] "
}

// Summary renders the human-readable sentence for tags, which must be non-empty.
func Summary(tags []classify.Tag, opts Options) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.DisplayName()
	}

	switch len(names) {
	case 0:
		return "Update"
	case 1:
		return "Update " + names[0]
	case 2:
		return "Update " + names[0] + " and " + names[1]
	}

	head := strings.Join(names[:len(names)-1], ", ")
	if opts.SerialComma {
		head += ","
	}
	return "Update " + head + " and " + names[len(names)-1]
}

// Name returns the full label: tag prefix followed by the summary.
func Name(tags []classify.Tag, opts Options) string {
	return Prefix(tags) + Summary(tags, opts)
}

// Build labels a single commit. It reports false for commits without files.
func Build(c commitlog.Commit, tagger Tagger, opts Options) (Row, bool) {
	tags := Tags(c.Files, tagger)
	if len(tags) == 0 {
		return Row{}, false
	}
	return Row{
		Hash:    c.Hash,
		Message: c.Message,
		Label:   Name(tags, opts),
	}, true
}

// Summarize labels commits in order, skipping those without files.
func Summarize(commits []commitlog.Commit, tagger Tagger, opts Options) Result {
	res := Result{Rows: make([]Row, 0, len(commits))}
	for _, c := range commits {
		row, ok := Build(c, tagger, opts)
		if !ok {
			res.Skipped = append(res.Skipped, c.Hash)
			continue
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}
