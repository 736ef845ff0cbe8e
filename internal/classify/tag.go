// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitlabel - Commitlabel relabels commit history by the project areas each commit touches.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package classify maps repository file paths to project-area tags.
package classify

import "fmt"

// Tag identifies the project area a file path belongs to.
type Tag int

const (
	Server Tag = iota
	Frontend
	DB
	Exporter
	Simulator
	CI
	Bruno
	Meta
)

var tagIDs = [...]string{
	Server:    "SERVER",
	Frontend:  "FRONTEND",
	DB:        "DB",
	Exporter:  "EXPORTER",
	Simulator: "SIMULATOR",
	CI:        "CI",
	Bruno:     "BRUNO",
	Meta:      "META",
}

var displayNames = [...]string{
	Server:    "server",
	Frontend:  "frontend",
	DB:        "database",
	Exporter:  "exporter",
	Simulator: "simulator",
	CI:        "CI/CD",
	Bruno:     "Bruno tests",
	Meta:      "project files",
}

// AllTags returns every tag in declaration order.
func AllTags() []Tag {
	return []Tag{Server, Frontend, DB, Exporter, Simulator, CI, Bruno, Meta}
}

// String returns the tag identifier, e.g. "SERVER".
func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagIDs) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagIDs[t]
}

// DisplayName returns the human-readable area name used in summaries.
func (t Tag) DisplayName() string {
	if t < 0 || int(t) >= len(displayNames) {
		return t.String()
	}
	return displayNames[t]
}

// ParseTag resolves a tag identifier. Matching is exact.
func ParseTag(s string) (Tag, error) {
	for i, id := range tagIDs {
		if id == s {
			return Tag(i), nil
		}
	}
	return Meta, fmt.Errorf("unknown tag %q", s)
}

// MarshalYAML encodes the tag as its identifier.
func (t Tag) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
