// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import "strings"

// Rule assigns Tag to every path starting with Prefix.
type Rule struct {
	Prefix string `yaml:"prefix"`
	Tag    Tag    `yaml:"tag"`
}

// DefaultRules returns the built-in rule list in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Prefix: "server/", Tag: Server},
		{Prefix: "frontend/", Tag: Frontend},
		{Prefix: "migrations/", Tag: DB},
		{Prefix: "exporter/", Tag: Exporter},
		{Prefix: "simulator/", Tag: Simulator},
		{Prefix: ".github/", Tag: CI},
		{Prefix: "WanBingo Bruno/", Tag: Bruno},
	}
}

// Classifier evaluates an ordered rule list. The first matching prefix wins;
// paths matching no rule are tagged Meta.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier over a copy of rules.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Default creates a Classifier over DefaultRules.
func Default() *Classifier {
	return New(DefaultRules())
}

// Rules returns a copy of the rule list in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify returns the tag for path. It never fails.
func (c *Classifier) Classify(path string) Tag {
	for _, r := range c.rules {
		if strings.HasPrefix(path, r.Prefix) {
			return r.Tag
		}
	}
	return Meta
}
