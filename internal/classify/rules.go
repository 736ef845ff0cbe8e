// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ruleEntry is the on-disk shape of a rule. Tags stay strings until
// validation so every bad entry can be reported at once.
type ruleEntry struct {
	Prefix string `yaml:"prefix"`
	Tag    string `yaml:"tag"`
}

// rulesDocument matches the top-level shape of a rules file.
type rulesDocument struct {
	Rules []ruleEntry `yaml:"rules"`
}

// LoadRules reads a YAML rules file.
func LoadRules(path string) ([]Rule, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the operator
	if err != nil {
		return nil, errors.Wrapf(err, "opening rules file %s", path)
	}
	defer func() { _ = f.Close() }()

	rules, err := DecodeRules(f)
	if err != nil {
		return nil, errors.Wrapf(err, "rules file %s", path)
	}
	return rules, nil
}

// DecodeRules parses and validates a YAML rules document of the form
//
//	rules:
//	  - prefix: server/
//	    tag: SERVER
//
// Meta may not be used as an explicit tag; it is always the fallback.
func DecodeRules(r io.Reader) ([]Rule, error) {
	var doc rulesDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no rules defined")
		}
		return nil, errors.Wrap(err, "decoding rules")
	}
	if len(doc.Rules) == 0 {
		return nil, errors.New("no rules defined")
	}

	var result error
	seen := make(map[string]int, len(doc.Rules))
	rules := make([]Rule, 0, len(doc.Rules))
	for i, e := range doc.Rules {
		n := i + 1
		if e.Prefix == "" {
			result = multierror.Append(result, fmt.Errorf("rule %d: empty prefix", n))
		} else if prev, ok := seen[e.Prefix]; ok {
			result = multierror.Append(result, fmt.Errorf("rule %d: prefix %q already used by rule %d", n, e.Prefix, prev))
		} else {
			seen[e.Prefix] = n
		}

		tag, err := ParseTag(e.Tag)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("rule %d: %w", n, err))
			continue
		}
		if tag == Meta {
			result = multierror.Append(result, fmt.Errorf("rule %d: %s is the fallback tag and cannot be assigned", n, Meta))
			continue
		}
		rules = append(rules, Rule{Prefix: e.Prefix, Tag: tag})
	}
	if result != nil {
		return nil, result
	}
	return rules, nil
}

// EncodeRules writes rules in the format DecodeRules accepts.
func EncodeRules(w io.Writer, rules []Rule) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Rules []Rule `yaml:"rules"`
	}{Rules: rules}); err != nil {
		return errors.Wrap(err, "encoding rules")
	}
	return enc.Close()
}
