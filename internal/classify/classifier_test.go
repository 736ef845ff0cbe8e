// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_DefaultRules(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Tag
	}{
		{name: "server", path: "server/main.go", want: Server},
		{name: "frontend", path: "frontend/app.tsx", want: Frontend},
		{name: "migrations", path: "migrations/001.sql", want: DB},
		{name: "exporter", path: "exporter/x.py", want: Exporter},
		{name: "simulator", path: "simulator/run.py", want: Simulator},
		{name: "github workflows", path: ".github/workflows/ci.yml", want: CI},
		{name: "bruno collection", path: "WanBingo Bruno/login.bru", want: Bruno},
		{name: "root file", path: "README.md", want: Meta},
		{name: "empty path", path: "", want: Meta},
		{name: "prefix without slash", path: "server", want: Meta},
		{name: "nested server dir", path: "tools/server/main.go", want: Meta},
		{name: "case sensitive", path: "Server/main.go", want: Meta},
		{name: "bruno lowercase", path: "wanbingo bruno/x.bru", want: Meta},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.path))
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	valid := make(map[Tag]bool)
	for _, tag := range AllTags() {
		valid[tag] = true
	}

	c := Default()
	paths := []string{"", "/", "server", "server/", "frontend/a/b/c", "💥", ".github", "migrations\\x.sql", "   "}
	for _, p := range paths {
		assert.True(t, valid[c.Classify(p)], "path %q", p)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := New([]Rule{
		{Prefix: "server/api/", Tag: Frontend},
		{Prefix: "server/", Tag: Server},
	})

	assert.Equal(t, Frontend, c.Classify("server/api/x.go"))
	assert.Equal(t, Server, c.Classify("server/db.go"))
}

func TestNew_CopiesRules(t *testing.T) {
	rules := []Rule{{Prefix: "server/", Tag: Server}}
	c := New(rules)
	rules[0].Tag = CI

	assert.Equal(t, Server, c.Classify("server/x"))

	got := c.Rules()
	got[0].Tag = DB
	assert.Equal(t, Server, c.Classify("server/x"))
}

func TestTag_Names(t *testing.T) {
	tests := []struct {
		tag     Tag
		id      string
		display string
	}{
		{Server, "SERVER", "server"},
		{Frontend, "FRONTEND", "frontend"},
		{DB, "DB", "database"},
		{Exporter, "EXPORTER", "exporter"},
		{Simulator, "SIMULATOR", "simulator"},
		{CI, "CI", "CI/CD"},
		{Bruno, "BRUNO", "Bruno tests"},
		{Meta, "META", "project files"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.id, tt.tag.String())
			assert.Equal(t, tt.display, tt.tag.DisplayName())

			parsed, err := ParseTag(tt.id)
			assert.NoError(t, err)
			assert.Equal(t, tt.tag, parsed)
		})
	}

	assert.Equal(t, "Tag(42)", Tag(42).String())
	_, err := ParseTag("server")
	assert.Error(t, err)
}
