// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitlabel/cmd/commitlabel/internal/clierr"
)

const scenarioLog = `abc123|Fix bug
server/main.go

def456|Refactor
frontend/app.tsx
server/api.go

ghi789|Housekeeping
migrations/001.sql
exporter/x.py
frontend/y.tsx

jkl012|Empty commit

mno345|Touch README
README.md
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commit_log.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLabel_WritesCSV(t *testing.T) {
	in := writeLog(t, scenarioLog)
	out := filepath.Join(t.TempDir(), "new-names.csv")

	_, stderr, err := execute(t, "label", "--input", in, "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote commit labels")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"commit_hash,original_message,new_name\r\n"+
			"abc123,Fix bug,[SERVER] Update server\r\n"+
			"def456,Refactor,\"[FRONTEND,SERVER] Update frontend and server\"\r\n"+
			"ghi789,Housekeeping,\"[DB,EXPORTER,FRONTEND] Update database, exporter, and frontend\"\r\n"+
			"mno345,Touch README,[META] Update project files\r\n",
		string(got))
}

func TestLabel_StdoutWithoutSerialComma(t *testing.T) {
	in := writeLog(t, scenarioLog)

	stdout, _, err := execute(t, "label", "-i", in, "-o", "-", "--serial-comma=false", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, stdout, "| ghi789 | Housekeeping | [DB,EXPORTER,FRONTEND] Update database, exporter and frontend |\n")
	assert.NotContains(t, stdout, "jkl012")
}

func TestLabel_EnvironmentOverride(t *testing.T) {
	in := writeLog(t, "a1;msg\nsimulator/x.py\n")
	t.Setenv("COMMITLABEL_SEPARATOR", ";")
	t.Setenv("COMMITLABEL_INPUT", in)

	stdout, _, err := execute(t, "label", "--output", "-")
	require.NoError(t, err)
	assert.Equal(t, "commit_hash,original_message,new_name\r\na1,msg,[SIMULATOR] Update simulator\r\n", stdout)
}

func TestLabel_ConfigFile(t *testing.T) {
	in := writeLog(t, "a1|msg\nserver/x.go\n")
	cfgPath := filepath.Join(t.TempDir(), "commitlabel.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: "+in+"\noutput: '-'\ncrlf: false\n"), 0o600))

	stdout, _, err := execute(t, "--config", cfgPath, "label")
	require.NoError(t, err)
	assert.Equal(t, "commit_hash,original_message,new_name\na1,msg,[SERVER] Update server\n", stdout)
}

func TestLabel_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	in := writeLog(t, scenarioLog)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	badRules := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(badRules, []byte("rules:\n  - prefix: ''\n    tag: SERVER\n"), 0o600))

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "missing input", args: []string{"label", "-i", filepath.Join(dir, "nope.txt"), "-o", "-"}, code: clierr.CodeInput},
		{name: "unwritable output", args: []string{"label", "-i", in, "-o", filepath.Join(blocker, "out.csv")}, code: clierr.CodeOutput},
		{name: "bad separator", args: []string{"label", "-i", in, "--separator", "::"}, code: clierr.CodeUsage},
		{name: "bad format", args: []string{"label", "-i", in, "--format", "xml"}, code: clierr.CodeUsage},
		{name: "bad rules", args: []string{"label", "-i", in, "-o", "-", "--rules", badRules}, code: clierr.CodeUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, clierr.ExitCodeOf(err))
		})
	}
}

func TestVersion(t *testing.T) {
	t.Setenv("COMMITLABEL_VERSION", "1.2.3")
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "commitlabel version 1.2.3\n", stdout)
}
