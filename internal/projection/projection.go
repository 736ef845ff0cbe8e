// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projection renders label tables and writes them to disk.
package projection

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// AtomicWrite writes content to path atomically by writing to a temp file and renaming it.
// On failure path is left untouched.
func AtomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dir)
	}

	tmpFile, err := os.CreateTemp(dir, ".commitlabel-tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.Write(content); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(err, "writing content")
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(err, "setting file mode")
	}
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return errors.Wrapf(err, "moving temp file to %s", path)
	}

	return nil
}

// RenderCSV renders a header and rows as CSV with standard quoting.
// Lines end in "\n" unless crlf is set.
func RenderCSV(header []string, rows [][]string, crlf bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = crlf

	if err := w.Write(header); err != nil {
		return nil, errors.Wrap(err, "writing header")
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, errors.Wrap(err, "writing rows")
	}
	return buf.Bytes(), nil
}

// RenderTable renders a Markdown table.
// Pipes inside cells are escaped and line breaks collapsed to spaces.
func RenderTable(headers []string, rows [][]string) string {
	var b strings.Builder

	// Header
	b.WriteString("| " + strings.Join(escapeCells(headers), " | ") + " |\n")

	// Separator
	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	// Rows
	for _, row := range rows {
		b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}

	return b.String()
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellReplacer.Replace(c)
	}
	return out
}
