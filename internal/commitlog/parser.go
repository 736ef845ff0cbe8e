// SPDX-License-Identifier: AGPL-3.0-or-later

package commitlog

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

const maxLineSize = 1024 * 1024

// Parse turns raw log lines into commit records, in input order.
// Only the first occurrence of sep on a line splits hash from message.
// Commits without file lines are kept; callers decide whether to drop them.
//
// File lines seen while no commit is open are held and handed to the next
// commit header. Lines still held at end of input are reported as Stray.
func Parse(lines []string, sep string) Log {
	if sep == "" {
		sep = DefaultSeparator
	}

	var log Log
	var current *Commit
	pending := []string{}

	flush := func() {
		if current != nil {
			log.Commits = append(log.Commits, *current)
			current = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			flush()
		case strings.Contains(line, sep):
			// A header without a preceding blank line still closes the open commit.
			flush()
			hash, message, _ := strings.Cut(line, sep)
			current = &Commit{Hash: hash, Message: message, Files: pending}
			pending = []string{}
		case current == nil:
			pending = append(pending, line)
		default:
			current.Files = append(current.Files, line)
		}
	}
	flush()

	if len(pending) > 0 {
		log.Stray = pending
	}
	return log
}

// Read scans r line by line and parses the result.
func Read(r io.Reader, sep string) (Log, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Log{}, errors.Wrap(err, "reading commit log")
	}
	return Parse(lines, sep), nil
}

// FileSource reads commits from a log file on disk.
type FileSource struct {
	Path      string
	Separator string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path, sep string) *FileSource {
	return &FileSource{Path: path, Separator: sep}
}

// Load opens and parses the log file. It implements Source.
func (s *FileSource) Load() (Log, error) {
	f, err := os.Open(s.Path) //nolint:gosec // G304: path comes from the operator
	if err != nil {
		return Log{}, errors.Wrapf(err, "opening commit log %s", s.Path)
	}
	defer func() { _ = f.Close() }()

	return Read(f, s.Separator)
}
