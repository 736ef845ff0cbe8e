// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitlabel - Commitlabel relabels commit history by the project areas each commit touches.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package relabel runs the parse, classify and write pipeline.
package relabel

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/bartekus/commitlabel/internal/classify"
	"github.com/bartekus/commitlabel/internal/commitlog"
	"github.com/bartekus/commitlabel/internal/config"
	"github.com/bartekus/commitlabel/internal/label"
	"github.com/bartekus/commitlabel/internal/projection"
)

// Failure classes, checked with errors.Is.
var (
	ErrInput  = errors.New("input unreadable")
	ErrRules  = errors.New("rules invalid")
	ErrOutput = errors.New("output unwritable")
)

// Stats summarizes a completed run.
type Stats struct {
	Commits int
	Rows    int
	Skipped int
	Stray   int
}

// Relabeler turns a commit log into a label table.
type Relabeler struct {
	cfg    config.Config
	src    commitlog.Source
	log    *zap.Logger
	stdout io.Writer
}

// New creates a Relabeler reading from src, or from cfg.Input when src is nil.
// stdout receives output when cfg.Output is "-".
func New(cfg config.Config, src commitlog.Source, log *zap.Logger, stdout io.Writer) *Relabeler {
	if src == nil {
		src = commitlog.NewFileSource(cfg.Input, cfg.Separator)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Relabeler{cfg: cfg, src: src, log: log, stdout: stdout}
}

// Classifier returns the classifier for the configured rules file, or the
// built-in rules when none is set.
func Classifier(rulesPath string) (*classify.Classifier, error) {
	if rulesPath == "" {
		return classify.Default(), nil
	}
	rules, err := classify.LoadRules(rulesPath)
	if err != nil {
		return nil, errors.Mark(err, ErrRules)
	}
	return classify.New(rules), nil
}

// Run reads the input log, labels every commit with files and writes the
// table. Nothing is written if any step fails.
func (r *Relabeler) Run() (Stats, error) {
	tagger, err := Classifier(r.cfg.Rules)
	if err != nil {
		return Stats{}, err
	}

	parsed, err := r.src.Load()
	if err != nil {
		return Stats{}, errors.Mark(err, ErrInput)
	}
	r.log.Debug("Parsed commit log",
		zap.String("input", r.cfg.Input),
		zap.Int("commits", len(parsed.Commits)),
	)
	for _, line := range parsed.Stray {
		r.log.Warn("Ignoring file line after the last commit", zap.String("line", line))
	}

	res := label.Summarize(parsed.Commits, tagger, label.Options{SerialComma: r.cfg.SerialComma})
	for _, hash := range res.Skipped {
		r.log.Debug("Skipping commit without files", zap.String("hash", hash))
	}

	content, err := r.render(res.Rows)
	if err != nil {
		return Stats{}, errors.Mark(err, ErrOutput)
	}
	if err := r.write(content); err != nil {
		return Stats{}, errors.Mark(err, ErrOutput)
	}

	stats := Stats{
		Commits: len(parsed.Commits),
		Rows:    len(res.Rows),
		Skipped: len(res.Skipped),
		Stray:   len(parsed.Stray),
	}
	r.log.Info("Wrote commit labels",
		zap.String("output", r.cfg.Output),
		zap.Int("rows", stats.Rows),
		zap.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

func (r *Relabeler) render(rows []label.Row) ([]byte, error) {
	fields := make([][]string, len(rows))
	for i, row := range rows {
		fields[i] = row.Fields()
	}

	switch r.cfg.Format {
	case config.FormatMD:
		return []byte(projection.RenderTable(label.Header, fields)), nil
	case config.FormatCSV, "":
		return projection.RenderCSV(label.Header, fields, r.cfg.CRLF)
	default:
		return nil, errors.Newf("invalid format: %s", r.cfg.Format)
	}
}

func (r *Relabeler) write(content []byte) error {
	if r.cfg.ToStdout() {
		if _, err := r.stdout.Write(content); err != nil {
			return errors.Wrap(err, "writing to stdout")
		}
		return nil
	}
	return projection.AtomicWrite(r.cfg.Output, content)
}
