// Package report writes check result lines to the console and an optional
// append-mode file.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/kata-containers/check-versions/internal/common/output"
)

// Reporter is a line sink with two independent destinations.
// The console receives colored lines unless quiet is set; the file, when
// configured, receives plain lines.
type Reporter struct {
	console io.Writer
	quiet   bool
	file    io.WriteCloser
}

// Option is a functional option for configuring Reporter
type Option func(*Reporter)

// WithConsole sets the console writer (default os.Stdout)
func WithConsole(w io.Writer) Option {
	return func(r *Reporter) {
		r.console = w
	}
}

// WithQuiet suppresses console output
func WithQuiet(quiet bool) Option {
	return func(r *Reporter) {
		r.quiet = quiet
	}
}

// New creates a reporter. When outfile is non-empty it is opened once in
// append mode, created if needed, and held until Close.
func New(outfile string, opts ...Option) (*Reporter, error) {
	r := &Reporter{console: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}

	if outfile != "" {
		f, err := os.OpenFile(outfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open output file: %w", err)
		}
		r.file = f
	}

	return r, nil
}

// WriteLine writes line followed by a newline to each enabled destination.
func (r *Reporter) WriteLine(line string) error {
	if r.file != nil {
		if _, err := io.WriteString(r.file, line+"\n"); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if !r.quiet {
		if _, err := fmt.Fprintln(r.console, output.FormatLine(line)); err != nil {
			return fmt.Errorf("failed to write console output: %w", err)
		}
	}

	return nil
}

// Close closes the output file if open
func (r *Reporter) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
