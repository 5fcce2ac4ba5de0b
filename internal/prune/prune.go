// Package prune runs the deletions staged by an interactive session.
package prune

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/Johannes-Berggren/goblin-prune/internal/git"
	"github.com/Johannes-Berggren/goblin-prune/internal/logging"
)

// Result is the outcome of deleting one branch.
type Result struct {
	Name   string
	Output string
	Err    error
}

// Summary collects the results of a batch in the order they were attempted.
type Summary struct {
	Results []Result
}

func (s Summary) Deleted() []string {
	var names []string
	for _, r := range s.Results {
		if r.Err == nil {
			names = append(names, r.Name)
		}
	}
	return names
}

func (s Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Deleter removes branches one at a time. A failed deletion is reported and
// the batch continues; nothing is retried or rolled back.
type Deleter struct {
	Remote git.Remote
	Log    *logging.Logger
	Out    *termenv.Output
}

// NewDeleter writes progress to w, coloured when w is a terminal.
func NewDeleter(remote git.Remote, log *logging.Logger, w io.Writer) *Deleter {
	if log == nil {
		log = logging.Nop()
	}
	return &Deleter{Remote: remote, Log: log, Out: termenv.NewOutput(w)}
}

// Run deletes names in order, printing each result as soon as it is known.
func (d *Deleter) Run(ctx context.Context, names []string) Summary {
	var summary Summary

	for _, name := range names {
		output, err := d.Remote.DeleteBranch(ctx, name)
		result := Result{Name: name, Output: output, Err: err}
		summary.Results = append(summary.Results, result)

		if err != nil {
			d.Log.Error("delete %s: %v", name, err)
		} else {
			d.Log.Info("deleted %s", name)
		}
		d.printResult(result)
	}

	return summary
}

func (d *Deleter) printResult(r Result) {
	if r.Err != nil {
		mark := d.Out.String("✗").Foreground(d.Out.Color("1")).Bold()
		fmt.Fprintf(d.Out, "%s %s\n", mark, r.Name)
		return
	}

	mark := d.Out.String("✓").Foreground(d.Out.Color("2")).Bold()
	fmt.Fprintf(d.Out, "%s %s\n", mark, r.Name)
	if out := strings.TrimRight(r.Output, "\n"); out != "" {
		fmt.Fprintln(d.Out, indent(out))
	}
}

// Report prints the failures of a batch, if any.
func (d *Deleter) Report(s Summary) {
	failed := s.Failed()
	deleted := len(s.Results) - len(failed)

	fmt.Fprintf(d.Out, "\n%d deleted, %d failed\n", deleted, len(failed))
	if len(failed) == 0 {
		return
	}
	for _, r := range failed {
		line := d.Out.String(fmt.Sprintf("  %s: %v", r.Name, r.Err)).Foreground(d.Out.Color("1"))
		fmt.Fprintln(d.Out, line)
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
