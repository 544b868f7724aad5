// Package demo registers the runnable demonstration routines and drives
// them by name. Each routine is independent, stateless, and writes
// human-readable text to the supplied writer.
package demo

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ErrUnknownDemo reports a demo name that is not registered.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is one runnable demonstration routine.
type Demo struct {
	Name    string
	Summary string
	Run     func(w io.Writer, logger *zap.Logger) error
}

// Registry returns the demos in their canonical run order.
func Registry() []Demo {
	return []Demo{
		{Name: "major", Summary: "bounded-choice dispatch on a declared major", Run: runMajor},
		{Name: "enumerate", Summary: "visitor traversal over a fixed sequence", Run: runEnumerate},
		{Name: "mood", Summary: "variable-length feelings report", Run: runMood},
		{Name: "splitname", Summary: "first/middle/last split of a full name", Run: runSplitName},
		{Name: "board", Summary: "coordinate get/set on a 2-D grid", Run: runBoard},
		{Name: "middlename", Summary: "presence check for an optional middle name", Run: runMiddleName},
		{Name: "garden", Summary: "plant inventory lookups", Run: runGarden},
	}
}

// Run executes the demo registered under name.
func Run(w io.Writer, logger *zap.Logger, name string) error {
	for _, d := range Registry() {
		if d.Name == name {
			return run(w, logger, d)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// RunAll executes every registered demo in order, stopping at the first
// failure.
func RunAll(w io.Writer, logger *zap.Logger) error {
	for _, d := range Registry() {
		if err := run(w, logger, d); err != nil {
			return err
		}
	}
	return nil
}

func run(w io.Writer, logger *zap.Logger, d Demo) error {
	logger.Debug("running demo", zap.String("demo", d.Name))

	fmt.Fprintln(w, headerStyle.Render("== "+d.Name+" =="))
	fmt.Fprintln(w, summaryStyle.Render(d.Summary))
	if err := d.Run(w, logger); err != nil {
		logger.Error("demo failed", zap.String("demo", d.Name), zap.Error(err))
		return fmt.Errorf("demo %s: %w", d.Name, err)
	}
	fmt.Fprintln(w)
	return nil
}
