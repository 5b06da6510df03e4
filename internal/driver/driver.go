// Package driver runs the fixed csvedit sequence against a table:
// load, look up a row, look up a cell, update that cell, write the table out
// and display it. The first failing step ends the run.
package driver

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/JonMunkholm/csvedit/internal/config"
	"github.com/JonMunkholm/csvedit/internal/logging"
	"github.com/JonMunkholm/csvedit/internal/table"
)

// Plan holds every path and position a run uses. Indices are zero-based.
type Plan struct {
	Source      string
	Destination string
	RowIndex    int
	CellRow     int
	CellColumn  int
	Value       string
	Atomic      bool
}

// PlanFromConfig builds a Plan from loaded configuration.
func PlanFromConfig(cfg *config.Config) Plan {
	return Plan{
		Source:      cfg.Files.Source,
		Destination: cfg.Files.Destination,
		RowIndex:    cfg.Edit.RowIndex,
		CellRow:     cfg.Edit.CellRow,
		CellColumn:  cfg.Edit.CellColumn,
		Value:       cfg.Edit.Value,
		Atomic:      cfg.Files.Atomic,
	}
}

// Run executes plan, printing lookups and the final table to out.
//
// A run ID is attached to ctx for logging unless one is already present.
// ctx is checked between steps; nothing inside a step is interruptible.
func Run(ctx context.Context, plan Plan, out io.Writer) error {
	if logging.RunID(ctx) == "" {
		ctx = logging.WithRunID(ctx, uuid.NewString())
	}
	log := logging.WithFields(ctx, "source", plan.Source, "destination", plan.Destination)

	t := table.New()

	steps := []struct {
		name string
		fn   func() error
	}{
		{"load", func() error { return t.Load(plan.Source) }},
		{"lookup row", func() error { return printRow(out, t, plan.RowIndex) }},
		{"lookup cell", func() error { return printCell(out, t, plan.CellRow, plan.CellColumn) }},
		{"update cell", func() error { return t.UpdateCell(plan.CellRow, plan.CellColumn, plan.Value) }},
		{"write", func() error {
			if plan.Atomic {
				return t.WriteAtomic(plan.Destination)
			}
			return t.Write(plan.Destination)
		}},
		{"display", func() error { return t.DisplayTo(out) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: operation cancelled: %w", step.name, err)
		}
		if err := step.fn(); err != nil {
			log.Debug("step failed", "step", step.name, "error", err)
			return fmt.Errorf("%s: %w", step.name, err)
		}
		log.Debug("step done", "step", step.name, "rows", t.Len())
	}

	log.Info("run complete", "rows", t.Len())
	return nil
}

// printRow prints the row at index if it exists. Absence prints nothing.
func printRow(w io.Writer, t *table.Table, index int) error {
	row, ok := t.GetRow(index)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "Row %d: %s\n", index, formatRow(row))
	return err
}

// formatRow renders row as a bracketed, comma-separated list of quoted cells,
// e.g. ["d", "e", "f"].
func formatRow(row table.Row) string {
	quoted := make([]string, len(row))
	for i, cell := range row {
		quoted[i] = strconv.Quote(cell)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// printCell prints the cell at (row, col) if it exists. Absence prints nothing.
func printCell(w io.Writer, t *table.Table, row, col int) error {
	cell, ok := t.GetCell(row, col)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "Cell (%d, %d): %s\n", row, col, cell)
	return err
}
