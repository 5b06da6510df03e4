package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/csvedit/internal/config"
	"github.com/JonMunkholm/csvedit/internal/driver"
	"github.com/JonMunkholm/csvedit/internal/logging"
	"github.com/JonMunkholm/csvedit/internal/table"
)

// newRootCmd builds the csvedit command. Table output goes to stdout, logs
// and error reports to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		source, dest, value   string
		row, cellRow, cellCol int
		atomic                bool
	)

	cmd := &cobra.Command{
		Use:   "csvedit",
		Short: "Load a comma-delimited file, edit one cell and write it back",
		Long: `csvedit loads a comma-delimited file, prints one row and one cell,
replaces that cell, writes the table to the destination and prints it.

Every setting can also come from the environment (CSVEDIT_SOURCE, CSVEDIT_DEST,
CSVEDIT_ROW, CSVEDIT_CELL_ROW, CSVEDIT_CELL_COL, CSVEDIT_VALUE,
CSVEDIT_ATOMIC_WRITE) or a .env file. Flags win over both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("source") {
				cfg.Files.Source = source
			}
			if flags.Changed("dest") {
				cfg.Files.Destination = dest
			}
			if flags.Changed("atomic") {
				cfg.Files.Atomic = atomic
			}
			if flags.Changed("row") {
				cfg.Edit.RowIndex = row
			}
			if flags.Changed("cell-row") {
				cfg.Edit.CellRow = cellRow
			}
			if flags.Changed("cell-col") {
				cfg.Edit.CellColumn = cellCol
			}
			if flags.Changed("value") {
				cfg.Edit.Value = value
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)
			slog.Debug("configuration loaded", "config", cfg.String())

			return driver.Run(cmd.Context(), driver.PlanFromConfig(cfg), stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&source, "source", "", "file to load")
	f.StringVar(&dest, "dest", "", "file to write the edited table to")
	f.BoolVar(&atomic, "atomic", false, "write the destination through a temp file and rename")
	f.IntVar(&row, "row", 0, "row index to print")
	f.IntVar(&cellRow, "cell-row", 0, "row index of the cell to print and update")
	f.IntVar(&cellCol, "cell-col", 0, "column index of the cell to print and update")
	f.StringVar(&value, "value", "", "replacement value for the cell")

	return cmd
}

// reportError prints err and, when it maps to a known condition, the
// user-facing message with its code.
func reportError(w io.Writer, err error, colored bool) {
	c := color.New(color.FgRed, color.Bold)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	fmt.Fprintln(w, c.Sprint("error: ")+err.Error())
	if table.IsUserFacing(err) {
		fmt.Fprintln(w, table.FormatUserError(err))
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
