// Package table holds a comma-delimited file in memory as rows of string
// cells and writes it back out. Fields are split on every comma; there is no
// quoting or escaping.
package table

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Separator is the literal field delimiter. It is never escaped or quoted.
const Separator = ","

// Row is one record: the cells of a single input line in column order.
type Row []string

// Table holds rows of string cells in file order.
//
// Rows may differ in length. The zero value is an empty table ready for use.
// A Table is not safe for concurrent use.
type Table struct {
	rows []Row
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Reset drops every row. Load never clears on its own.
func (t *Table) Reset() {
	t.rows = nil
}

// Load appends one row per line of the file at path.
//
// Rows read before a read failure stay in the table.
func (t *Table) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	before := len(t.rows)
	if err := t.LoadReader(f); err != nil {
		var fe *FileError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return err
	}

	slog.Debug("rows loaded",
		slog.String("path", path),
		slog.Int("rows", len(t.rows)-before),
	)
	return nil
}

// LoadReader appends one row per line read from r. Both "\n" and "\r\n"
// terminators are stripped; a final line without a terminator still counts.
func (t *Table) LoadReader(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			t.rows = append(t.rows, splitLine(line))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &FileError{Op: "read", Err: err}
		}
	}
}

func splitLine(line string) Row {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return strings.Split(line, Separator)
}

// GetRow returns a copy of the row at index, or false if there is none.
func (t *Table) GetRow(index int) (Row, bool) {
	if index < 0 || index >= len(t.rows) {
		return nil, false
	}
	row := make(Row, len(t.rows[index]))
	copy(row, t.rows[index])
	return row, true
}

// GetCell returns the cell at (row, col), or false if either index is out of bounds.
func (t *Table) GetCell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.rows) {
		return "", false
	}
	r := t.rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	return r[col], true
}

// UpdateCell replaces the cell at (row, col) with value.
//
// The row index is checked before the column index. value is stored as is;
// a separator inside it will split the cell on the next load of the output.
func (t *Table) UpdateCell(row, col int, value string) error {
	if row < 0 || row >= len(t.rows) {
		return &IndexError{Axis: AxisRow, Index: row}
	}
	r := t.rows[row]
	if col < 0 || col >= len(r) {
		return &IndexError{Axis: AxisColumn, Index: col}
	}
	r[col] = value
	return nil
}

// WriteTo writes every row joined by Separator, each followed by a newline.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, row := range t.rows {
		m, err := bw.WriteString(strings.Join(row, Separator) + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Write creates or truncates the file at path and writes the table to it.
func (t *Table) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}

	n, err := t.WriteTo(f)
	if err != nil {
		f.Close()
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}

	slog.Debug("table written",
		slog.String("path", path),
		slog.Int("rows", len(t.rows)),
		slog.Int64("bytes", n),
	)
	return nil
}

// WriteAtomic writes the same bytes as Write, but through a temp file that is
// renamed over path, so readers never observe a partial file.
func (t *Table) WriteAtomic(path string) error {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	size := buf.Len()
	if err := atomic.WriteFile(path, &buf); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}

	slog.Debug("table written atomically",
		slog.String("path", path),
		slog.Int("rows", len(t.rows)),
		slog.Int("bytes", size),
	)
	return nil
}

// Display prints the table to standard output.
func (t *Table) Display() error {
	return t.DisplayTo(os.Stdout)
}

// DisplayTo prints the table to w in the same format Write uses.
func (t *Table) DisplayTo(w io.Writer) error {
	_, err := t.WriteTo(w)
	return err
}
