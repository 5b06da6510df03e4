package driver

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/csvedit/internal/config"
	"github.com/JonMunkholm/csvedit/internal/table"
)

func setup(t *testing.T, content string) Plan {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))
	return Plan{
		Source:      src,
		Destination: filepath.Join(dir, "updated_data.csv"),
		RowIndex:    1,
		CellRow:     2,
		CellColumn:  3,
		Value:       "Updated Value",
	}
}

// The stock positions target column 3, which a 3-column file does not have.
func TestRun_ThreeByThreeFailsOnColumn(t *testing.T) {
	plan := setup(t, "a,b,c\nd,e,f\ng,h,i\n")
	var out bytes.Buffer

	err := Run(context.Background(), plan, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrInvalidColumn)
	assert.EqualError(t, err, "update cell: invalid column index: 3")
	assert.Equal(t, "Row 1: [\"d\", \"e\", \"f\"]\n", out.String(), "cell lookup is absent and prints nothing")

	_, statErr := os.Stat(plan.Destination)
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "nothing is written after a failed update")
}

func TestRun_FourColumns(t *testing.T) {
	plan := setup(t, "a,b,c,d\ne,f,g,h\ni,j,k,l\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), plan, &out))

	want := "Row 1: [\"e\", \"f\", \"g\", \"h\"]\n" +
		"Cell (2, 3): l\n" +
		"a,b,c,d\ne,f,g,h\ni,j,k,Updated Value\n"
	assert.Equal(t, want, out.String())

	data, err := os.ReadFile(plan.Destination)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c,d\ne,f,g,h\ni,j,k,Updated Value\n", string(data))
}

func TestRun_Atomic(t *testing.T) {
	plan := setup(t, "x,y\n")
	plan.RowIndex, plan.CellRow, plan.CellColumn = 0, 0, 1
	plan.Value = ""
	plan.Atomic = true

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), plan, &out))

	data, err := os.ReadFile(plan.Destination)
	require.NoError(t, err)
	assert.Equal(t, "x,\n", string(data))
	assert.Equal(t, "Row 0: [\"x\", \"y\"]\nCell (0, 1): y\nx,\n", out.String())
}

func TestRun_MissingSource(t *testing.T) {
	plan := setup(t, "")
	plan.Source = filepath.Join(t.TempDir(), "missing.csv")

	var out bytes.Buffer
	err := Run(context.Background(), plan, &out)

	var fe *table.FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "open", fe.Op)
	assert.Equal(t, "FILE001", table.MapError(err).Code)
	assert.Empty(t, out.String())
}

func TestRun_EmptyFileFailsOnRow(t *testing.T) {
	plan := setup(t, "")
	var out bytes.Buffer

	err := Run(context.Background(), plan, &out)

	assert.ErrorIs(t, err, table.ErrInvalidRow)
	assert.Empty(t, out.String())
}

func TestRun_UnwritableDestination(t *testing.T) {
	plan := setup(t, "a,b,c,d\ne,f,g,h\ni,j,k,l\n")
	plan.Destination = filepath.Join(t.TempDir(), "no-such-dir", "out.csv")

	var out bytes.Buffer
	err := Run(context.Background(), plan, &out)

	var fe *table.FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "create", fe.Op)
	assert.Equal(t, "FILE004", table.MapError(err).Code)
	assert.NotContains(t, out.String(), "Updated Value", "display never runs after a failed write")
}

func TestRun_Cancelled(t *testing.T) {
	plan := setup(t, "a\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, plan, &out)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestFormatRow(t *testing.T) {
	tests := []struct {
		row  table.Row
		want string
	}{
		{table.Row{"d", "e", "f"}, `["d", "e", "f"]`},
		{table.Row{"only"}, `["only"]`},
		{table.Row{""}, `[""]`},
		{table.Row{" a ", `q"t`}, `[" a ", "q\"t"]`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRow(tt.row))
	}
}

func TestPlanFromConfig(t *testing.T) {
	cfg := &config.Config{
		Files: config.FilesConfig{Source: "in.csv", Destination: "out.csv", Atomic: true},
		Edit:  config.EditConfig{RowIndex: 4, CellRow: 5, CellColumn: 6, Value: "v"},
	}

	assert.Equal(t, Plan{
		Source:      "in.csv",
		Destination: "out.csv",
		RowIndex:    4,
		CellRow:     5,
		CellColumn:  6,
		Value:       "v",
		Atomic:      true,
	}, PlanFromConfig(cfg))
}
