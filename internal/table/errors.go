package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for index validation on the mutation path.
// Match with errors.Is; use errors.As with *IndexError for the offending index.
var (
	ErrInvalidRow    = errors.New("invalid row index")
	ErrInvalidColumn = errors.New("invalid column index")
)

// Axis identifies which index of an update was out of bounds.
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// IndexError reports an out-of-bounds index passed to UpdateCell.
type IndexError struct {
	Axis  Axis
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid %s index: %d", e.Axis, e.Index)
}

// Is lets errors.Is match IndexError against the axis sentinels.
func (e *IndexError) Is(target error) bool {
	switch target {
	case ErrInvalidRow:
		return e.Axis == AxisRow
	case ErrInvalidColumn:
		return e.Axis == AxisColumn
	}
	return false
}

// FileError records a failed file operation and the path it was run against.
type FileError struct {
	Op   string // "open", "read", "create", "write"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
