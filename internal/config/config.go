// Package config provides centralized configuration for csvedit.
// Values come from environment variables (optionally seeded from a .env file
// by the caller) with defaults that reproduce the stock edit run, and are
// validated up front so a bad setting fails before any file is touched.
package config

// Config holds all application configuration.
type Config struct {
	Files   FilesConfig
	Edit    EditConfig
	Logging LoggingConfig
}

// FilesConfig holds the input and output locations.
type FilesConfig struct {
	// Source is the file to load (default: ownership/data.csv)
	Source string `env:"CSVEDIT_SOURCE" default:"ownership/data.csv"`

	// Destination is the file the edited table is written to (default: ownership/updated_data.csv)
	Destination string `env:"CSVEDIT_DEST" envAlt:"CSVEDIT_DESTINATION" default:"ownership/updated_data.csv"`

	// Atomic writes the destination through a temp file and rename (default: false)
	Atomic bool `env:"CSVEDIT_ATOMIC_WRITE" default:"false"`
}

// EditConfig holds the lookup and update positions. Indices are zero-based.
type EditConfig struct {
	// RowIndex is the row printed by the row lookup (default: 1)
	RowIndex int `env:"CSVEDIT_ROW" default:"1"`

	// CellRow is the row of the cell looked up and updated (default: 2)
	CellRow int `env:"CSVEDIT_CELL_ROW" default:"2"`

	// CellColumn is the column of the cell looked up and updated (default: 3)
	CellColumn int `env:"CSVEDIT_CELL_COL" default:"3"`

	// Value replaces the cell at (CellRow, CellColumn) (default: Updated Value)
	Value string `env:"CSVEDIT_VALUE" default:"Updated Value"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
