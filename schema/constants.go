package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
	SQLiteOut  OutputMode = "sqlite"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
	SQLiteOut:  {},
}

// Modes that cannot stream to a terminal and therefore require --output-file.
var FileOnlyOutputModes = map[OutputMode]struct{}{
	ParquetOut: {},
	SQLiteOut:  {},
}
