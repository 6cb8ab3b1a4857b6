package schema

// Custom string types for type safety.
type (
	// Level represents the severity classification of a log record.
	Level string

	// OutputMode represents the format of the output.
	OutputMode string

	// RootCauseCategory represents a heuristic root-cause bucket.
	RootCauseCategory string
)

// All severity levels supported, highest priority first.
const (
	ErrorLevel   Level = "ERROR"
	WarningLevel Level = "WARNING"
	SuccessLevel Level = "SUCCESS"
	InfoLevel    Level = "INFO"
	UnknownLevel Level = "UNKNOWN"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All root-cause categories supported.
const (
	ConnectionCause  RootCauseCategory = "Connection/Network Issues"
	MemoryCause      RootCauseCategory = "Memory Issues"
	DataQualityCause RootCauseCategory = "Data Quality Issues"
	PermissionCause  RootCauseCategory = "Permission/Access Issues"
	PerformanceCause RootCauseCategory = "Performance Bottlenecks"
)

// Analysis constants. The slow threshold and preview width come from the
// diagnostics contract and are not user-configurable.
const (
	// SlowThresholdSeconds marks an operation as a performance bottleneck.
	SlowThresholdSeconds = 60.0

	// SlowOperationLimit caps the slowest-operations ranking.
	SlowOperationLimit = 10

	// PreviewWidth caps the raw-text preview stored for slow operations.
	PreviewWidth = 200
)

// AllLevels returns all severity levels in priority order.
var AllLevels = []Level{ErrorLevel, WarningLevel, SuccessLevel, InfoLevel, UnknownLevel}

// AllRootCauseCategories lists categories in declaration order, which is the
// tie-break order for root-cause reporting.
var AllRootCauseCategories = []RootCauseCategory{
	ConnectionCause,
	MemoryCause,
	DataQualityCause,
	PermissionCause,
	PerformanceCause,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}
