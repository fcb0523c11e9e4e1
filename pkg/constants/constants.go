// Package constants provides shared constants for the collateral-allocator
// application.
package constants

// Model defaults
const (
	// DefaultHaircut is applied to (asset, account) pairs absent from the
	// haircut matrix: the full market value counts toward the requirement.
	DefaultHaircut = 1.0
)

// Solver defaults
const (
	// DefaultSolverEngine selects the built-in simplex implementation.
	DefaultSolverEngine = "simplex"

	// DefaultSimplexTolerance is the reduced-cost tolerance handed to the
	// simplex routine when no tolerance is configured.
	DefaultSimplexTolerance = 1e-10

	// ZeroClampTolerance bounds how far below zero a solver-reported
	// allocation may sit before it is treated as a genuine negative rather
	// than a rounding artifact to clamp.
	ZeroClampTolerance = 1e-9

	// ComparisonTolerance is the tolerance for comparing solved quantities
	// and costs in diagnostics and tests.
	ComparisonTolerance = 1e-6
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output document
	OutputFormatJSON = "json"
)

// Status strings reported when no optimal solution exists.
const (
	// StatusNoSolution is reported for infeasible models.
	StatusNoSolution = "No optimal solution found."

	// StatusUnbounded is reported when the solver claims unboundedness,
	// which this model's structure should never produce.
	StatusUnbounded = "No optimal solution found: problem is unbounded."
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum size for posted
	// allocation payloads (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
