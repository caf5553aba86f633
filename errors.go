package benchreport

import "errors"

// Sentinel errors for report generation. All are fatal: the pipeline never
// recovers internally, and a failure mid-run may leave partial output in the
// versioned directory.
var (
	ErrAlreadyReported = errors.New("report already generated for this version")
	ErrManifest        = errors.New("failed to read project manifest")
	ErrVersionMissing  = errors.New("manifest has no package version")
	ErrTemplate        = errors.New("failed to load report template")
	ErrAssetMissing    = errors.New("chart image not found")
	ErrWriteOutput     = errors.New("failed to write report output")
)
