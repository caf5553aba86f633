package main

import (
	"errors"
	"os"

	"benchreport"
)

// Exit codes for the benchreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess         = 0 // Report generated
	ExitGeneral         = 1 // General/unexpected error
	ExitUsage           = 2 // Invalid flags, manifest, or template
	ExitIO              = 3 // Missing chart, write failure, permission denied
	ExitAlreadyReported = 4 // A report for this version already exists
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Already-reported (exit 4): scripts can distinguish "nothing to do"
	// from a real failure.
	if errors.Is(err, benchreport.ErrAlreadyReported) {
		return ExitAlreadyReported
	}

	// I/O errors (exit 3)
	if errors.Is(err, benchreport.ErrAssetMissing) ||
		errors.Is(err, benchreport.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/input errors (exit 2)
	if errors.Is(err, benchreport.ErrManifest) ||
		errors.Is(err, benchreport.ErrVersionMissing) ||
		errors.Is(err, benchreport.ErrTemplate) {
		return ExitUsage
	}

	return ExitGeneral
}
