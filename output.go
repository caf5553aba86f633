package benchreport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Output layout under the project root:
// benchmark_results/{version}/result.md plus a plots/ subdirectory holding
// one transformed chart per test.
const (
	resultsDirName = "benchmark_results"
	plotsDirName   = "plots"
	resultFileName = "result.md"
)

// OutputDirs holds the resolved output locations for one report run.
type OutputDirs struct {
	Root  string // benchmark_results/{version}
	Plots string // benchmark_results/{version}/plots
}

// ReportDirs returns the output locations for version under root.
func ReportDirs(root, version string) OutputDirs {
	dir := filepath.Join(root, resultsDirName, version)
	return OutputDirs{Root: dir, Plots: filepath.Join(dir, plotsDirName)}
}

// CreateOutputDirs creates the versioned output directory and its plots/
// subdirectory. A pre-existing versioned directory means this version was
// already reported and is a hard failure; nothing is merged or overwritten.
// Concurrent runs targeting the same version race here, and the loser fails.
func CreateOutputDirs(dirs OutputDirs) error {
	if err := os.MkdirAll(filepath.Dir(dirs.Root), 0o750); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Mkdir(dirs.Root, 0o750); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrAlreadyReported, dirs.Root)
		}
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Mkdir(dirs.Plots, 0o750); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// WriteDocument serializes doc to result.md inside dirs.Root. The write is
// not atomic; a crash mid-write leaves a truncated file.
func WriteDocument(dirs OutputDirs, doc *Document) error {
	path := filepath.Join(dirs.Root, resultFileName)
	if err := os.WriteFile(path, []byte(doc.String()), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
