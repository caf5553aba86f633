package benchreport

import (
	"fmt"
	"path/filepath"

	"benchreport/internal/fileutil"
)

// Options configures one report generation run.
type Options struct {
	// Root is the project root containing Cargo.toml, benchmark_results/ and
	// target/criterion/. Defaults to the current directory.
	Root string
	// HTMLPreview also renders preview.html next to result.md.
	HTMLPreview bool
	// Logf receives progress lines. Nil disables progress output.
	Logf func(format string, args ...any)
}

// Service runs the report-assembly pipeline: version resolution, template
// loading, per-test chart and section generation, document write. Each run
// is one-shot and synchronous; the first failure aborts it, and partial
// output already written is left in place.
type Service struct {
	assembler *Assembler
}

// New creates a Service with the default asset transformer.
func New() *Service {
	return &Service{assembler: NewAssembler()}
}

// Generate assembles and writes the benchmark report for the version
// declared in the project manifest, returning the created output directory.
// It fails with ErrAlreadyReported before creating anything if the versioned
// directory already exists.
func (s *Service) Generate(opts Options) (string, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	version, err := ResolveVersion(root)
	if err != nil {
		return "", err
	}
	logf("Resolved version %s", version)

	dirs := ReportDirs(root, version)
	if fileutil.DirExists(dirs.Root) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyReported, dirs.Root)
	}

	tpl, err := LoadTemplate(root)
	if err != nil {
		return "", err
	}
	logf("Loaded template with %d tests", len(tpl.Tests))

	if err := CreateOutputDirs(dirs); err != nil {
		return "", err
	}

	doc, err := s.assembler.Assemble(root, version, tpl, dirs)
	if err != nil {
		return "", err
	}

	if err := WriteDocument(dirs, doc); err != nil {
		return "", err
	}
	logf("Wrote %s", filepath.Join(dirs.Root, resultFileName))

	if opts.HTMLPreview {
		if err := WritePreview(dirs, doc); err != nil {
			return "", err
		}
		logf("Wrote %s", filepath.Join(dirs.Root, previewFileName))
	}

	return dirs.Root, nil
}
