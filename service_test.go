package benchreport

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupProject builds a project root with a manifest, a template, and one
// pre-rendered chart per test name.
func setupProject(t *testing.T, version, template string, tests []string) string {
	t.Helper()
	root := t.TempDir()

	writeManifest(t, root, "[package]\nname = \"mylib\"\nversion = \""+version+"\"\n")
	writeTemplate(t, root, template)

	for _, name := range tests {
		reportDir := filepath.Join(root, "target", "criterion", strings.ToLower(name), "report")
		if err := os.MkdirAll(reportDir, 0o750); err != nil {
			t.Fatalf("creating chart dir: %v", err)
		}
		chart := "<svg width=\"100\" height=\"50\">\n<rect/>\n</svg>\n"
		if err := os.WriteFile(filepath.Join(reportDir, "lines.svg"), []byte(chart), 0o600); err != nil {
			t.Fatalf("writing chart: %v", err)
		}
	}

	return root
}

const twoTestTemplate = `Title: Bench ${version}
Description: desc
Tests:
  Fast Path:
    Description: d1
  Slow Path:
    Description: d2
`

func TestGenerate(t *testing.T) {
	t.Parallel()

	root := setupProject(t, "0.4.1", twoTestTemplate, []string{"Fast Path", "Slow Path"})

	dir, err := New().Generate(Options{Root: root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(root, "benchmark_results", "v0.4.1"); dir != want {
		t.Errorf("output dir = %q, want %q", dir, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "result.md"))
	if err != nil {
		t.Fatalf("reading result.md: %v", err)
	}
	want := strings.Join([]string{
		"# Bench v0.4.1",
		"desc",
		"",
		"- [Bench v0.4.1](#bench-v041)",
		"  - [Fast Path](#fast-path)",
		"  - [Slow Path](#slow-path)",
		"## Fast Path",
		"**Description**: d1",
		"![img](./plots/fastpath.svg)",
		"",
		"## Slow Path",
		"**Description**: d2",
		"![img](./plots/slowpath.svg)",
		"",
	}, "\n")
	if string(data) != want {
		t.Errorf("result.md =\n%s\nwant:\n%s", data, want)
	}

	for _, chart := range []string{"fastpath.svg", "slowpath.svg"} {
		path := filepath.Join(dir, "plots", chart)
		svg, readErr := os.ReadFile(path)
		if readErr != nil {
			t.Fatalf("reading %s: %v", chart, readErr)
		}
		if !strings.Contains(string(svg), `<svg style="background-color:white" `) {
			t.Errorf("%s missing background style", chart)
		}
	}
}

// The second run for the same version fails and leaves the first run's
// output untouched.
func TestGenerateTwiceSameVersion(t *testing.T) {
	t.Parallel()

	root := setupProject(t, "0.4.1", twoTestTemplate, []string{"Fast Path", "Slow Path"})
	svc := New()

	dir, err := svc.Generate(Options{Root: root})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "result.md"))
	if err != nil {
		t.Fatalf("reading first result: %v", err)
	}

	_, err = svc.Generate(Options{Root: root})
	if !errors.Is(err, ErrAlreadyReported) {
		t.Fatalf("second run error = %v, want ErrAlreadyReported", err)
	}

	second, err := os.ReadFile(filepath.Join(dir, "result.md"))
	if err != nil {
		t.Fatalf("reading result after second run: %v", err)
	}
	if string(first) != string(second) {
		t.Error("second run modified the first run's result.md")
	}
}

// A missing chart aborts the run mid-loop; the already-created directory
// stays (no rollback).
func TestGenerateMissingChart(t *testing.T) {
	t.Parallel()

	// Only the first test's chart exists.
	root := setupProject(t, "0.4.1", twoTestTemplate, []string{"Fast Path"})

	_, err := New().Generate(Options{Root: root})
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("error = %v, want ErrAssetMissing", err)
	}

	dirs := ReportDirs(root, "v0.4.1")
	if _, statErr := os.Stat(dirs.Plots); statErr != nil {
		t.Errorf("partial output removed, want it left in place: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dirs.Root, "result.md")); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("result.md should not exist after mid-loop failure")
	}
}

func TestGenerateMissingManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTemplate(t, root, twoTestTemplate)

	_, err := New().Generate(Options{Root: root})
	if !errors.Is(err, ErrManifest) {
		t.Fatalf("error = %v, want ErrManifest", err)
	}

	// Nothing may be created before the manifest resolves.
	if _, statErr := os.Stat(filepath.Join(root, "benchmark_results", "v0.4.1")); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output directory created despite manifest failure")
	}
}

func TestGenerateMissingTemplate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, "[package]\nversion = \"0.4.1\"\n")

	_, err := New().Generate(Options{Root: root})
	if !errors.Is(err, ErrTemplate) {
		t.Fatalf("error = %v, want ErrTemplate", err)
	}
}

func TestGenerateHTMLPreview(t *testing.T) {
	t.Parallel()

	root := setupProject(t, "0.4.1", twoTestTemplate, []string{"Fast Path", "Slow Path"})

	dir, err := New().Generate(Options{Root: root, HTMLPreview: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(dir, "preview.html"))
	if err != nil {
		t.Fatalf("reading preview.html: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "Bench v0.4.1", "Fast Path"} {
		if !strings.Contains(string(page), want) {
			t.Errorf("preview.html missing %q", want)
		}
	}
}

func TestGenerateVerboseLog(t *testing.T) {
	t.Parallel()

	root := setupProject(t, "0.4.1", twoTestTemplate, []string{"Fast Path", "Slow Path"})

	var lines []string
	_, err := New().Generate(Options{
		Root: root,
		Logf: func(format string, args ...any) {
			lines = append(lines, format)
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) == 0 {
		t.Error("expected progress output through Logf")
	}
}
