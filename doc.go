// Package benchreport assembles a versioned benchmark report for a project.
//
// One run reads the project manifest (Cargo.toml) for the package version,
// parses the report template (benchmark_results/template.yml), copies one
// pre-rendered criterion chart per declared test into the versioned output
// directory (recolored for readability on dark backgrounds), and writes a
// markdown document with a table of contents linking every section.
//
// The pipeline is one-shot and synchronous: it runs to completion or aborts
// on the first error. A versioned output directory that already exists is a
// hard failure, signaling the version was already reported.
package benchreport
