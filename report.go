package benchreport

import (
	"fmt"
	"path/filepath"
	"strings"
)

// versionToken is the placeholder substituted in the template title.
const versionToken = "${version}"

// chartSourcePath returns the pre-rendered chart location for a test,
// relative to the project root. Criterion lower-cases the benchmark name but
// keeps spaces.
func chartSourcePath(test string) string {
	return filepath.Join("target", "criterion", strings.ToLower(test), "report", "lines.svg")
}

// chartFileName returns the destination chart name for a test: lower-cased,
// spaces removed, .svg suffix.
func chartFileName(test string) string {
	return strings.ReplaceAll(strings.ToLower(test), " ", "") + ".svg"
}

// chartURL returns the markdown image target for a chart file, URL-encoding
// any spaces.
func chartURL(file string) string {
	return "./" + plotsDirName + "/" + strings.ReplaceAll(file, " ", "%20")
}

// Assembler builds the report document. The body and the table of contents
// accumulate separately while sections are generated; Assemble splices the
// table of contents between the description and the first test section.
type Assembler struct {
	transform func(src, dst string) error
}

// NewAssembler returns an Assembler backed by TransformAsset.
func NewAssembler() *Assembler {
	return &Assembler{transform: TransformAsset}
}

// Assemble renders tpl into the final document, substituting version into
// the title and copying one transformed chart per test into dirs.Plots.
// Sections and their table-of-contents entries follow template declaration
// order. The first failed chart copy aborts assembly; charts already copied
// stay in place.
func (a *Assembler) Assemble(root, version string, tpl *Template, dirs OutputDirs) (*Document, error) {
	var body, toc, sections []string

	title := strings.ReplaceAll(tpl.Title, versionToken, version)
	body = append(body, "# "+title)
	toc = append(toc, fmt.Sprintf("- [%s](%s)", title, Anchor(title)))

	body = append(body, tpl.Description, "")

	for _, test := range tpl.Tests {
		file := chartFileName(test.Name)
		src := filepath.Join(root, chartSourcePath(test.Name))
		if err := a.transform(src, filepath.Join(dirs.Plots, file)); err != nil {
			return nil, err
		}

		sections = append(sections,
			"## "+test.Name,
			"**Description**: "+test.Description,
			fmt.Sprintf("![img](%s)", chartURL(file)),
			"",
		)
		toc = append(toc, fmt.Sprintf("  - [%s](%s)", test.Name, Anchor(test.Name)))
	}

	doc := &Document{Blocks: make([]string, 0, len(body)+len(toc)+len(sections))}
	doc.Blocks = append(doc.Blocks, body...)
	doc.Blocks = append(doc.Blocks, toc...)
	doc.Blocks = append(doc.Blocks, sections...)
	return doc, nil
}
