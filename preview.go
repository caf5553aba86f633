package benchreport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// previewFileName is written next to result.md when a preview is requested.
const previewFileName = "preview.html"

// previewTemplate wraps goldmark's fragment output in a complete HTML5
// document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark Report</title>
</head>
<body>
%s
</body>
</html>`

// WritePreview renders the assembled report to an HTML file inside
// dirs.Root, for reviewing the report with its recolored plots in a browser
// before publishing. Heading IDs are generated automatically so the table of
// contents stays navigable.
func WritePreview(dirs OutputDirs, doc *Document) error {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(doc.String()), &buf); err != nil {
		return fmt.Errorf("%w: rendering preview: %v", ErrWriteOutput, err)
	}

	page := fmt.Sprintf(previewTemplate, buf.String())
	path := filepath.Join(dirs.Root, previewFileName)
	if err := os.WriteFile(path, []byte(page), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
