package benchreport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Criterion renders charts with a transparent background, which makes them
// unreadable on dark-themed markdown viewers. The transform forces a white
// background by rewriting the first opening svg tag on each line.
const (
	svgMarker = `<svg `
	svgStyled = `<svg style="background-color:white" `
)

// TransformAsset copies the chart at src to dst line by line, inserting the
// background style into the opening svg tag. Lines without the marker are
// copied byte for byte, line endings included. The content is treated as
// plain text; no SVG validation is performed.
func TransformAsset(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- path is derived from template test names under the project root
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetMissing, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 -- destination is inside the freshly created plots directory
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	w := bufio.NewWriter(out)
	r := bufio.NewReader(in)
	for {
		line, readErr := r.ReadString('\n')
		if len(line) > 0 {
			line = strings.Replace(line, svgMarker, svgStyled, 1)
			if _, err := w.WriteString(line); err != nil {
				_ = out.Close()
				return fmt.Errorf("%w: %v", ErrWriteOutput, err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = out.Close()
			return fmt.Errorf("reading chart %s: %w", src, readErr)
		}
	}

	if err := w.Flush(); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
