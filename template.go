package benchreport

import (
	"fmt"
	"os"
	"path/filepath"

	"benchreport/internal/yamlutil"
)

// templateFileName is the report template location under benchmark_results/.
const templateFileName = "template.yml"

// templateDoc mirrors the YAML template layout. Tests decodes into an
// order-preserving mapping: declaration order dictates report section order,
// so a plain map would silently shuffle sections.
type templateDoc struct {
	Title       string            `yaml:"Title"`
	Description string            `yaml:"Description"`
	Tests       yamlutil.MapSlice `yaml:"Tests"`
}

// LoadTemplate parses the report template under root into a Template,
// preserving test declaration order.
func LoadTemplate(root string) (*Template, error) {
	path := filepath.Join(root, resultsDirName, templateFileName)
	data, err := os.ReadFile(path) // #nosec G304 -- path is derived from the caller-supplied project root
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	var doc templateDoc
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	tpl := &Template{Title: doc.Title, Description: doc.Description}
	for _, item := range doc.Tests {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: test name %v is not a string", ErrTemplate, item.Key)
		}
		tpl.Tests = append(tpl.Tests, BenchmarkTest{
			Name:        name,
			Description: testDescription(item.Value),
		})
	}

	return tpl, nil
}

// testDescription extracts the Description field from a decoded test entry.
// A missing or non-string field yields an empty description rather than an
// error; the template declares the test either way.
func testDescription(v any) string {
	switch entry := v.(type) {
	case map[string]any:
		if d, ok := entry["Description"].(string); ok {
			return d
		}
	case yamlutil.MapSlice:
		for _, item := range entry {
			if item.Key == "Description" {
				if d, ok := item.Value.(string); ok {
					return d
				}
			}
		}
	}
	return ""
}
