// Package export renders learner progress into shareable formats.
package export

import (
	"fmt"

	"github.com/studycoach/studycoach/internal/ledger"
	"github.com/studycoach/studycoach/internal/memory"
)

// ExportData is passed to every Exporter.
type ExportData struct {
	Profile  memory.Profile
	Insights memory.OverallInsights
	Report   ledger.Report
}

// Exporter renders ExportData to a string in a specific format.
type Exporter interface {
	Export(data ExportData) (string, error)
}

// registry maps format names to Exporter implementations.
var registry = map[string]Exporter{
	"markdown": &MarkdownExporter{},
	"json":     &JSONExporter{},
}

// Get returns the Exporter registered under name, and whether it was found.
func Get(name string) (Exporter, bool) {
	e, ok := registry[name]
	return e, ok
}

// ValidFormats returns the list of supported export format names.
func ValidFormats() []string {
	formats := make([]string, 0, len(registry))
	for k := range registry {
		formats = append(formats, k)
	}
	return formats
}

// goalSection renders goals under a heading as a markdown list block.
func goalSection(heading string, goals []ledger.Goal) string {
	if len(goals) == 0 {
		return ""
	}
	out := fmt.Sprintf("## %s\n\n", heading)
	for _, g := range goals {
		out += fmt.Sprintf("- %s (%.1f/10)\n", g.Title, g.Progress)
	}
	out += "\n"
	return out
}
