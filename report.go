package optioneer

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const noDescription = "No description available."

// ReportEntry describes one visible option in a report.
type ReportEntry struct {
	Path    string `json:"path" yaml:"path"`
	Doc     string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Default any    `json:"default" yaml:"default"`
	Current any    `json:"current" yaml:"current"`
}

// Report is the discovery structure built by Describe: the non-deprecated
// options under a scope, sorted by dotted path. Rendering is a pure function
// of the entries, so repeated calls without intervening mutation produce
// byte-identical output.
type Report struct {
	Scope   string        `json:"scope,omitempty" yaml:"scope,omitempty"`
	Entries []ReportEntry `json:"entries" yaml:"entries"`
}

// String renders the report, one block per option:
//
//	display.width: Width of the display in characters.
//	    [default: 80] [currently: 120]
func (r Report) String() string {
	var b strings.Builder
	for i, entry := range r.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		doc := entry.Doc
		if doc == "" {
			doc = noDescription
		}
		fmt.Fprintf(&b, "%s: %s\n    [default: %v] [currently: %v]", entry.Path, doc, entry.Default, entry.Current)
	}
	return b.String()
}

// ToJSON serialises the report for logging or transport helpers.
func (r Report) ToJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(alias(r))
}

// ToYAML serialises the report as a YAML document.
func (r Report) ToYAML() ([]byte, error) {
	type alias Report
	return yaml.Marshal(alias(r))
}
