// Package rangereport renders a completed analysis run's diagnostics,
// either as the JSON wire format downstream tooling consumes or as
// colorized text for a terminal.
package rangereport

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/gitrdm/rangeflow/pkg/rangeanalysis"
)

type wireDiagnostic struct {
	Location   string `json:"location"`
	AlwaysTrue bool   `json:"always_true"`
}

// Encode writes diags to w as a JSON array, sorted by location so repeated
// runs over the same graph produce byte-identical output.
func Encode(w io.Writer, diags []rangeanalysis.Diagnostic) error {
	sorted := make([]rangeanalysis.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Location < sorted[j].Location })

	wire := make([]wireDiagnostic, len(sorted))
	for i, d := range sorted {
		wire[i] = wireDiagnostic{Location: d.Location, AlwaysTrue: d.AlwaysTrue}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wire); err != nil {
		return fmt.Errorf("rangereport: encode: %w", err)
	}
	return nil
}

// Summarize writes a human-readable, colorized line per diagnostic to w:
// green for an always-true comparison, red for an always-false one. It
// ends with a one-line count. Color is controlled by color.NoColor, which
// fatih/color initializes from whether standard output is a terminal, not
// from w; callers that want to force plain text should set it explicitly
// before calling Summarize.
func Summarize(w io.Writer, diags []rangeanalysis.Diagnostic) {
	trueStyle := color.New(color.FgGreen, color.Bold)
	falseStyle := color.New(color.FgRed, color.Bold)

	sorted := make([]rangeanalysis.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Location < sorted[j].Location })

	for _, d := range sorted {
		if d.AlwaysTrue {
			trueStyle.Fprintf(w, "always true")
		} else {
			falseStyle.Fprintf(w, "always false")
		}
		fmt.Fprintf(w, "  at %s\n", d.Location)
	}
	fmt.Fprintf(w, "%d diagnostic(s)\n", len(sorted))
}
