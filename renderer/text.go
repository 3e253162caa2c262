// Package renderer provides a way to render the extraction report in
// different formats.
package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/soctools/header2svd/headerparser"
	"github.com/soctools/header2svd/profile"
)

// TextRenderer formats the extraction report in a structured text format.
type TextRenderer struct {
	profile *profile.ChipProfile
}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer(profile *profile.ChipProfile) Renderer {
	return &TextRenderer{profile: profile}
}

// Render formats and writes the extraction summary.
func (r *TextRenderer) Render(report *headerparser.Report, output io.Writer) error {
	var out strings.Builder

	out.WriteString("==============================\n")
	out.WriteString("Header Extraction Report\n")
	out.WriteString("==============================\n\n")
	out.WriteString(fmt.Sprintf("Device: %s\n", r.profile.Device.Name))
	out.WriteString(fmt.Sprintf("CPU: %s\n", r.profile.CPU.Name))
	out.WriteString(fmt.Sprintf("Interrupt sources: %d\n\n", len(report.Interrupts)))

	writeSection(&out, "Files with no extracted registers", report.InvalidFiles)
	writeSection(&out, "Registers referencing unknown peripherals", report.InvalidPeripherals)
	writeSection(&out, "Rejected register macros", report.InvalidRegisters)
	writeSection(&out, "Rejected bit fields", report.InvalidBitFields)

	out.WriteString("End of Report\n")

	_, err := output.Write([]byte(out.String()))
	return err
}

// writeSection emits one diagnostic collection, sorted and deduplicated for
// stable output.
func writeSection(out *strings.Builder, title string, entries []string) {
	out.WriteString("------------------------------\n")
	out.WriteString(fmt.Sprintf("%s: %d\n", title, len(entries)))
	out.WriteString("------------------------------\n")

	seen := make(map[string]bool, len(entries))
	unique := make([]string, 0, len(entries))
	for _, e := range entries {
		if !seen[e] {
			seen[e] = true
			unique = append(unique, e)
		}
	}
	sort.Strings(unique)
	for _, e := range unique {
		out.WriteString(fmt.Sprintf("- %s\n", e))
	}
	out.WriteString("\n")
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
