package renderer

import (
	"io"

	"github.com/soctools/header2svd/headerparser"
)

// Renderer defines the interface for rendering the extraction report in
// different formats.
type Renderer interface {
	// Render writes the report in the desired format to the provided writer.
	Render(report *headerparser.Report, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
