package renderer

import (
	"encoding/json"
	"io"

	"github.com/soctools/header2svd/headerparser"
)

// JSONRenderer renders the extraction report in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(report *headerparser.Report, output io.Writer) error {
	return json.NewEncoder(output).Encode(report)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
