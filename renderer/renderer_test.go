package renderer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/soctools/header2svd/headerparser"
	"github.com/soctools/header2svd/profile"
	"github.com/stretchr/testify/assert"
)

func testReport() *headerparser.Report {
	return &headerparser.Report{
		InvalidFiles:       []string{"pin_mux_register.h"},
		InvalidPeripherals: []string{"WDT", "I2S", "WDT"},
		InvalidRegisters:   []string{"SPI_W0_REG"},
		Interrupts: []headerparser.Interrupt{
			{Name: "SLC", Description: "SLC interrupt", Value: 1},
		},
	}
}

func testChipProfile() *profile.ChipProfile {
	return &profile.ChipProfile{
		Device: profile.DeviceInfo{Name: "Espressif"},
		CPU:    profile.CPUInfo{Name: "Xtensa LX106"},
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(testChipProfile())
	assert.NoError(t, r.Render(testReport(), &buf))
	assert.Equal(t, "text", r.Format())

	out := buf.String()
	assert.Contains(t, out, "Header Extraction Report")
	assert.Contains(t, out, "Files with no extracted registers: 1")
	assert.Contains(t, out, "- pin_mux_register.h")
	// Duplicates are collapsed in the listing but counted raw.
	assert.Contains(t, out, "Registers referencing unknown peripherals: 3")
	assert.Contains(t, out, "- WDT")
	assert.Contains(t, out, "Interrupt sources: 1")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer()
	assert.NoError(t, r.Render(testReport(), &buf))
	assert.Equal(t, "json", r.Format())

	var decoded headerparser.Report
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"SPI_W0_REG"}, decoded.InvalidRegisters)
	assert.Len(t, decoded.Interrupts, 1)
}
