package svd

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

type integerDoc struct {
	XMLName xml.Name `xml:"doc"`
	Value   Integer  `xml:"value"`
}

func TestIntegerUnmarshalHex(t *testing.T) {
	var doc integerDoc
	err := xml.Unmarshal([]byte("<doc><value>0x3FF00000</value></doc>"), &doc)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x3FF00000, doc.Value)
}

func TestIntegerUnmarshalDecimal(t *testing.T) {
	var doc integerDoc
	err := xml.Unmarshal([]byte("<doc><value>32</value></doc>"), &doc)
	assert.NoError(t, err)
	assert.EqualValues(t, 32, doc.Value)
}

func TestIntegerUnmarshalInvalid(t *testing.T) {
	var doc integerDoc
	err := xml.Unmarshal([]byte("<doc><value>banana</value></doc>"), &doc)
	assert.Error(t, err)
}

func TestIntegerMarshalsAsHex(t *testing.T) {
	out, err := xml.Marshal(integerDoc{Value: 0x60000F00})
	assert.NoError(t, err)
	assert.Equal(t, "<doc><value>0x60000F00</value></doc>", string(out))
}

func TestDeviceEncode(t *testing.T) {
	device := &DeviceElement{
		Name:     "Espressif",
		Version:  "1.0",
		BitWidth: 32,
		CPU: CPUElement{
			Name:       "Xtensa LX106",
			Revision:   "1",
			Endian:     "little",
			MPUPresent: "false",
			FPUPresent: "true",
		},
		Peripherals: PeripheralsElement{
			Elements: []PeripheralElement{{
				Name:        "GPIO",
				BaseAddress: 0x3FF00000,
				AddressBlock: AddressBlockElement{
					Offset: 0,
					Size:   32,
					Usage:  "registers",
				},
			}},
		},
	}

	var buf bytes.Buffer
	err := device.Encode(&buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, xml.Header)
	assert.Contains(t, out, "<device>")
	assert.Contains(t, out, "<name>GPIO</name>")
	assert.Contains(t, out, "<baseAddress>0x3FF00000</baseAddress>")

	// The encoded document round-trips.
	var decoded DeviceElement
	assert.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Espressif", decoded.Name)
	assert.EqualValues(t, 0x3FF00000, decoded.Peripherals.Elements[0].BaseAddress)
}
