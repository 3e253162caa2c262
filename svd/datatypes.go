// Package svd models the subset of the CMSIS-SVD document schema emitted by
// the generator.
package svd

import (
	"encoding/xml"
	"fmt"
	"io"
)

type DeviceElement struct {
	XMLName     xml.Name           `xml:"device"`
	Name        string             `xml:"name"`
	Description string             `xml:"description,omitempty"`
	Version     string             `xml:"version,omitempty"`
	CPU         CPUElement         `xml:"cpu"`
	BitWidth    Integer            `xml:"width"`
	Peripherals PeripheralsElement `xml:"peripherals"`
}

type CPUElement struct {
	Name                string  `xml:"name"`
	Revision            string  `xml:"revision"`
	Endian              string  `xml:"endian"`
	MPUPresent          string  `xml:"mpuPresent"`
	FPUPresent          string  `xml:"fpuPresent"`
	NVICPriorityBits    Integer `xml:"nvicPrioBits"`
	VendorSystickConfig bool    `xml:"vendorSystickConfig"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

// Find returns the index of the named peripheral, if present.
func (p PeripheralsElement) Find(name string) (int, bool) {
	if len(name) > 0 {
		for i, pp := range p.Elements {
			if pp.Name == name {
				return i, true
			}
		}
	}
	return -1, false
}

type PeripheralElement struct {
	Name         string              `xml:"name"`
	Description  string              `xml:"description,omitempty"`
	BaseAddress  Integer             `xml:"baseAddress"`
	AddressBlock AddressBlockElement `xml:"addressBlock"`
	Registers    RegistersElement    `xml:"registers"`
}

type AddressBlockElement struct {
	Offset Integer `xml:"offset"`
	Size   Integer `xml:"size"`
	Usage  string  `xml:"usage"`
}

type RegistersElement struct {
	Elements []RegisterElement `xml:"register"`
}

type RegisterElement struct {
	Name          string        `xml:"name"`
	Description   string        `xml:"description,omitempty"`
	AddressOffset Integer       `xml:"addressOffset"`
	Size          Integer       `xml:"size"`
	ResetValue    Integer       `xml:"resetValue"`
	Fields        FieldElements `xml:"fields"`
}

type FieldElements struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description,omitempty"`
	BitOffset   Integer `xml:"bitOffset"`
	BitWidth    Integer `xml:"bitWidth"`
	Access      string  `xml:"access,omitempty"`
}

// Encode writes the device as an indented SVD XML document.
func (d *DeviceElement) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("error encoding SVD document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
