// Package docparser loads documentation-derived peripheral records. These
// arrive already structured; they are decoded into ready-made Peripheral
// values and never re-extracted.
package docparser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soctools/header2svd/headerparser"
	"github.com/soctools/header2svd/profile"
)

// registerTopBit is the highest valid bit position in a 32-bit register.
const registerTopBit = 31

type docPeripheral struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Address     uint32        `json:"address"`
	Registers   []docRegister `json:"registers"`
}

type docRegister struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     uint32     `json:"address"`
	ResetValue  uint64     `json:"reset_value"`
	Detailed    string     `json:"detailed_description,omitempty"`
	BitFields   []docField `json:"bit_fields"`
}

type docField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Bits is either [b] for a single bit or [start, end] for an
	// inclusive range.
	Bits       []uint8 `json:"bits"`
	Access     string  `json:"access,omitempty"`
	ResetValue uint32  `json:"reset_value"`
}

// Load reads one documentation record into a Peripheral value.
func Load(path string) (*headerparser.Peripheral, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open documentation record: %w", err)
	}
	defer file.Close()

	var doc docPeripheral
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse documentation record %s: %w", path, err)
	}
	return doc.toPeripheral(path)
}

func (d *docPeripheral) toPeripheral(path string) (*headerparser.Peripheral, error) {
	p := &headerparser.Peripheral{
		Description: d.Description,
		Address:     d.Address,
	}
	for _, r := range d.Registers {
		reg := headerparser.Register{
			Name:                r.Name,
			Description:         r.Description,
			Address:             r.Address,
			ResetValue:          r.ResetValue,
			DetailedDescription: r.Detailed,
		}
		for _, f := range r.BitFields {
			field := headerparser.BitField{
				Name:        f.Name,
				Description: f.Description,
				ResetValue:  f.ResetValue,
			}
			switch len(f.Bits) {
			case 1:
				if f.Bits[0] > registerTopBit {
					return nil, fmt.Errorf("%s: field %s of register %s has bit %d out of range", path, f.Name, r.Name, f.Bits[0])
				}
				field.Bits = headerparser.SingleBit(f.Bits[0])
			case 2:
				if f.Bits[0] > f.Bits[1] {
					return nil, fmt.Errorf("%s: field %s of register %s has reversed bit range [%d, %d]", path, f.Name, r.Name, f.Bits[0], f.Bits[1])
				}
				if f.Bits[1] > registerTopBit {
					return nil, fmt.Errorf("%s: field %s of register %s has bit %d out of range", path, f.Name, r.Name, f.Bits[1])
				}
				field.Bits = headerparser.RangeBits(f.Bits[0], f.Bits[1])
			default:
				return nil, fmt.Errorf("%s: field %s of register %s has invalid bit position", path, f.Name, r.Name)
			}
			if f.Access != "" {
				access, err := headerparser.ParseAccess(f.Access)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				field.Access = access
			}
			reg.BitFields = append(reg.BitFields, field)
		}
		p.Registers = append(p.Registers, reg)
	}
	return p, nil
}

// ApplyOverrides wholesale-replaces the register lists of the named
// peripherals with their documentation records. Individual registers are
// never merged; the replacement is by value, and the peripheral keeps its
// extracted base address.
func ApplyOverrides(registry headerparser.Registry, docPath string, overrides map[string]string) error {
	for name, source := range overrides {
		p, ok := registry[name]
		if !ok {
			continue
		}
		doc, err := Load(filepath.Join(docPath, source))
		if err != nil {
			return err
		}
		p.Registers = doc.Registers
	}
	return nil
}

// ApplyClones inserts documentation-derived peripherals into the registry
// under new names at explicit base addresses. Each clone gets its own copy
// of the record's register list.
func ApplyClones(registry headerparser.Registry, docPath string, clones []profile.Clone) error {
	for _, clone := range clones {
		doc, err := Load(filepath.Join(docPath, clone.Source))
		if err != nil {
			return err
		}
		doc.Address = clone.Address
		registry[clone.Name] = doc
	}
	return nil
}
