// Package assembler turns a peripheral registry into a deterministic,
// fully-normalized SVD device descriptor.
package assembler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/soctools/header2svd/headerparser"
	"github.com/soctools/header2svd/profile"
	"github.com/soctools/header2svd/svd"
)

// registerSize is the serialized width of every register, in bits.
const registerSize = 32

// Build assembles the final registry into an SVD device. Peripherals are
// sorted by name so identical registries always produce identical output.
func Build(registry headerparser.Registry, prof *profile.ChipProfile) *svd.DeviceElement {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	peripherals := make([]svd.PeripheralElement, 0, len(names))
	for _, name := range names {
		peripherals = append(peripherals, buildPeripheral(name, registry[name]))
	}

	return &svd.DeviceElement{
		Name:        prof.Device.Name,
		Description: prof.Device.Description,
		Version:     prof.Device.Version,
		BitWidth:    svd.Integer(prof.Device.Width),
		CPU: svd.CPUElement{
			Name:             prof.CPU.Name,
			Revision:         prof.CPU.Revision,
			Endian:           prof.CPU.Endian,
			MPUPresent:       strconv.FormatBool(prof.CPU.MPUPresent),
			FPUPresent:       strconv.FormatBool(prof.CPU.FPUPresent),
			NVICPriorityBits: svd.Integer(prof.CPU.NVICPriorityBits),
		},
		Peripherals: svd.PeripheralsElement{Elements: peripherals},
	}
}

func buildPeripheral(name string, p *headerparser.Peripheral) svd.PeripheralElement {
	registers := make([]svd.RegisterElement, 0, len(p.Registers))
	for i := range p.Registers {
		registers = append(registers, buildRegister(&p.Registers[i]))
	}

	// The address block size is the flat sum of register widths. Offset
	// gaps and overlaps are ignored; keep this literal computation.
	var blockSize uint64
	for _, r := range registers {
		blockSize += uint64(r.Size)
	}

	return svd.PeripheralElement{
		Name:        name,
		Description: p.Description,
		BaseAddress: svd.Integer(p.Address),
		AddressBlock: svd.AddressBlockElement{
			Offset: 0x0,
			Size:   svd.Integer(blockSize),
			Usage:  "registers",
		},
		Registers: svd.RegistersElement{Elements: registers},
	}
}

func buildRegister(r *headerparser.Register) svd.RegisterElement {
	fields := make([]svd.FieldElement, 0, len(r.BitFields))
	for _, f := range r.BitFields {
		field := svd.FieldElement{
			Name:      f.Name,
			BitOffset: svd.Integer(f.Bits.Offset()),
			BitWidth:  svd.Integer(f.Bits.Width()),
			Access:    f.Access.SVDString(),
		}
		if desc := strings.TrimSpace(f.Description); desc != "" {
			field.Description = desc
		}
		fields = append(fields, field)
	}
	return svd.RegisterElement{
		Name:          r.Name,
		Description:   r.Description,
		AddressOffset: svd.Integer(r.Address),
		Size:          registerSize,
		ResetValue:    svd.Integer(r.ResetValue),
		Fields:        svd.FieldElements{Elements: fields},
	}
}
