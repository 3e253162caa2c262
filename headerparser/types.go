// Package headerparser recovers peripheral, register and bit-field layouts
// from the loosely structured C headers shipped with the ESP8266 RTOS SDK.
package headerparser

import "fmt"

// Registry maps peripheral names to their definitions. It is built up
// incrementally while scanning header files.
type Registry map[string]*Peripheral

// Peripheral is a memory-mapped hardware unit. The base address is set once,
// by the first definition encountered, and never changes afterwards.
type Peripheral struct {
	Description string
	Address     uint32
	Registers   []Register
}

// Register is a 32-bit addressable location at an offset from its
// peripheral's base address. Registers are append-only: once finalized by the
// extraction state machine they are never mutated again.
type Register struct {
	Name                string
	Description         string
	Address             uint32 // offset relative to the peripheral base
	Width               uint8
	ResetValue          uint64
	DetailedDescription string
	BitFields           []BitField
}

// BitField is a named sub-range of bits within a register.
type BitField struct {
	Name        string
	Bits        Bits
	Access      Access
	ResetValue  uint32
	Description string
}

// BitKind discriminates between a single-bit position and an inclusive range.
type BitKind int

const (
	BitSingle BitKind = iota
	BitRange
)

// Bits is the position of a bit field: either a single bit index or an
// inclusive range. Start and End are inclusive; a single bit has Start == End.
type Bits struct {
	Kind  BitKind
	Start uint8
	End   uint8
}

// SingleBit returns the position of a one-bit field at index b.
func SingleBit(b uint8) Bits {
	return Bits{Kind: BitSingle, Start: b, End: b}
}

// RangeBits returns an inclusive bit range [start, end].
func RangeBits(start, end uint8) Bits {
	return Bits{Kind: BitRange, Start: start, End: end}
}

// Offset returns the least significant bit index of the field.
func (b Bits) Offset() uint32 { return uint32(b.Start) }

// Width returns the number of bits covered by the field.
func (b Bits) Width() uint32 { return uint32(b.End-b.Start) + 1 }

// Access is the access mode of a bit field.
type Access int

const (
	AccessReadWrite Access = iota
	AccessReadOnly
	AccessWriteOnly
)

// ParseAccess parses the access-mode spellings used by the documentation
// records.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "RO", "R/O":
		return AccessReadOnly, nil
	case "RW", "R/W":
		return AccessReadWrite, nil
	case "WO", "W/O":
		return AccessWriteOnly, nil
	}
	return AccessReadWrite, fmt.Errorf("invalid bit field access mode: %q", s)
}

// SVDString returns the CMSIS-SVD spelling of the access mode.
func (a Access) SVDString() string {
	switch a {
	case AccessReadOnly:
		return "read-only"
	case AccessWriteOnly:
		return "write-only"
	default:
		return "read-write"
	}
}

// Interrupt is an interrupt source constant. Interrupts are informational:
// they are reported but not attached to the peripheral model.
type Interrupt struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       uint32 `json:"value"`
}

// Report accumulates the recoverable diagnostics of a run. Nothing in it is
// fatal; it is rendered as a summary after processing completes.
type Report struct {
	// InvalidFiles lists files from which no register was extracted.
	InvalidFiles []string `json:"invalid_files"`
	// InvalidPeripherals lists peripheral names referenced by a register
	// but never seeded with a base address.
	InvalidPeripherals []string `json:"invalid_peripherals"`
	// InvalidRegisters lists rejected register macros, including all
	// indexed (array) forms.
	InvalidRegisters []string `json:"invalid_registers"`
	// InvalidBitFields is reserved; no current pattern rejects a field.
	InvalidBitFields []string `json:"invalid_bit_fields"`

	Interrupts []Interrupt `json:"interrupts,omitempty"`
}
