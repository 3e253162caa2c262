package headerparser

import (
	"bufio"
	"fmt"
	"log"
	"math/bits"
	"strconv"
	"strings"
)

// stateKind tags the current state of the extraction machine.
type stateKind int

const (
	stateFindReg stateKind = iota
	stateFindBitFieldMask
	stateFindBitFieldShift
	stateFindBitFieldSkipShift
	stateCheckEnd
	stateAssumeFullRegister
	stateEnd
)

// machine is the per-file register extraction state machine. It walks the
// file line by line; each step either consumes the current line or
// re-dispatches it against a newly entered state, because one line can end
// one register's accumulation and begin the next at the same time.
//
// The in-flight register is owned by the machine and moves with the state;
// it is handed off to its peripheral exactly once, when finalized.
type machine struct {
	registry Registry
	report   *Report
	file     string

	state      stateKind
	peripheral string
	reg        *Register
	mask       uint32

	// matched records whether anything in this file produced output; files
	// where nothing matched are reported.
	matched bool
}

func newMachine(registry Registry, report *Report, file string) *machine {
	return &machine{
		registry: registry,
		report:   report,
		file:     file,
		state:    stateFindReg,
	}
}

// Run feeds the file text through the machine. Lines shaped like conditional
// directives are skipped as lines only; their bodies are still scanned.
// A register still being accumulated at end of file is dropped.
func (m *machine) Run(text string) error {
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if ifdefRegex.MatchString(line) || endifRegex.MatchString(line) {
			continue
		}
		for {
			consumed, err := m.step(line, lineNum)
			if err != nil {
				return err
			}
			if consumed {
				break
			}
		}
	}
	return scanner.Err()
}

// step dispatches one line against the active state. It reports whether the
// line was consumed; a false return re-dispatches the same line against the
// new state. Only transitions that execute AssumeFullRegister or End leave
// the line cursor in place.
func (m *machine) step(line string, lineNum int) (bool, error) {
	switch m.state {
	case stateFindReg:
		return m.findReg(line)
	case stateFindBitFieldMask:
		return m.findBitFieldMask(line, lineNum), nil
	case stateFindBitFieldShift:
		return m.findBitFieldShift(line, lineNum), nil
	case stateFindBitFieldSkipShift:
		m.state = stateCheckEnd
		return regDefineShiftRegex.MatchString(line), nil
	case stateCheckEnd:
		return m.checkEnd(line), nil
	case stateAssumeFullRegister:
		m.assumeFullRegister()
		return false, nil
	case stateEnd:
		m.finalize()
		return false, nil
	}
	return true, nil
}

func (m *machine) findReg(line string) (bool, error) {
	if g := regDefRegex.FindStringSubmatch(line); g != nil {
		name, pname := g[1], g[2]
		offset := strings.TrimPrefix(g[3], "0x")
		if strings.Contains(name, "(i)") {
			// Indexed registers cannot be expanded; reject them.
			m.report.InvalidRegisters = append(m.report.InvalidRegisters, name)
			return true, nil
		}
		addr, err := strconv.ParseUint(offset, 16, 32)
		if err != nil {
			// Offset is an expression, not a hex literal.
			m.report.InvalidRegisters = append(m.report.InvalidRegisters, name)
			return true, nil
		}
		m.begin(pname, name, uint32(addr))
		return true, nil
	}
	if g := regDefIndexRegex.FindStringSubmatch(line); g != nil {
		m.report.InvalidRegisters = append(m.report.InvalidRegisters, g[1])
		return true, nil
	}
	if g := regDefOffsetRegex.FindStringSubmatch(line); g != nil {
		name := g[1]
		pname, _, _ := strings.Cut(name, "_")
		addr, err := strconv.ParseUint(g[2], 16, 32)
		if err != nil {
			return true, fmt.Errorf("%s: invalid register offset for %s: %w", m.file, name, err)
		}
		m.begin(pname, name, uint32(addr))
		return true, nil
	}
	return true, nil
}

// begin starts accumulating a new register stub.
func (m *machine) begin(peripheral, name string, offset uint32) {
	m.peripheral = peripheral
	m.reg = &Register{
		Name:        name,
		Description: name,
		Address:     offset,
	}
	m.state = stateFindBitFieldMask
}

func (m *machine) findBitFieldMask(line string, lineNum int) bool {
	if regDefineSkipRegex.MatchString(line) {
		return true
	}
	if regDefOffsetRegex.MatchString(line) {
		// The next register has begun before any field was found.
		m.state = stateAssumeFullRegister
		return false
	}
	g := regDefineMaskRegex.FindStringSubmatch(line)
	if g == nil {
		if len(m.reg.BitFields) == 0 {
			m.state = stateAssumeFullRegister
			return false
		}
		log.Printf("failed to match register mask at %s:%d", m.file, lineNum)
		m.state = stateEnd
		return true
	}

	m.matched = true
	name := g[1]
	value := strings.TrimPrefix(g[2], "0x")

	if sb := singleBitRegex.FindStringSubmatch(value); sb != nil {
		bit, err := strconv.ParseUint(sb[1], 10, 8)
		if err != nil {
			log.Printf("failed to match single bit mask at %s:%d", m.file, lineNum)
			m.state = stateFindReg
			return true
		}
		m.reg.BitFields = append(m.reg.BitFields, BitField{
			Name: name,
			Bits: SingleBit(uint8(bit)),
		})
		m.state = stateFindBitFieldSkipShift
		return true
	}
	if mask, err := strconv.ParseUint(value, 16, 32); err == nil {
		m.mask = uint32(mask)
		m.state = stateFindBitFieldShift
	}
	return true
}

func (m *machine) findBitFieldShift(line string, lineNum int) bool {
	if regDefineSkipRegex.MatchString(line) {
		return true
	}
	g := regDefineShiftRegex.FindStringSubmatch(line)
	if g == nil {
		if len(m.reg.BitFields) == 0 {
			m.state = stateAssumeFullRegister
			return false
		}
		log.Printf("failed to match register shift at %s:%d (%q)", m.file, lineNum, line)
		m.state = stateEnd
		return true
	}
	shift, err := strconv.ParseUint(g[2], 10, 8)
	if err != nil {
		return true
	}
	width := bits.OnesCount32(m.mask)
	b := SingleBit(uint8(shift))
	if width != 1 {
		b = RangeBits(uint8(shift), uint8(shift)+uint8(width-1))
	}
	m.reg.BitFields = append(m.reg.BitFields, BitField{Name: g[1], Bits: b})
	m.state = stateCheckEnd
	return true
}

func (m *machine) checkEnd(line string) bool {
	if line == "" {
		m.state = stateEnd
		return true
	}
	if regDefineMaskRegex.MatchString(line) {
		// Next bit field of the same register.
		m.state = stateFindBitFieldMask
		return false
	}
	// Comments and other noise between fields.
	return true
}

// assumeFullRegister finalizes a register whose bit layout could not be
// discovered with one synthetic field spanning the whole register.
func (m *machine) assumeFullRegister() {
	m.matched = true
	m.reg.BitFields = append(m.reg.BitFields, BitField{
		Name: "Register",
		Bits: RangeBits(0, 31),
	})
	m.finalize()
}

// finalize hands the accumulated register to its peripheral, or records the
// peripheral name if it was never seeded with a base address.
func (m *machine) finalize() {
	if p, ok := m.registry[m.peripheral]; ok {
		p.Registers = append(p.Registers, *m.reg)
	} else {
		m.report.InvalidPeripherals = append(m.report.InvalidPeripherals, m.peripheral)
	}
	m.reg = nil
	m.state = stateFindReg
}
