package headerparser

import (
	"fmt"
	"strconv"
)

// ExtractInterrupts collects the interrupt-source constants defined in the
// principal SoC header, in file order. The result is informational and is
// not merged into the peripheral model.
func ExtractInterrupts(text string) ([]Interrupt, error) {
	var interrupts []Interrupt
	for _, m := range interruptsRegex.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseUint(m[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid interrupt number for %s: %w", m[1], err)
		}
		interrupts = append(interrupts, Interrupt{
			Name:        m[1],
			Description: m[3],
			Value:       uint32(value),
		})
	}
	return interrupts, nil
}
