package headerparser

import (
	"fmt"
	"strconv"
)

// ExtractBaseAddresses scans header text for peripheral base-address
// definitions and seeds the registry. The first definition of a name wins;
// later definitions, in this file or any other, are ignored.
func ExtractBaseAddresses(text string, registry Registry) error {
	for _, m := range regBaseRegex.FindAllStringSubmatch(text, -1) {
		name := m[1]
		addr, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil {
			return fmt.Errorf("invalid base address for peripheral %s: %w", name, err)
		}
		if _, ok := registry[name]; ok {
			continue
		}
		registry[name] = &Peripheral{
			Description: name,
			Address:     uint32(addr),
		}
	}
	return nil
}
