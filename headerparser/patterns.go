package headerparser

import "regexp"

// Regular expressions for the macro idioms found across the SDK headers.
// The input is not a grammar: these overlap and are disambiguated by the
// state machine, so their exact shapes (including the [\s*] classes that
// also eat stray asterisks) are load-bearing.
var (
	// Peripheral base address, e.g. #define DR_REG_SLC_BASE 0x60000B00
	regBaseRegex = regexp.MustCompile(`#define[\s*]+(?:DR_REG|REG|PERIPHS)_(.*)_BASE(?:A?DDR)?[\s*]+0x([0-9a-fA-F]+)`)

	// Register at an offset from a base macro,
	// e.g. #define SPI_CMD_REG (DR_REG_SPI_BASE + 0x0)
	regDefRegex = regexp.MustCompile(`#define[\s*]+(?:PERIPHS_)?([^\s*]+_(?:REG|ADDRESS|U))[\s*]+\((?:DR_REG|REG|PERIPHS)_(.*)_BASE(?:A?DDR)? \+ (.*)\)`)

	// Offset-only register, e.g. #define UART_FIFO_ADDRESS 0x0
	regDefOffsetRegex = regexp.MustCompile(`#define[\s*]+(?:PERIPHS_)?([^\s*]+_(?:ADDRESS|U))[\s*]+(?:0x)?([0-9a-fA-F]+)`)

	// Indexed (array) register form; always rejected, never expanded.
	regDefIndexRegex = regexp.MustCompile(`#define[\s*]+(?:PERIPHS_)?([^\s*]+_(?:REG|ADDRESS|U))\(i\)[\s*]+\((?:DR_REG|REG|PERIPHS)_([0-9A-Za-z_]+)_BASE(?:A?DDR)?[\s*]*\(i\) \+ (.*?)\)`)

	// Generic value define: a bit-field mask, a single BIT(n), or a plain
	// numeric constant.
	regDefineMaskRegex = regexp.MustCompile(`#define[\s*]+(?:PERIPHS_)?([^\s*]+)[\s*]+\(?(0x[0-9a-fA-F]+|[0-9]+|\(?BIT\(?[0-9]+\)?)\)?\)?`)

	// Shift companion of a mask, e.g. #define SPI_USR_COMMAND_BITLEN_S 28
	regDefineShiftRegex = regexp.MustCompile(`#define[\s*]+(?:PERIPHS_)?([^\s*]+)_(?:S|s)[\s*]+\(?(0x[0-9a-fA-F]+|[0-9]+)\)?`)

	// _M/_V companion constants carry no extra layout information.
	regDefineSkipRegex = regexp.MustCompile(`#define[\s*]+(?:PERIPHS_)?([^\s*]+)_(?:M|V)[\s*]+(\(|0x)`)

	singleBitRegex = regexp.MustCompile(`BIT\(?([0-9]+)\)?`)

	interruptsRegex = regexp.MustCompile(`#define[\s]ETS_([0-9A-Za-z_/]+)_SOURCE[\s]+([0-9]+)/\*\*<\s([0-9A-Za-z_/\s,]+)\*/`)

	// Conditional directives are recognized as standalone lines and
	// skipped; their bodies are still scanned.
	ifdefRegex = regexp.MustCompile(`#ifn?def.*`)
	endifRegex = regexp.MustCompile(`#endif`)
)
