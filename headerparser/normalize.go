package headerparser

import "strings"

// replacements aligns macro spellings that drifted between SDK revisions to
// one canonical form, so the extraction patterns only have to handle one.
// Applied in order; order matters for overlapping prefixes.
var replacements = [][2]string{
	{"PERIPHS_IO_MUX ", "PERIPHS_IO_MUX_BASE "},
	{"SLC_CONF0", "SLC_CONF0_REG"},
	{"SLC_INT_RAW", "SLC_INT_RAW_REG"},
	{"SLC_INT_STATUS", "SLC_INT_STATUS_REG"},
	{"SLC_INT_ENA", "SLC_INT_ENA_REG"},
	{"SLC_INT_CLR", "SLC_INT_CLR_REG"},
	{"SLC_RX_STATUS", "SLC_RX_STATUS_REG"},
	{"SLC_RX_FIFO_PUSH", "SLC_RX_FIFO_PUSH_REG"},
	{"SLC_TX_STATUS", "SLC_TX_STATUS_REG"},
	{"SLC_TX_FIFO_POP", "SLC_TX_FIFO_POP_REG"},
	{"SLC_RX_LINK", "SLC_RX_LINK_REG"},
	{"RTC_STORE0", "RTC_STORE0_REG"},
	{"RTC_STATE1", "RTC_STATE1_REG"},
	{"RTC_STATE2", "RTC_STATE2_REG"},
}

// Normalize applies the canonical macro-name substitutions to header text.
// It is pure and idempotent: names already spelled in the canonical form are
// left alone.
func Normalize(text string) string {
	for _, r := range replacements {
		text = expand(text, r[0], r[1])
	}
	return text
}

// expand replaces pattern with replacement, except where the text already
// continues with the suffix the replacement would add. Without the guard a
// second pass (or a header that already uses the canonical spelling) would
// grow the suffix again.
func expand(text, pattern, replacement string) string {
	suffix, ok := strings.CutPrefix(replacement, pattern)
	if !ok || suffix == "" {
		return strings.ReplaceAll(text, pattern, replacement)
	}

	var out strings.Builder
	for {
		i := strings.Index(text, pattern)
		if i < 0 {
			out.WriteString(text)
			return out.String()
		}
		out.WriteString(text[:i])
		rest := text[i+len(pattern):]
		if strings.HasPrefix(rest, suffix) {
			out.WriteString(pattern)
		} else {
			out.WriteString(replacement)
		}
		text = rest
	}
}
