package headerparser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Parser extracts a peripheral registry from a directory of SoC headers.
type Parser interface {
	Parse(socPath string) (Registry, *Report, error)
}

// parserImpl implements Parser for the ESP8266 RTOS SDK header layout: one
// principal header carrying base addresses and interrupt constants, plus a
// family of per-peripheral register headers.
type parserImpl struct {
	principal string // filename of the principal header, e.g. eagle_soc.h
	suffix    string // filename suffix of register headers, e.g. _register.h
}

// NewParser returns a Parser for a header set with the given principal
// header filename and register-header suffix.
func NewParser(principal, suffix string) Parser {
	return &parserImpl{principal: principal, suffix: suffix}
}

// Parse runs the full extraction pipeline: seed base addresses and
// interrupts from the principal header, then scan every candidate file with
// the register extraction state machine. Recoverable problems land in the
// returned Report; only unreadable input, non-UTF-8 content, or an
// unparsable address aborts the run.
func (p *parserImpl) Parse(socPath string) (Registry, *Report, error) {
	registry := make(Registry)
	report := &Report{}

	socHeader, err := readTextFile(filepath.Join(socPath, p.principal))
	if err != nil {
		return nil, nil, fmt.Errorf("error reading principal header: %w", err)
	}

	report.Interrupts, err = ExtractInterrupts(socHeader)
	if err != nil {
		return nil, nil, err
	}
	if err := ExtractBaseAddresses(socHeader, registry); err != nil {
		return nil, nil, err
	}

	entries, err := os.ReadDir(socPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading header directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, p.suffix) && name != p.principal) {
			continue
		}
		text, err := readTextFile(filepath.Join(socPath, name))
		if err != nil {
			return nil, nil, err
		}
		text = Normalize(text)

		if err := ExtractBaseAddresses(text, registry); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}

		m := newMachine(registry, report, name)
		if err := m.Run(text); err != nil {
			return nil, nil, err
		}
		if !m.matched {
			report.InvalidFiles = append(report.InvalidFiles, name)
		}
	}
	return registry, report, nil
}

// readTextFile reads a file and rejects content that is not valid UTF-8.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid UTF-8", path)
	}
	return string(data), nil
}
