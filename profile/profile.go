// Package profile holds the chip profile configuration describing the target
// device and where to find its SDK headers and documentation records.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChipProfile represents the configuration for a specific chip.
type ChipProfile struct {
	Device DeviceInfo `yaml:"device"`
	CPU    CPUInfo    `yaml:"cpu"`

	// SOCPath is the directory holding the SDK headers.
	SOCPath string `yaml:"soc_path"`
	// PrincipalHeader supplies base addresses and interrupt constants.
	PrincipalHeader string `yaml:"principal_header"`
	// HeaderSuffix selects the per-peripheral register headers.
	HeaderSuffix string `yaml:"header_suffix"`

	// DocPath is the directory holding documentation-derived peripheral
	// records.
	DocPath string `yaml:"doc_path"`
	// Overrides maps peripheral names to documentation records that
	// wholesale-replace their extracted register lists.
	Overrides map[string]string `yaml:"overrides"`
	// Clones seeds additional peripherals from documentation records at
	// explicit base addresses.
	Clones []Clone `yaml:"clones"`
}

// DeviceInfo is the device metadata emitted into the SVD document.
type DeviceInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Width       uint32 `yaml:"width"`
}

// CPUInfo is the processor description emitted into the SVD document.
type CPUInfo struct {
	Name             string `yaml:"name"`
	Revision         string `yaml:"revision"`
	Endian           string `yaml:"endian"`
	MPUPresent       bool   `yaml:"mpu_present"`
	FPUPresent       bool   `yaml:"fpu_present"`
	NVICPriorityBits uint32 `yaml:"nvic_prio_bits"`
}

// Clone derives a peripheral from a documentation record under a new name at
// an explicit base address.
type Clone struct {
	Source  string `yaml:"source"`
	Name    string `yaml:"name"`
	Address uint32 `yaml:"address"`
}

// LoadProfile loads a chip profile from a YAML file.
func LoadProfile(filename string) (*ChipProfile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	var profile ChipProfile
	if err := yaml.NewDecoder(file).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if profile.PrincipalHeader == "" {
		profile.PrincipalHeader = "eagle_soc.h"
	}
	if profile.HeaderSuffix == "" {
		profile.HeaderSuffix = "_register.h"
	}
	if profile.Device.Width == 0 {
		profile.Device.Width = 32
	}
	return &profile, nil
}
