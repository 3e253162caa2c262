package assembler

import (
	"bytes"
	"testing"

	"github.com/soctools/header2svd/headerparser"
	"github.com/soctools/header2svd/profile"
	"github.com/stretchr/testify/assert"
)

func testProfile() *profile.ChipProfile {
	return &profile.ChipProfile{
		Device: profile.DeviceInfo{
			Name:        "Espressif",
			Description: "ESP8266",
			Version:     "1.0",
			Width:       32,
		},
		CPU: profile.CPUInfo{
			Name:             "Xtensa LX106",
			Revision:         "1",
			Endian:           "little",
			FPUPresent:       true,
			NVICPriorityBits: 3,
		},
	}
}

func testRegistry() headerparser.Registry {
	return headerparser.Registry{
		"UART": {
			Description: "UART",
			Address:     0x60000000,
			Registers: []headerparser.Register{
				{
					Name:        "UART_CONF0_REG",
					Description: "UART_CONF0_REG",
					Address:     0x20,
					BitFields: []headerparser.BitField{
						{Name: "UART_PARITY", Bits: headerparser.SingleBit(3)},
						{Name: "UART_BIT_NUM", Bits: headerparser.RangeBits(8, 10)},
					},
				},
				{
					Name:        "UART_STATUS_REG",
					Description: "UART_STATUS_REG",
					Address:     0x1c,
					BitFields: []headerparser.BitField{
						{Name: "Register", Bits: headerparser.RangeBits(0, 31)},
					},
				},
			},
		},
		"GPIO": {
			Description: "GPIO",
			Address:     0x60000300,
			Registers: []headerparser.Register{
				{
					Name:        "GPIO_OUT_REG",
					Description: "GPIO_OUT_REG",
					Address:     0x0,
					BitFields: []headerparser.BitField{
						{Name: "Register", Bits: headerparser.RangeBits(0, 31)},
					},
				},
			},
		},
	}
}

func TestBuildSortsPeripheralsByName(t *testing.T) {
	device := Build(testRegistry(), testProfile())

	names := make([]string, 0, len(device.Peripherals.Elements))
	for _, p := range device.Peripherals.Elements {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"GPIO", "UART"}, names)
}

func TestBuildNormalizesBitRanges(t *testing.T) {
	device := Build(testRegistry(), testProfile())

	i, ok := device.Peripherals.Find("UART")
	assert.True(t, ok)
	uart := device.Peripherals.Elements[i]

	conf0 := uart.Registers.Elements[0]
	assert.Equal(t, "UART_CONF0_REG", conf0.Name)

	parity := conf0.Fields.Elements[0]
	assert.EqualValues(t, 3, parity.BitOffset)
	assert.EqualValues(t, 1, parity.BitWidth)

	bitNum := conf0.Fields.Elements[1]
	assert.EqualValues(t, 8, bitNum.BitOffset)
	assert.EqualValues(t, 3, bitNum.BitWidth)
	assert.Equal(t, "read-write", bitNum.Access)
}

func TestBuildAddressBlockIsFlatWidthSum(t *testing.T) {
	device := Build(testRegistry(), testProfile())

	i, _ := device.Peripherals.Find("UART")
	uart := device.Peripherals.Elements[i]

	// Two 32-bit registers: the block size ignores offset gaps.
	assert.EqualValues(t, 64, uart.AddressBlock.Size)
	assert.EqualValues(t, 0, uart.AddressBlock.Offset)
	assert.Equal(t, "registers", uart.AddressBlock.Usage)
	assert.EqualValues(t, 32, uart.Registers.Elements[0].Size)
}

func TestBuildDeviceMetadata(t *testing.T) {
	device := Build(testRegistry(), testProfile())

	assert.Equal(t, "Espressif", device.Name)
	assert.Equal(t, "Xtensa LX106", device.CPU.Name)
	assert.Equal(t, "little", device.CPU.Endian)
	assert.Equal(t, "false", device.CPU.MPUPresent)
	assert.Equal(t, "true", device.CPU.FPUPresent)
	assert.EqualValues(t, 3, device.CPU.NVICPriorityBits)
	assert.EqualValues(t, 32, device.BitWidth)
}

func TestBuildDeterministic(t *testing.T) {
	prof := testProfile()

	var first, second bytes.Buffer
	assert.NoError(t, Build(testRegistry(), prof).Encode(&first))
	assert.NoError(t, Build(testRegistry(), prof).Encode(&second))

	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Contains(t, first.String(), "<baseAddress>0x60000300</baseAddress>")
}
