package memory

import (
	"github.com/pkg/errors"
	"github.com/threefoldtech/memdecode/pkg/units"
)

// ErrUnsupportedEncoding is returned when the firmware defers a value to
// an extended field that the structure does not carry
var ErrUnsupportedEncoding = errors.New("unsupported field encoding")

type fieldState int

const (
	fieldAbsent fieldState = iota
	fieldLegacy
	fieldExtended
	// the sentinel is set but the structure ends before the extended field
	fieldExtendedMissing
)

// extendedField is a legacy word field with a sentinel value that means
// the real value did not fit and is stored in a wider double word
// somewhere else in the structure.
type extendedField struct {
	name     string
	legacy   int
	unset    []uint16
	sentinel uint16
	extended int
	mask     uint32
}

type reading struct {
	state    fieldState
	legacy   uint16
	extended uint32
}

var (
	sizeField = extendedField{
		name:     "size",
		legacy:   offSize,
		unset:    []uint16{0x0000, 0xFFFF},
		sentinel: 0x7FFF,
		extended: offExtendedSize,
		mask:     0x7FFFFFFF,
	}
	speedField = extendedField{
		name:     "speed",
		legacy:   offSpeed,
		unset:    []uint16{0x0000},
		sentinel: 0xFFFF,
		extended: offExtendedSpeed,
		mask:     0x7FFFFFFF,
	}
	configuredSpeedField = extendedField{
		name:     "configured speed",
		legacy:   offConfiguredSpeed,
		unset:    []uint16{0x0000},
		sentinel: 0xFFFF,
		extended: offExtendedConfiguredSpeed,
		mask:     0x7FFFFFFF,
	}
)

func (f extendedField) read(d Device) reading {
	v, ok := d.word(f.legacy)
	if !ok {
		return reading{state: fieldAbsent}
	}

	for _, unset := range f.unset {
		if v == unset {
			return reading{state: fieldAbsent}
		}
	}

	if v != f.sentinel {
		return reading{state: fieldLegacy, legacy: v}
	}

	ext, ok := d.dword(f.extended)
	if !ok {
		return reading{state: fieldExtendedMissing}
	}

	ext &= f.mask
	if ext == 0 {
		return reading{state: fieldAbsent}
	}

	return reading{state: fieldExtended, extended: ext}
}

// Size is the capacity of the device. Legacy sizes are either in KiB or
// MiB depending on the granularity bit, extended sizes are in MiB.
func (d Device) Size() (units.Data, bool) {
	r := sizeField.read(d)
	switch r.state {
	case fieldLegacy:
		if r.legacy&0x8000 != 0 {
			return units.Data(r.legacy&0x7FFF) * units.KiB, true
		}
		return units.Data(r.legacy) * units.MiB, true
	case fieldExtended:
		return units.Data(r.extended) * units.MiB, true
	}

	return 0, false
}

// Speed is the configured speed of the device. The firmware reports it in
// MT/s which is used as MHz. An error is only returned when the speed is
// deferred to an extended field missing from the structure.
func (d Device) Speed() (units.Frequency, bool, error) {
	return d.speed(configuredSpeedField)
}

// MaxSpeed is the maximum speed the device is capable of
func (d Device) MaxSpeed() (units.Frequency, bool, error) {
	return d.speed(speedField)
}

func (d Device) speed(f extendedField) (units.Frequency, bool, error) {
	r := f.read(d)
	switch r.state {
	case fieldLegacy:
		return units.Frequency(r.legacy) * units.Megahertz, true, nil
	case fieldExtended:
		return units.Frequency(r.extended) * units.Megahertz, true, nil
	case fieldExtendedMissing:
		return 0, false, errors.Wrapf(ErrUnsupportedEncoding,
			"device 0x%04x %s defers to extended field at offset 0x%02X", d.Handle(), f.name, f.extended)
	}

	return 0, false, nil
}
