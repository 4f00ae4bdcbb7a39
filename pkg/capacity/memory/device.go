// Package memory decodes the memory device (type 17) structures of an
// SMBIOS table.
//
// Decoding is lazy: Devices only selects the structures, each accessor
// of Device interprets its own field on demand. Accessors return ok as
// false when the firmware did not report the value, or reported a code
// this package does not know.
package memory

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"github.com/threefoldtech/memdecode/pkg/capacity/smbios"
)

// structure offsets of a memory device, header included
const (
	offSize                    = 0x0C
	offFormFactor              = 0x0E
	offDeviceLocator           = 0x10
	offBankLocator             = 0x11
	offType                    = 0x12
	offSpeed                   = 0x15
	offManufacturer            = 0x17
	offSerialNumber            = 0x18
	offAssetTag                = 0x19
	offPartNumber              = 0x1A
	offAttributes              = 0x1B
	offExtendedSize            = 0x1C
	offConfiguredSpeed         = 0x20
	offExtendedSpeed           = 0x54
	offExtendedConfiguredSpeed = 0x58

	headerLen = 4
)

// Device is a memory device structure of a table. It only refers to the
// table, a Device is valid as long as the table it came from. Devices
// must be obtained from Devices; every field of the zero value is unset.
type Device struct {
	table *smbios.Table
	index int
}

// Devices returns all memory devices of the table in table order. Empty
// slots are usually reported as devices too, with most fields unset.
func Devices(table *smbios.Table) []Device {
	indices := table.Indices(smbios.TypeMemoryDevice)
	devices := make([]Device, 0, len(indices))
	for _, i := range indices {
		devices = append(devices, Device{table: table, index: i})
	}

	return devices
}

func (d Device) structure() (smbios.Structure, bool) {
	if d.table == nil {
		return smbios.Structure{}, false
	}

	return d.table.Structure(d.index), true
}

// Handle is the SMBIOS handle of the structure
func (d Device) Handle() uint16 {
	s, _ := d.structure()
	return s.Header.Handle
}

// bytes returns n bytes at the absolute offset off, or false if the
// structure is too short to hold them
func (d Device) bytes(off, n int) ([]byte, bool) {
	s, ok := d.structure()
	if !ok {
		return nil, false
	}

	formatted := s.Formatted
	start := off - headerLen
	if start < 0 || start+n > len(formatted) {
		return nil, false
	}

	return formatted[start : start+n], true
}

func (d Device) byteAt(off int) (uint8, bool) {
	b, ok := d.bytes(off, 1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (d Device) word(off int) (uint16, bool) {
	b, ok := d.bytes(off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

func (d Device) dword(off int) (uint32, bool) {
	b, ok := d.bytes(off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// str resolves the string referenced by the index byte at off. Index 0
// means no string. Strings that are not valid utf-8 are unset.
func (d Device) str(off int) (string, bool) {
	index, ok := d.byteAt(off)
	if !ok || index == 0 {
		return "", false
	}

	s, _ := d.structure()
	if int(index) > len(s.Strings) {
		return "", false
	}

	str := s.Strings[index-1]
	if !utf8.ValidString(str) {
		return "", false
	}

	return str, true
}

func (d Device) trimmed(off int) (string, bool) {
	s, ok := d.str(off)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(s), true
}

// Location is the label of the socket or board position of the device,
// as reported by the firmware
func (d Device) Location() (string, bool) {
	return d.str(offDeviceLocator)
}

// BankLocator is the label of the bank the device is in
func (d Device) BankLocator() (string, bool) {
	return d.str(offBankLocator)
}

// Manufacturer of the device, as reported by the firmware
func (d Device) Manufacturer() (string, bool) {
	return d.str(offManufacturer)
}

// PartNumber of the device without surrounding padding
func (d Device) PartNumber() (string, bool) {
	return d.trimmed(offPartNumber)
}

// SerialNumber of the device without surrounding padding
func (d Device) SerialNumber() (string, bool) {
	return d.trimmed(offSerialNumber)
}

// AssetTag of the device without surrounding padding
func (d Device) AssetTag() (string, bool) {
	return d.trimmed(offAssetTag)
}

// Rank of the device
func (d Device) Rank() (uint8, bool) {
	attrs, ok := d.byteAt(offAttributes)
	if !ok || attrs&0x0F == 0 {
		return 0, false
	}

	return attrs & 0x0F, true
}

// Type is the memory technology of the device
func (d Device) Type() (MemoryType, bool) {
	v, ok := d.byteAt(offType)
	if !ok {
		return 0, false
	}

	t := MemoryType(v)
	if !t.Valid() {
		return 0, false
	}
	return t, true
}

// FormFactor is the physical packaging of the device
func (d Device) FormFactor() (FormFactor, bool) {
	v, ok := d.byteAt(offFormFactor)
	if !ok {
		return 0, false
	}

	f := FormFactor(v)
	if !f.Valid() {
		return 0, false
	}
	return f, true
}
