package memory

import (
	"fmt"
	"strings"
)

// MemoryType is the memory technology of a device (SMBIOS 7.18.2)
type MemoryType uint8

// List of memory types
const (
	MemoryTypeOther                    MemoryType = 0x01
	MemoryTypeUnknown                  MemoryType = 0x02
	MemoryTypeDram                     MemoryType = 0x03
	MemoryTypeEdram                    MemoryType = 0x04
	MemoryTypeVram                     MemoryType = 0x05
	MemoryTypeSram                     MemoryType = 0x06
	MemoryTypeRam                      MemoryType = 0x07
	MemoryTypeRom                      MemoryType = 0x08
	MemoryTypeFlash                    MemoryType = 0x09
	MemoryTypeEeprom                   MemoryType = 0x0A
	MemoryTypeFeprom                   MemoryType = 0x0B
	MemoryTypeEprom                    MemoryType = 0x0C
	MemoryTypeCdram                    MemoryType = 0x0D
	MemoryTypeThreeDram                MemoryType = 0x0E
	MemoryTypeSdram                    MemoryType = 0x0F
	MemoryTypeSgram                    MemoryType = 0x10
	MemoryTypeRdram                    MemoryType = 0x11
	MemoryTypeDdr                      MemoryType = 0x12
	MemoryTypeDdr2                     MemoryType = 0x13
	MemoryTypeDdr2Fbdimm               MemoryType = 0x14
	MemoryTypeDdr3                     MemoryType = 0x18
	MemoryTypeFbd2                     MemoryType = 0x19
	MemoryTypeDdr4                     MemoryType = 0x1A
	MemoryTypeLpddr                    MemoryType = 0x1B
	MemoryTypeLpddr2                   MemoryType = 0x1C
	MemoryTypeLpddr3                   MemoryType = 0x1D
	MemoryTypeLpddr4                   MemoryType = 0x1E
	MemoryTypeLogicalNonVolatileDevice MemoryType = 0x1F
	MemoryTypeHbm                      MemoryType = 0x20
	MemoryTypeHbm2                     MemoryType = 0x21
	MemoryTypeDdr5                     MemoryType = 0x22
	MemoryTypeLpddr5                   MemoryType = 0x23
	MemoryTypeHbm3                     MemoryType = 0x24
)

var memoryTypeNames = map[MemoryType]string{
	MemoryTypeOther:                    "Other",
	MemoryTypeUnknown:                  "Unknown",
	MemoryTypeDram:                     "Dram",
	MemoryTypeEdram:                    "Edram",
	MemoryTypeVram:                     "Vram",
	MemoryTypeSram:                     "Sram",
	MemoryTypeRam:                      "Ram",
	MemoryTypeRom:                      "Rom",
	MemoryTypeFlash:                    "Flash",
	MemoryTypeEeprom:                   "Eeprom",
	MemoryTypeFeprom:                   "Feprom",
	MemoryTypeEprom:                    "Eprom",
	MemoryTypeCdram:                    "Cdram",
	MemoryTypeThreeDram:                "ThreeDram",
	MemoryTypeSdram:                    "Sdram",
	MemoryTypeSgram:                    "Sgram",
	MemoryTypeRdram:                    "Rdram",
	MemoryTypeDdr:                      "Ddr",
	MemoryTypeDdr2:                     "Ddr2",
	MemoryTypeDdr2Fbdimm:               "Ddr2Fbdimm",
	MemoryTypeDdr3:                     "Ddr3",
	MemoryTypeFbd2:                     "Fbd2",
	MemoryTypeDdr4:                     "Ddr4",
	MemoryTypeLpddr:                    "Lpddr",
	MemoryTypeLpddr2:                   "Lpddr2",
	MemoryTypeLpddr3:                   "Lpddr3",
	MemoryTypeLpddr4:                   "Lpddr4",
	MemoryTypeLogicalNonVolatileDevice: "LogicalNonVolatileDevice",
	MemoryTypeHbm:                      "Hbm",
	MemoryTypeHbm2:                     "Hbm2",
	MemoryTypeDdr5:                     "Ddr5",
	MemoryTypeLpddr5:                   "Lpddr5",
	MemoryTypeHbm3:                     "Hbm3",
}

// display names that differ from the upper cased enumerator name
var memoryTypeAliases = map[MemoryType]string{
	MemoryTypeThreeDram: "3DRAM",
}

// Valid reports whether t is a known memory type
func (t MemoryType) Valid() bool {
	_, ok := memoryTypeNames[t]
	return ok
}

// Name is the enumerator name of t
func (t MemoryType) Name() string {
	if name, ok := memoryTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("MemoryType(0x%02X)", uint8(t))
}

func (t MemoryType) String() string {
	return render(memoryTypeAliases[t], t.Name())
}

// MarshalText renders t for json and yaml
func (t MemoryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts both the rendered and the enumerator name
func (t *MemoryType) UnmarshalText(text []byte) error {
	for typ := range memoryTypeNames {
		if matches(string(text), typ.String(), typ.Name()) {
			*t = typ
			return nil
		}
	}

	return fmt.Errorf("unknown memory type '%s'", text)
}

// FormFactor is the physical packaging of a device (SMBIOS 7.18.1)
type FormFactor uint8

// List of form factors
const (
	FormFactorOther           FormFactor = 0x01
	FormFactorUnknown         FormFactor = 0x02
	FormFactorSimm            FormFactor = 0x03
	FormFactorSip             FormFactor = 0x04
	FormFactorChip            FormFactor = 0x05
	FormFactorDip             FormFactor = 0x06
	FormFactorZip             FormFactor = 0x07
	FormFactorProprietaryCard FormFactor = 0x08
	FormFactorDimm            FormFactor = 0x09
	FormFactorTsop            FormFactor = 0x0A
	FormFactorRowOfChips      FormFactor = 0x0B
	FormFactorRimm            FormFactor = 0x0C
	FormFactorSodimm          FormFactor = 0x0D
	FormFactorSrimm           FormFactor = 0x0E
	FormFactorFbdimm          FormFactor = 0x0F
	FormFactorDie             FormFactor = 0x10
)

var formFactorNames = map[FormFactor]string{
	FormFactorOther:           "Other",
	FormFactorUnknown:         "Unknown",
	FormFactorSimm:            "Simm",
	FormFactorSip:             "Sip",
	FormFactorChip:            "Chip",
	FormFactorDip:             "Dip",
	FormFactorZip:             "Zip",
	FormFactorProprietaryCard: "ProprietaryCard",
	FormFactorDimm:            "Dimm",
	FormFactorTsop:            "Tsop",
	FormFactorRowOfChips:      "RowOfChips",
	FormFactorRimm:            "Rimm",
	FormFactorSodimm:          "Sodimm",
	FormFactorSrimm:           "Srimm",
	FormFactorFbdimm:          "Fbdimm",
	FormFactorDie:             "Die",
}

var formFactorAliases = map[FormFactor]string{
	FormFactorRowOfChips:      "Row of Chips",
	FormFactorProprietaryCard: "Proprietary Card",
}

// Valid reports whether f is a known form factor
func (f FormFactor) Valid() bool {
	_, ok := formFactorNames[f]
	return ok
}

// Name is the enumerator name of f
func (f FormFactor) Name() string {
	if name, ok := formFactorNames[f]; ok {
		return name
	}

	return fmt.Sprintf("FormFactor(0x%02X)", uint8(f))
}

func (f FormFactor) String() string {
	return render(formFactorAliases[f], f.Name())
}

// MarshalText renders f for json and yaml
func (f FormFactor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText accepts both the rendered and the enumerator name
func (f *FormFactor) UnmarshalText(text []byte) error {
	for ff := range formFactorNames {
		if matches(string(text), ff.String(), ff.Name()) {
			*f = ff
			return nil
		}
	}

	return fmt.Errorf("unknown form factor '%s'", text)
}

func matches(text string, names ...string) bool {
	for _, name := range names {
		if strings.EqualFold(text, name) {
			return true
		}
	}
	return false
}

func render(alias, name string) string {
	if alias != "" {
		return alias
	}

	return strings.ToUpper(name)
}
