package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryTypeString(t *testing.T) {
	require.Equal(t, "3DRAM", MemoryTypeThreeDram.String())
	require.Equal(t, "ThreeDram", MemoryTypeThreeDram.Name())

	cases := map[MemoryType]string{
		MemoryTypeDdr4:                     "DDR4",
		MemoryTypeLpddr5:                   "LPDDR5",
		MemoryTypeDdr2Fbdimm:               "DDR2FBDIMM",
		MemoryTypeLogicalNonVolatileDevice: "LOGICALNONVOLATILEDEVICE",
		MemoryTypeOther:                    "OTHER",
	}
	for typ, expected := range cases {
		require.Equal(t, expected, typ.String())
	}

	// everything that is not aliased is the upper cased name
	for typ, name := range memoryTypeNames {
		if typ == MemoryTypeThreeDram {
			continue
		}
		require.Equal(t, strings.ToUpper(name), typ.String())
	}
}

func TestFormFactorString(t *testing.T) {
	require.Equal(t, "Row of Chips", FormFactorRowOfChips.String())
	require.Equal(t, "Proprietary Card", FormFactorProprietaryCard.String())
	require.Equal(t, "SODIMM", FormFactorSodimm.String())
	require.Equal(t, "FBDIMM", FormFactorFbdimm.String())

	for ff, name := range formFactorNames {
		if ff == FormFactorRowOfChips || ff == FormFactorProprietaryCard {
			continue
		}
		require.Equal(t, strings.ToUpper(name), ff.String())
	}
}

func TestUnknownCodes(t *testing.T) {
	require.False(t, MemoryType(0x15).Valid())
	require.Equal(t, "MEMORYTYPE(0X15)", MemoryType(0x15).String())
	require.False(t, FormFactor(0).Valid())
	require.Equal(t, "FormFactor(0x00)", FormFactor(0).Name())
}

func TestMarshalText(t *testing.T) {
	text, err := FormFactorProprietaryCard.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Proprietary Card", string(text))

	text, err = MemoryTypeDdr5.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "DDR5", string(text))
}

func TestUnmarshalText(t *testing.T) {
	for typ := range memoryTypeNames {
		var decoded MemoryType
		require.NoError(t, decoded.UnmarshalText([]byte(typ.String())))
		require.Equal(t, typ, decoded)
	}

	for ff := range formFactorNames {
		var decoded FormFactor
		require.NoError(t, decoded.UnmarshalText([]byte(ff.String())))
		require.Equal(t, ff, decoded)
	}

	var ff FormFactor
	require.NoError(t, ff.UnmarshalText([]byte("RowOfChips")))
	require.Equal(t, FormFactorRowOfChips, ff)

	var typ MemoryType
	require.Error(t, typ.UnmarshalText([]byte("DDR9")))
}
