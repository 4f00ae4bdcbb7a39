package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threefoldtech/memdecode/pkg/capacity/smbios"
	"github.com/threefoldtech/memdecode/pkg/units"
)

// constructed image: a single 32G SODIMM and one empty slot
const fixture = "testdata/dmi.bin"

func firstDevice(t *testing.T) Device {
	t.Helper()
	table, err := smbios.FromFile(fixture)
	require.NoError(t, err)

	devices := Devices(table)
	require.NotEmpty(t, devices)
	return devices[0]
}

func TestManufacturer(t *testing.T) {
	manufacturer, ok := firstDevice(t).Manufacturer()
	require.True(t, ok)
	require.Equal(t, "8C260000802C", manufacturer)
}

func TestPartNumber(t *testing.T) {
	part, ok := firstDevice(t).PartNumber()
	require.True(t, ok)
	require.Equal(t, "TIMETEC-SD4-2666", part)
}

func TestMemoryType(t *testing.T) {
	typ, ok := firstDevice(t).Type()
	require.True(t, ok)
	require.Equal(t, MemoryTypeDdr4, typ)
	require.Equal(t, "DDR4", typ.String())
}

func TestCapacity(t *testing.T) {
	size, ok := firstDevice(t).Size()
	require.True(t, ok)
	require.Equal(t, 32*units.GiB, size)
}

func TestFrequency(t *testing.T) {
	speed, ok, err := firstDevice(t).Speed()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2667*units.Megahertz, speed)
}

func TestFormFactor(t *testing.T) {
	ff, ok := firstDevice(t).FormFactor()
	require.True(t, ok)
	require.Equal(t, "SODIMM", ff.String())
}

func TestFixtureDevices(t *testing.T) {
	table, err := smbios.FromFile(fixture)
	require.NoError(t, err)

	devices := Devices(table)
	require.Len(t, devices, 2)
	require.Equal(t, devices, Devices(table))

	first := devices[0]
	location, ok := first.Location()
	require.True(t, ok)
	assert.Equal(t, "ChannelA-DIMM0", location)

	bank, ok := first.BankLocator()
	require.True(t, ok)
	assert.Equal(t, "BANK 0", bank)

	rank, ok := first.Rank()
	require.True(t, ok)
	assert.EqualValues(t, 2, rank)

	maxSpeed, ok, err := first.MaxSpeed()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2667*units.Megahertz, maxSpeed)

	// empty slot
	empty := devices[1]
	_, ok = empty.Size()
	assert.False(t, ok)
	_, ok, err = empty.Speed()
	assert.NoError(t, err)
	assert.False(t, ok)
	_, ok = empty.Rank()
	assert.False(t, ok)

	typ, ok := empty.Type()
	require.True(t, ok)
	assert.Equal(t, "UNKNOWN", typ.String())

	location, ok = empty.Location()
	require.True(t, ok)
	assert.Equal(t, "ChannelB-DIMM0", location)
}
