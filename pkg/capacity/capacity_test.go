package capacity

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/blang/semver"
	"github.com/stretchr/testify/require"
	"github.com/threefoldtech/memdecode/pkg/capacity/memory"
	"github.com/threefoldtech/memdecode/pkg/capacity/smbios"
	"github.com/threefoldtech/memdecode/pkg/capacity/smbios/smbiostest"
	"github.com/threefoldtech/memdecode/pkg/units"
	"gopkg.in/yaml.v2"
)

func populated(size uint16, speed uint16) smbiostest.Formatted {
	return smbiostest.NewFormatted(0x28).
		Word(0x0C, size).
		Byte(0x0E, uint8(memory.FormFactorDimm)).
		Byte(0x10, 1).
		Byte(0x12, uint8(memory.MemoryTypeDdr5)).
		Word(0x15, 4800).
		Byte(0x17, 2).
		Byte(0x1A, 3).
		Byte(0x1B, 0x01).
		Word(0x20, speed)
}

func testOracle(t *testing.T) *Oracle {
	var b smbiostest.Builder
	b.Add(17, populated(16384, 4800), "DIMM A1", "Hynix", "HMCG78AGBUA081N ")
	b.Add(17, smbiostest.NewFormatted(0x28).Byte(0x10, 1), "DIMM A2")
	// configured speed deferred to an extended field the structure does not have
	b.Add(17, populated(16384, 0xFFFF), "DIMM B1", "Hynix", "HMCG78AGBUA081N ")

	table, err := smbios.FromData(b.Bytes())
	require.NoError(t, err)

	oracle := NewOracle(table)
	oracle.visible = func() (uint64, error) {
		return uint64(31 * units.GiB), nil
	}

	return oracle
}

func TestSnapshot(t *testing.T) {
	modules := testOracle(t).Modules()
	require.Len(t, modules, 3)

	first := modules[0]
	require.True(t, first.Populated())
	require.Equal(t, "DIMM A1", first.Location)
	require.Equal(t, "Hynix", first.Manufacturer)
	require.Equal(t, "HMCG78AGBUA081N", first.PartNumber)
	require.Equal(t, 16*units.GiB, *first.Size)
	require.Equal(t, 4800*units.Megahertz, *first.Speed)
	require.Equal(t, memory.MemoryTypeDdr5, *first.Type)
	require.Equal(t, memory.FormFactorDimm, *first.FormFactor)
	require.EqualValues(t, 1, first.Rank)
	require.Empty(t, first.Warnings)

	empty := modules[1]
	require.False(t, empty.Populated())
	require.Nil(t, empty.Size)
	require.Nil(t, empty.Speed)
	require.Nil(t, empty.Type)

	broken := modules[2]
	require.True(t, broken.Populated())
	require.Nil(t, broken.Speed)
	require.Equal(t, 4800*units.Megahertz, *broken.MaxSpeed)
	require.Len(t, broken.Warnings, 1)
}

func TestReport(t *testing.T) {
	oracle := testOracle(t)
	require.Equal(t, 32*units.GiB, oracle.Installed())

	report := oracle.Report()
	require.Equal(t, 3, report.Slots)
	require.Equal(t, 2, report.Populated)
	require.Equal(t, 32*units.GiB, report.Installed)
	require.NotNil(t, report.Visible)
	require.Equal(t, 31*units.GiB, *report.Visible)
	require.Empty(t, report.Version)
}

func TestReportVisibleFailure(t *testing.T) {
	oracle := testOracle(t)
	oracle.visible = func() (uint64, error) {
		return 0, fmt.Errorf("no /proc/meminfo")
	}

	report := oracle.Report()
	require.Nil(t, report.Visible)
	require.Equal(t, 2, report.Populated)
	require.Equal(t, 32*units.GiB, report.Installed)
}

func TestReportCapturedTable(t *testing.T) {
	var b smbiostest.Builder
	b.Add(17, populated(8192, 3200), "DIMM 0", "Samsung", "M471A1K43DB1")

	table, err := smbios.FromData(b.Bytes())
	require.NoError(t, err)
	require.False(t, table.Live())

	oracle := NewOracle(table)
	require.Nil(t, oracle.visible)

	_, err = oracle.Visible()
	require.Error(t, err)

	report := oracle.Report()
	require.Nil(t, report.Visible)
	require.Equal(t, 8*units.GiB, report.Installed)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	require.NotContains(t, string(data), "visible")
}

func TestReportVersion(t *testing.T) {
	oracle := testOracle(t)
	oracle.table = oracle.table.WithVersion(semver.MustParse("3.4.0"))

	report := oracle.Report()
	require.Equal(t, "3.4.0", report.Version)
}

func TestReportEncoding(t *testing.T) {
	report := testOracle(t).Report()

	data, err := json.Marshal(report.Modules[0])
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "DDR5", decoded["type"])
	require.Equal(t, "DIMM", decoded["form_factor"])
	require.EqualValues(t, 16*units.GiB, decoded["size"])
	require.NotContains(t, decoded, "warnings")

	data, err = yaml.Marshal(report.Modules[1])
	require.NoError(t, err)
	require.Equal(t, "handle: 1\nlocation: DIMM A2\n", string(data))
}
