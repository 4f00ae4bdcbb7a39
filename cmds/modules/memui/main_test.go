package memui

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/threefoldtech/memdecode/pkg/capacity"
	"github.com/threefoldtech/memdecode/pkg/capacity/memory"
	"github.com/threefoldtech/memdecode/pkg/units"
)

func TestRows(t *testing.T) {
	size := 16 * units.GiB
	visible := 15 * units.GiB
	ff := memory.FormFactorRowOfChips
	report := capacity.Report{
		Slots:     2,
		Populated: 1,
		Installed: size,
		Visible:   &visible,
		Modules: []capacity.Module{
			{Location: "U1", Size: &size, FormFactor: &ff, Manufacturer: "Micron"},
			{Location: "U2"},
		},
	}

	rows := rows(report)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"U1", "16 GiB", "-", "-", "Row of Chips", "Micron", ""}, rows[1])
	require.Equal(t, []string{"U2", "-", "-", "-", "-", "", ""}, rows[2])

	require.Equal(t,
		"SMBIOS: unknown\nSlots: [1/2 populated](fg:green)\nInstalled: 16 GiB, Visible: 15 GiB",
		headerText(report))

	report.Visible = nil
	require.Equal(t,
		"SMBIOS: unknown\nSlots: [1/2 populated](fg:green)\nInstalled: 16 GiB, Visible: -",
		headerText(report))
}
