package memui

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/pkg/errors"
	"github.com/threefoldtech/memdecode/cmds/modules/inventory"
	"github.com/threefoldtech/memdecode/pkg/capacity"
	"github.com/urfave/cli/v2"
)

const headerHeight = 5

// Module is the app entry point
var Module cli.Command = cli.Command{
	Name:   "memui",
	Usage:  "shows the memory modules of the node in a terminal ui",
	Flags:  inventory.SourceFlags,
	Action: action,
}

func action(c *cli.Context) error {
	cfg, err := inventory.Config(c)
	if err != nil {
		return err
	}

	table, err := cfg.Table()
	if err != nil {
		return errors.Wrap(err, "failed to load smbios table")
	}

	report := capacity.NewOracle(table).Report()

	if err := ui.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize term ui")
	}

	defer ui.Close()

	header := widgets.NewParagraph()
	header.Title = "Memory"
	header.Text = headerText(report)

	modules := widgets.NewTable()
	modules.Title = "Modules"
	modules.Rows = rows(report)
	modules.TextStyle = ui.NewStyle(ui.ColorWhite)
	modules.RowSeparator = false
	modules.FillRow = true
	modules.RowStyles[0] = ui.NewStyle(ui.ColorWhite, ui.ColorBlack, ui.ModifierBold)

	layout := func(width, height int) {
		header.SetRect(0, 0, width, headerHeight)
		modules.SetRect(0, headerHeight, width, height)
	}

	layout(ui.TerminalDimensions())
	ui.Render(header, modules)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			layout(payload.Width, payload.Height)
			ui.Clear()
			ui.Render(header, modules)
		}
	}

	return nil
}

func headerText(report capacity.Report) string {
	version := report.Version
	if version == "" {
		version = "unknown"
	}

	color := "green"
	if report.Populated == 0 {
		color = "red"
	}

	return fmt.Sprintf(
		"SMBIOS: %s\nSlots: [%d/%d populated](fg:%s)\nInstalled: %s, Visible: %s",
		version, report.Populated, report.Slots, color, report.Installed, inventory.Optional(report.Visible),
	)
}

func rows(report capacity.Report) [][]string {
	rows := [][]string{
		{"Location", "Size", "Type", "Speed", "Form Factor", "Manufacturer", "Part Number"},
	}

	for _, m := range report.Modules {
		rows = append(rows, []string{
			m.Location,
			inventory.Optional(m.Size),
			inventory.Optional(m.Type),
			inventory.Optional(m.Speed),
			inventory.Optional(m.FormFactor),
			m.Manufacturer,
			m.PartNumber,
		})
	}

	return rows
}
