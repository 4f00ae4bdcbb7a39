package inventory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/threefoldtech/memdecode/pkg/capacity"
	"github.com/threefoldtech/memdecode/pkg/capacity/smbios"
	"github.com/threefoldtech/memdecode/pkg/environment"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

// SourceFlags select the table to decode, shared by all modules
var SourceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "table",
		Usage: "captured smbios table `FILE` (a copy of " + smbios.DefaultTablePath + "), the live table is read if not set",
	},
	&cli.StringFlag{
		Name:  "smbios-version",
		Usage: "smbios `VERSION` of a captured table",
	},
	&cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug logging",
	},
}

// Module is entry point for module
var Module cli.Command = cli.Command{
	Name:  "inventory",
	Usage: "prints the memory modules of the node",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "output `FORMAT` (table, json, yaml)",
		},
	}, SourceFlags...),
	Action: action,
}

// Config builds the run configuration from the environment, overridden
// by the command line flags
func Config(c *cli.Context) (environment.Config, error) {
	cfg, err := environment.Get()
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read configuration from environment")
	}

	if c.IsSet("table") {
		cfg.TablePath = c.String("table")
	}

	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}

	if c.IsSet("smbios-version") {
		version, err := semver.ParseTolerant(c.String("smbios-version"))
		if err != nil {
			return cfg, errors.Wrap(err, "invalid smbios version")
		}
		cfg.Version = &version
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return cfg, nil
}

func action(c *cli.Context) error {
	cfg, err := Config(c)
	if err != nil {
		return err
	}

	if c.IsSet("format") {
		cfg.Format, err = environment.ParseFormat(c.String("format"))
		if err != nil {
			return err
		}
	}

	table, err := cfg.Table()
	if err != nil {
		return errors.Wrap(err, "failed to load smbios table")
	}

	report := capacity.NewOracle(table).Report()

	log.Debug().
		Int("slots", report.Slots).
		Int("populated", report.Populated).
		Msg("memory inventory ready")

	return Write(os.Stdout, cfg.Format, report)
}

// Write renders the report in the given format
func Write(w io.Writer, format environment.Format, report capacity.Report) error {
	switch format {
	case environment.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case environment.FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(err, "failed to encode report")
		}
		_, err = w.Write(data)
		return err
	case environment.FormatTable:
		return writeTable(w, report)
	}

	return fmt.Errorf("unsupported format '%s'", format)
}

func writeTable(w io.Writer, report capacity.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tSIZE\tTYPE\tSPEED\tFORM FACTOR\tMANUFACTURER\tPART NUMBER")
	for _, m := range report.Modules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(m.Location),
			Optional(m.Size),
			Optional(m.Type),
			Optional(m.Speed),
			Optional(m.FormFactor),
			orDash(m.Manufacturer),
			orDash(m.PartNumber),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d/%d slots populated, installed: %s, visible: %s\n",
		report.Populated, report.Slots, report.Installed, Optional(report.Visible))
	return err
}

// Optional renders a value the firmware may not have reported
func Optional[T fmt.Stringer](v *T) string {
	if v == nil {
		return "-"
	}

	return (*v).String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
