// Package environment reads the configuration of the tools from the
// process environment.
package environment

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/threefoldtech/memdecode/pkg/capacity/smbios"
)

// Environment variables
const (
	EnvTable   = "MEMDECODE_TABLE"
	EnvFormat  = "MEMDECODE_FORMAT"
	EnvDebug   = "MEMDECODE_DEBUG"
	EnvVersion = "MEMDECODE_SMBIOS_VERSION"
)

// Format of the inventory output
type Format string

// Supported output formats
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", errors.Errorf("unknown output format '%s'", s)
}

// Config of a run
type Config struct {
	// TablePath is a captured table image, the live table is used if empty
	TablePath string
	Format    Format
	Debug     bool
	// Version overrides the SMBIOS version of the table, captured images
	// do not carry it
	Version *semver.Version
}

// Get returns the configuration from the process environment
func Get() (Config, error) {
	return getFromEnv(os.LookupEnv)
}

func getFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Format: FormatTable}

	if path, ok := lookup(EnvTable); ok {
		if !utf8.ValidString(path) {
			return cfg, smbios.EncodingError(EnvTable + " is not a valid utf-8 string")
		}
		cfg.TablePath = path
	}

	if value, ok := lookup(EnvFormat); ok && value != "" {
		format, err := ParseFormat(value)
		if err != nil {
			return cfg, smbios.EnvError(err, EnvFormat)
		}
		cfg.Format = format
	}

	if value, ok := lookup(EnvDebug); ok && value != "" {
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return cfg, smbios.EnvError(err, EnvDebug)
		}
		cfg.Debug = debug
	}

	if value, ok := lookup(EnvVersion); ok && value != "" {
		version, err := semver.ParseTolerant(value)
		if err != nil {
			return cfg, smbios.EnvError(err, EnvVersion)
		}
		cfg.Version = &version
	}

	return cfg, nil
}

// Table acquires the SMBIOS table the configuration points to
func (c *Config) Table() (*smbios.Table, error) {
	var (
		table *smbios.Table
		err   error
	)

	if c.TablePath == "" {
		table, err = smbios.FromDevice()
	} else {
		table, err = smbios.FromFile(c.TablePath)
	}

	if err != nil {
		return nil, err
	}

	if c.Version != nil {
		table = table.WithVersion(*c.Version)
	}

	return table, nil
}
