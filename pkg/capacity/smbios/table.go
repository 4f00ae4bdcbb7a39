// Package smbios loads an SMBIOS table, either from the running system or
// from a previously captured image, into an immutable Table.
package smbios

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/blang/semver"
	gosmbios "github.com/digitalocean/go-smbios/smbios"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Type is an SMBIOS structure type tag
type Type uint8

// Structure types used by this module
const (
	TypeMemoryDevice Type = 17
	TypeEndOfTable   Type = 127
)

// DefaultTablePath is where linux exposes the raw table
const DefaultTablePath = "/sys/firmware/dmi/tables/DMI"

// Structure is a single decoded structure of the table
type Structure = gosmbios.Structure

// stream is replaced in tests
var stream = gosmbios.Stream

// Table is the full set of structures of an SMBIOS table. A table is
// never modified after it is loaded, so it can be shared between
// goroutines freely.
type Table struct {
	version    semver.Version
	live       bool
	structures []*gosmbios.Structure
}

// FromDevice loads the table of the running system. On linux this
// requires read access to /sys/firmware/dmi/tables, which normally
// means root.
func FromDevice() (*Table, error) {
	rc, ep, err := stream()
	if err != nil {
		return nil, IOError(err, "failed to open smbios stream")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, IOError(err, "failed to read smbios table")
	}

	table, err := decode(data)
	if err != nil {
		return nil, err
	}

	table.live = true
	major, minor, rev := ep.Version()
	table.version = semver.Version{
		Major: uint64(major),
		Minor: uint64(minor),
		Patch: uint64(rev),
	}

	log.Debug().
		Str("version", table.version.String()).
		Int("structures", table.Len()).
		Msg("loaded smbios table from device")

	return table, nil
}

// FromFile loads a table image captured earlier, for example a copy of
// DefaultTablePath. The SMBIOS version is not part of the image so it
// is left at zero.
func FromFile(path string) (*Table, error) {
	if !utf8.ValidString(path) || strings.ContainsRune(path, 0) {
		return nil, EncodingError("table path is not a valid string")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, IOError(err, "failed to read table image")
	}

	table, err := decode(data)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Int("structures", table.Len()).
		Msg("loaded smbios table from file")

	return table, nil
}

// FromData loads a table from raw table bytes
func FromData(data []byte) (*Table, error) {
	return decode(data)
}

func decode(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, MessageError(nil, "table image is empty")
	}

	structures, err := gosmbios.NewDecoder(bytes.NewReader(data)).Decode()
	if err != nil {
		return nil, MessageError(errors.Wrap(err, "failed to decode structures"), "invalid smbios table")
	}

	return &Table{structures: structures}, nil
}

// Version of the SMBIOS specification the table implements, zero if unknown
func (t *Table) Version() semver.Version {
	return t.version
}

// WithVersion returns a copy of the table with the SMBIOS version set.
// Captured images do not carry the entry point, so the version of a
// table loaded with FromFile is only known if the caller provides it.
func (t *Table) WithVersion(v semver.Version) *Table {
	return &Table{version: v, live: t.live, structures: t.structures}
}

// Live is true if the table was read from the running system
func (t *Table) Live() bool {
	return t.live
}

// Len returns the number of structures in the table
func (t *Table) Len() int {
	return len(t.structures)
}

// Structure returns a copy of the structure at position i
func (t *Table) Structure(i int) Structure {
	s := t.structures[i]
	return Structure{
		Header:    s.Header,
		Formatted: append([]byte(nil), s.Formatted...),
		Strings:   append([]string(nil), s.Strings...),
	}
}

// Indices returns the positions of all structures of type typ, in table order
func (t *Table) Indices(typ Type) []int {
	var indices []int
	for i, s := range t.structures {
		if Type(s.Header.Type) == typ {
			indices = append(indices, i)
		}
	}

	return indices
}
