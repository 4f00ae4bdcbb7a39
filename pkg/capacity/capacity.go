package capacity

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/threefoldtech/memdecode/pkg/capacity/memory"
	"github.com/threefoldtech/memdecode/pkg/capacity/smbios"
	"github.com/threefoldtech/memdecode/pkg/units"
)

// Module holds all the decoded fields of a memory device. Fields the
// firmware did not report are left empty.
type Module struct {
	Handle       uint16             `json:"handle" yaml:"handle"`
	Location     string             `json:"location,omitempty" yaml:"location,omitempty"`
	Bank         string             `json:"bank,omitempty" yaml:"bank,omitempty"`
	Manufacturer string             `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	PartNumber   string             `json:"part_number,omitempty" yaml:"part_number,omitempty"`
	SerialNumber string             `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	Size         *units.Data        `json:"size,omitempty" yaml:"size,omitempty"`
	Speed        *units.Frequency   `json:"speed,omitempty" yaml:"speed,omitempty"`
	MaxSpeed     *units.Frequency   `json:"max_speed,omitempty" yaml:"max_speed,omitempty"`
	Type         *memory.MemoryType `json:"type,omitempty" yaml:"type,omitempty"`
	FormFactor   *memory.FormFactor `json:"form_factor,omitempty" yaml:"form_factor,omitempty"`
	Rank         uint8              `json:"rank,omitempty" yaml:"rank,omitempty"`
	// Warnings are fields that could not be decoded
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Populated is true if a module with a known size sits in the slot
func (m *Module) Populated() bool {
	return m.Size != nil && *m.Size > 0
}

// Snapshot decodes all fields of a device. A field that fails to decode
// never prevents the others from being decoded.
func Snapshot(d memory.Device) Module {
	m := Module{Handle: d.Handle()}

	m.Location, _ = d.Location()
	m.Bank, _ = d.BankLocator()
	m.Manufacturer, _ = d.Manufacturer()
	m.PartNumber, _ = d.PartNumber()
	m.SerialNumber, _ = d.SerialNumber()
	m.Rank, _ = d.Rank()

	if size, ok := d.Size(); ok {
		m.Size = &size
	}

	if typ, ok := d.Type(); ok {
		m.Type = &typ
	}

	if ff, ok := d.FormFactor(); ok {
		m.FormFactor = &ff
	}

	speed, ok, err := d.Speed()
	if err != nil {
		log.Warn().Err(err).Uint16("handle", m.Handle).Msg("failed to decode configured speed")
		m.Warnings = append(m.Warnings, err.Error())
	} else if ok {
		m.Speed = &speed
	}

	maxSpeed, ok, err := d.MaxSpeed()
	if err != nil {
		log.Warn().Err(err).Uint16("handle", m.Handle).Msg("failed to decode maximum speed")
		m.Warnings = append(m.Warnings, err.Error())
	} else if ok {
		m.MaxSpeed = &maxSpeed
	}

	return m
}

// Report is the memory inventory of a node
type Report struct {
	// SMBIOS version of the table, empty when unknown
	Version   string     `json:"smbios_version,omitempty" yaml:"smbios_version,omitempty"`
	Slots     int        `json:"slots" yaml:"slots"`
	Populated int        `json:"populated" yaml:"populated"`
	Installed units.Data `json:"installed" yaml:"installed"`
	// Visible is the memory the running OS reports. It is only set for a
	// table read from the device of the same machine.
	Visible *units.Data `json:"visible,omitempty" yaml:"visible,omitempty"`
	Modules []Module    `json:"modules" yaml:"modules"`
}

// Oracle is responsible for the memory inventory of a node
type Oracle struct {
	table *smbios.Table
	// visible is nil for captured tables, the running OS says nothing
	// about the machine they were captured on
	visible func() (uint64, error)
}

// NewOracle creates a new Oracle over an acquired table
func NewOracle(table *smbios.Table) *Oracle {
	o := &Oracle{table: table}
	if table.Live() {
		o.visible = virtualMemory
	}

	return o
}

// Modules decodes all memory devices of the table
func (o *Oracle) Modules() []Module {
	devices := memory.Devices(o.table)
	modules := make([]Module, 0, len(devices))
	for _, d := range devices {
		modules = append(modules, Snapshot(d))
	}

	return modules
}

// Installed is the sum of the sizes of all memory modules
func (o *Oracle) Installed() units.Data {
	var total units.Data
	for _, d := range memory.Devices(o.table) {
		if size, ok := d.Size(); ok {
			total += size
		}
	}

	return total
}

// Visible returns the total memory as seen by the operating system
func (o *Oracle) Visible() (units.Data, error) {
	if o.visible == nil {
		return 0, errors.New("visible memory is only known for a table read from the device")
	}

	total, err := o.visible()
	if err != nil {
		return 0, err
	}

	return units.Data(total), nil
}

// Report builds the full memory inventory. Failing to read the visible
// memory is logged and leaves it unset.
func (o *Oracle) Report() Report {
	var r Report
	if o.visible != nil {
		visible, err := o.Visible()
		if err != nil {
			log.Warn().Err(err).Msg("failed to get visible memory")
		} else {
			r.Visible = &visible
		}
	}

	if v := o.table.Version(); v.Major != 0 {
		r.Version = v.String()
	}

	r.Modules = o.Modules()
	r.Slots = len(r.Modules)
	for i := range r.Modules {
		m := &r.Modules[i]
		if !m.Populated() {
			continue
		}
		r.Populated++
		r.Installed += *m.Size
	}

	return r
}
