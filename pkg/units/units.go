package units

import (
	"github.com/dustin/go-humanize"
)

// Data is an amount of storage in bytes
type Data uint64

// Data units. Memory sizes are always reported in binary (IEC) multiples.
const (
	Byte Data = 1
	KiB       = 1024 * Byte
	MiB       = 1024 * KiB
	GiB       = 1024 * MiB
	TiB       = 1024 * GiB
)

// Bytes returns the size in bytes
func (d Data) Bytes() uint64 {
	return uint64(d)
}

// Mebibytes returns the size in MiB
func (d Data) Mebibytes() float64 {
	return float64(d) / float64(MiB)
}

// Gibibytes returns the size in GiB
func (d Data) Gibibytes() float64 {
	return float64(d) / float64(GiB)
}

func (d Data) String() string {
	return humanize.IBytes(uint64(d))
}

// Frequency in hertz
type Frequency uint64

// Frequency units
const (
	Hertz     Frequency = 1
	Kilohertz           = 1000 * Hertz
	Megahertz           = 1000 * Kilohertz
	Gigahertz           = 1000 * Megahertz
)

// Megahertz returns the frequency in MHz
func (f Frequency) Megahertz() float64 {
	return float64(f) / float64(Megahertz)
}

func (f Frequency) String() string {
	return humanize.SI(float64(f), "Hz")
}
