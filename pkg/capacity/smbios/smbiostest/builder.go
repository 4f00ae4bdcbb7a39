// Package smbiostest builds raw SMBIOS tables for tests
package smbiostest

import (
	"bytes"
	"encoding/binary"
)

// Builder accumulates structures of a raw table
type Builder struct {
	buf    bytes.Buffer
	handle uint16
}

// Add appends a structure with the given formatted area (the bytes
// following the 4 bytes header) and string set.
func (b *Builder) Add(typ uint8, formatted []byte, strs ...string) *Builder {
	header := [4]byte{typ, uint8(4 + len(formatted))}
	binary.LittleEndian.PutUint16(header[2:], b.handle)
	b.handle++

	b.buf.Write(header[:])
	b.buf.Write(formatted)

	if len(strs) == 0 {
		b.buf.Write([]byte{0, 0})
		return b
	}

	for _, s := range strs {
		b.buf.WriteString(s)
		b.buf.WriteByte(0)
	}
	b.buf.WriteByte(0)

	return b
}

// Bytes terminates the table with an end-of-table structure and returns it
func (b *Builder) Bytes() []byte {
	b.Add(127, nil)
	return b.buf.Bytes()
}

// Formatted is a helper to lay out the formatted area of a structure.
// Offsets are absolute structure offsets (header included), the way
// they are documented by the SMBIOS specification.
type Formatted []byte

// NewFormatted creates a formatted area for a structure of total length
func NewFormatted(length int) Formatted {
	return make(Formatted, length-4)
}

// Byte sets the byte at off
func (f Formatted) Byte(off int, v uint8) Formatted {
	f[off-4] = v
	return f
}

// Word sets the little endian word at off
func (f Formatted) Word(off int, v uint16) Formatted {
	binary.LittleEndian.PutUint16(f[off-4:], v)
	return f
}

// DWord sets the little endian double word at off
func (f Formatted) DWord(off int, v uint32) Formatted {
	binary.LittleEndian.PutUint32(f[off-4:], v)
	return f
}
