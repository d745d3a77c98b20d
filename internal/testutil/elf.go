// Package testutil provides testing utilities for avrsize.
package testutil

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Segment is a program header entry to place in a synthetic ELF image.
type Segment struct {
	Type     elf.ProgType
	Flags    elf.ProgFlag
	FileSize uint64
	MemSize  uint64
	VAddr    uint64
}

// Load returns a PT_LOAD segment with the given flags and file size.
func Load(flags elf.ProgFlag, size uint64) Segment {
	return Segment{Type: elf.PT_LOAD, Flags: flags, FileSize: size, MemSize: size}
}

// Options controls the layout of a synthetic ELF image.
type Options struct {
	// Class64 produces an ELFCLASS64 image instead of ELFCLASS32.
	Class64 bool

	// BigEndian produces an ELFDATA2MSB image.
	BigEndian bool
}

// BuildELF returns a minimal executable ELF image for the AVR machine that
// contains only a file header and a program header table.
// The segment contents are not present in the image; only the headers are.
func BuildELF(t testing.TB, opts Options, segments ...Segment) []byte {
	t.Helper()

	var order binary.ByteOrder = binary.LittleEndian
	data := elf.ELFDATA2LSB
	if opts.BigEndian {
		order = binary.BigEndian
		data = elf.ELFDATA2MSB
	}

	var ident [elf.EI_NIDENT]byte
	copy(ident[:], elf.ELFMAG)
	ident[elf.EI_DATA] = byte(data)
	ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var buf bytes.Buffer
	var err error
	if opts.Class64 {
		ident[elf.EI_CLASS] = byte(elf.ELFCLASS64)
		hdr := elf.Header64{
			Ident:     ident,
			Type:      uint16(elf.ET_EXEC),
			Machine:   uint16(elf.EM_AVR),
			Version:   uint32(elf.EV_CURRENT),
			Ehsize:    64,
			Phentsize: 56,
			Phnum:     uint16(len(segments)),
		}
		if len(segments) > 0 {
			hdr.Phoff = 64
		}
		err = binary.Write(&buf, order, hdr)
		for _, s := range segments {
			if err != nil {
				break
			}
			err = binary.Write(&buf, order, elf.Prog64{
				Type:   uint32(s.Type),
				Flags:  uint32(s.Flags),
				Vaddr:  s.VAddr,
				Paddr:  s.VAddr,
				Filesz: s.FileSize,
				Memsz:  s.MemSize,
				Align:  1,
			})
		}
	} else {
		ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
		hdr := elf.Header32{
			Ident:     ident,
			Type:      uint16(elf.ET_EXEC),
			Machine:   uint16(elf.EM_AVR),
			Version:   uint32(elf.EV_CURRENT),
			Ehsize:    52,
			Phentsize: 32,
			Phnum:     uint16(len(segments)),
		}
		if len(segments) > 0 {
			hdr.Phoff = 52
		}
		err = binary.Write(&buf, order, hdr)
		for _, s := range segments {
			if err != nil {
				break
			}
			err = binary.Write(&buf, order, elf.Prog32{
				Type:   uint32(s.Type),
				Flags:  uint32(s.Flags),
				Vaddr:  uint32(s.VAddr),
				Paddr:  uint32(s.VAddr),
				Filesz: uint32(s.FileSize),
				Memsz:  uint32(s.MemSize),
				Align:  1,
			})
		}
	}
	if err != nil {
		t.Fatalf("failed to build ELF image: %v", err)
	}

	return buf.Bytes()
}

// WriteELF writes a synthetic ELF image to a file in a temporary directory
// and returns its path.
func WriteELF(t testing.TB, opts Options, segments ...Segment) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "firmware.elf")
	if err := os.WriteFile(path, BuildELF(t, opts, segments...), 0600); err != nil {
		t.Fatalf("failed to write ELF image: %v", err)
	}
	return path
}
