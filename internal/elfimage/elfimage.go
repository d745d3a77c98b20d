package elfimage

import (
	"bytes"
	"debug/elf"
	"encoding/hex"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/nao1215/avrsize/internal/model"
)

// ReadFile reads the whole file at path.
// Any failure is returned as an *IOError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided ELF path is intentional
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return data, nil
}

// Parse decodes an ELF image and returns its PT_LOAD segments in program
// header table order. Other program header types (PT_DYNAMIC, PT_GNU_STACK,
// PT_PHDR, ...) describe regions that are already covered by a PT_LOAD entry
// or occupy no storage, so they are skipped.
//
// A valid image without a program header table yields zero segments and no error.
func Parse(data []byte) ([]model.Segment, error) {
	if len(data) == 0 {
		return nil, &ParseError{Err: errEmptyImage}
	}

	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	segments := make([]model.Segment, 0, len(f.Progs))
	for i, p := range f.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		segments = append(segments, model.Segment{
			Index:    i,
			Type:     p.Type.String(),
			Flags:    model.SegmentFlags(p.Flags),
			FileSize: p.Filesz,
			MemSize:  p.Memsz,
			VAddr:    p.Vaddr,
			PAddr:    p.Paddr,
		})
	}

	return segments, nil
}

// Digest returns the hex encoded SHA3-256 of an image.
// It identifies the exact binary a report was produced for.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
