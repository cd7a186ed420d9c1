// Package loader reads 6502 program images from disk.
package loader

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// LoadFile reads the program image at path. Raw images are mapped read-only
// and copied out; with hex set the file is parsed by ParseHex.
func LoadFile(path string, hex bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open program")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	// Empty files cannot be mapped.
	if info.Size() == 0 {
		return []byte{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "map %s", path)
	}
	defer m.Unmap()

	if hex {
		program, err := ParseHex(m)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
		return program, nil
	}

	program := make([]byte, len(m))
	copy(program, m)

	return program, nil
}

// ParseHex decodes a text listing of hex bytes. Bytes are separated by
// whitespace or commas and may carry a "0x" (any case) or "$" prefix. Everything after a
// '#' or ';' up to the end of the line is a comment.
func ParseHex(data []byte) ([]byte, error) {
	var program []byte

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexAny(text, "#;"); i >= 0 {
			text = text[:i]
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, field := range fields {
			tok := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(field), "0x"), "$")

			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, errors.Errorf("line %d: bad byte %q", line, field)
			}
			program = append(program, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}

	return program, nil
}
