package validation

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// ParseByte accepts a decimal or 0x-prefixed hex byte value like the affine
// constant or a field generator.
func ParseByte(input string) (byte, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("value cannot be empty")
	}

	v, err := strconv.ParseUint(input, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q: %w", input, err)
	}
	if v > 255 {
		return 0, fmt.Errorf("value %d is outside [0,255]", v)
	}
	return byte(v), nil
}

// ParseMatrixRows parses exactly eight comma-separated row values, each a
// decimal or 0x-prefixed hex byte, into the packed row representation of an
// 8x8 binary matrix.
func ParseMatrixRows(spec string) ([8]byte, error) {
	var rows [8]byte

	parts := strings.Split(spec, ",")
	if len(parts) != 8 {
		return rows, fmt.Errorf("matrix must have exactly 8 rows, got %d", len(parts))
	}

	for i, part := range parts {
		row, err := ParseByte(part)
		if err != nil {
			return rows, fmt.Errorf("matrix row %d: %w", i, err)
		}
		rows[i] = row
	}
	return rows, nil
}

// ParseTableHex decodes a 256-entry substitution table from hex text.
// Whitespace, commas, and 0x prefixes are tolerated so tables can be pasted
// from papers or source listings.
func ParseTableHex(input string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", "\n", "", "\r", "", "\t", "", ",", "", "0x", "", "0X", "").
		Replace(strings.TrimSpace(input))

	if cleaned == "" {
		return nil, fmt.Errorf("table cannot be empty")
	}
	if !hexPattern.MatchString(cleaned) {
		return nil, fmt.Errorf("table contains non-hex characters")
	}
	if len(cleaned) != 512 {
		return nil, fmt.Errorf("table must encode exactly 256 bytes, got %d hex digits", len(cleaned))
	}

	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to decode table: %w", err)
	}
	return data, nil
}

// ValidateTableValues checks a table supplied as integers (from JSON, say)
// for exact length and byte range before it is handed to the engine.
func ValidateTableValues(values []int) ([]byte, error) {
	if len(values) != 256 {
		return nil, fmt.Errorf("table must contain exactly 256 entries, got %d", len(values))
	}

	out := make([]byte, 256)
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("table entry %d is %d, outside [0,255]", i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// ValidatePolynomial checks that a reduction polynomial is degree 8.
func ValidatePolynomial(poly uint64) (uint16, error) {
	if poly < 0x100 || poly > 0x1FF {
		return 0, fmt.Errorf("polynomial %#x must be of degree 8 (0x100..0x1FF)", poly)
	}
	return uint16(poly), nil
}

// ValidatePresetName restricts preset names to something shell and
// filesystem friendly.
func ValidatePresetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("preset name too long (max 64 characters)")
	}
	for _, ch := range name {
		if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '-' || ch == '_') {
			return fmt.Errorf("preset name contains invalid character %q", ch)
		}
	}
	return nil
}
