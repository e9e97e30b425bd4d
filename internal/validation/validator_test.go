package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByte(t *testing.T) {
	tests := []struct {
		input   string
		want    byte
		wantErr bool
	}{
		{"0x63", 0x63, false},
		{"99", 99, false},
		{" 255 ", 255, false},
		{"0", 0, false},
		{"256", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"xyz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseByte(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMatrixRows(t *testing.T) {
	rows, err := ParseMatrixRows("0x57,0xAB,0xD5,0xEA,0x75,0xBA,0x5D,0xAE")
	require.NoError(t, err)
	assert.Equal(t, [8]byte{0x57, 0xAB, 0xD5, 0xEA, 0x75, 0xBA, 0x5D, 0xAE}, rows)

	_, err = ParseMatrixRows("1,2,3")
	require.Error(t, err, "fewer than 8 rows")

	_, err = ParseMatrixRows("1,2,3,4,5,6,7,8,9")
	require.Error(t, err, "more than 8 rows")

	_, err = ParseMatrixRows("1,2,3,4,5,6,7,300")
	require.Error(t, err, "row out of byte range")
}

func TestParseTableHex(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 256; i++ {
		b.WriteString("63")
	}
	table, err := ParseTableHex(b.String())
	require.NoError(t, err)
	assert.Len(t, table, 256)
	assert.Equal(t, byte(0x63), table[0])

	// Formatting noise is tolerated.
	spaced := "0x63, 0x7c,\n" + b.String()[4:]
	table, err = ParseTableHex(spaced)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7C), table[1])

	_, err = ParseTableHex("")
	require.Error(t, err)

	_, err = ParseTableHex("63g1")
	require.Error(t, err)

	_, err = ParseTableHex("6363")
	require.Error(t, err, "wrong length")
}

func TestValidateTableValues(t *testing.T) {
	good := make([]int, 256)
	for i := range good {
		good[i] = i
	}
	table, err := ValidateTableValues(good)
	require.NoError(t, err)
	assert.Equal(t, byte(200), table[200])

	_, err = ValidateTableValues(good[:255])
	require.Error(t, err)

	bad := make([]int, 256)
	bad[17] = 300
	_, err = ValidateTableValues(bad)
	require.Error(t, err)

	bad[17] = -5
	_, err = ValidateTableValues(bad)
	require.Error(t, err)
}

func TestValidatePolynomial(t *testing.T) {
	p, err := ValidatePolynomial(0x11B)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x11B), p)

	_, err = ValidatePolynomial(0x1B)
	require.Error(t, err)

	_, err = ValidatePolynomial(0x211)
	require.Error(t, err)
}

func TestValidatePresetName(t *testing.T) {
	assert.NoError(t, ValidatePresetName("research-A_1"))
	assert.Error(t, ValidatePresetName(""))
	assert.Error(t, ValidatePresetName("has space"))
	assert.Error(t, ValidatePresetName(strings.Repeat("x", 65)))
}
