package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

func TestResolveMatrixCatalog(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m, desc, err := resolveMatrix("k44", "")
	require.NoError(t, err)
	assert.Equal(t, sbox.MatrixK44, m)
	assert.Contains(t, desc, "K44")

	_, _, err = resolveMatrix("nope", "")
	require.Error(t, err)
}

func TestResolveMatrixRows(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Explicit rows matching a catalog entry are recognized by value.
	m, desc, err := resolveMatrix("", "0xF1,0xE3,0xC7,0x8F,0x1F,0x3E,0x7C,0xF8")
	require.NoError(t, err)
	assert.Equal(t, sbox.MatrixAES, m)
	assert.Contains(t, desc, "AES")

	_, desc, err = resolveMatrix("", "1,2,3,4,5,6,7,8")
	require.NoError(t, err)
	assert.Equal(t, "custom matrix", desc)

	_, _, err = resolveMatrix("", "1,2,3")
	require.Error(t, err)
}

func TestBuildField(t *testing.T) {
	f, err := buildField("3", 0x11B)
	require.NoError(t, err)
	assert.Equal(t, byte(3), f.Generator())

	_, err = buildField("2", 0x11B)
	require.Error(t, err, "generator 2 is not primitive under 0x11B")

	_, err = buildField("bogus", 0x11B)
	require.Error(t, err)

	_, err = buildField("3", 0x1B)
	require.Error(t, err)
}

func TestLoadTable(t *testing.T) {
	hexTable := strings.Repeat("00", 256)

	// Inline hex.
	s, err := loadTable(hexTable)
	require.NoError(t, err)
	assert.Equal(t, byte(0), s[255])

	// From file.
	path := filepath.Join(t.TempDir(), "table.hex")
	require.NoError(t, os.WriteFile(path, []byte(hexTable), 0600))
	_, err = loadTable(path)
	require.NoError(t, err)

	_, err = loadTable("zz")
	require.Error(t, err)
}
