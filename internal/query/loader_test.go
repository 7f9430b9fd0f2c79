package query

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	got, err := Load(strings.NewReader("# primers\nACGT\n\n  TTAG \r\n#GG\nGATTACA\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "TTAG", "GATTACA"}, got)
}

func TestLoadRejectsInnerWhitespace(t *testing.T) {
	_, err := Load(strings.NewReader("ACGT\nAC GT\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, os.WriteFile(fn, []byte("AA\nCC\n"), 0o644))
	got, err := LoadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "CC"}, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadFileErrorCarriesPath(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(fn, []byte("A A\n"), 0o644))
	_, err := LoadFile(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fn+":1")
}
