package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjun-lei/family-health-archive/internal/common"
)

func TestSaveStoresUnderGeneratedName(t *testing.T) {
	st, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	got, err := st.Save(strings.NewReader("fake pdf bytes"), "体检报告.pdf")
	require.NoError(t, err)

	assert.Equal(t, "体检报告.pdf", got.Filename)
	assert.Equal(t, "pdf", got.Ext)
	assert.Equal(t, int64(len("fake pdf bytes")), got.Size)
	assert.NotEmpty(t, got.HashHex)
	assert.Equal(t, st.Dir(), filepath.Dir(got.Path))
	// generated name, not the original
	assert.NotEqual(t, "体检报告.pdf", filepath.Base(got.Path))

	data, err := os.ReadFile(got.Path)
	require.NoError(t, err)
	assert.Equal(t, "fake pdf bytes", string(data))
}

func TestSaveCollisionFree(t *testing.T) {
	st, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	a, err := st.Save(strings.NewReader("same name"), "report.jpg")
	require.NoError(t, err)
	b, err := st.Save(strings.NewReader("same name"), "report.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
	for _, f := range []StoredFile{a, b} {
		_, err := os.Stat(f.Path)
		assert.NoError(t, err)
	}
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	st, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = st.Save(strings.NewReader("x"), "notes.docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFile)
}

func TestRemoveRefusesOutsideUploadDir(t *testing.T) {
	st, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "x.pdf")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	require.Error(t, st.Remove(outside))
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestRemoveStoredFile(t *testing.T) {
	st, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	f, err := st.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, st.Remove(f.Path))
	_, statErr := os.Stat(f.Path)
	assert.True(t, os.IsNotExist(statErr))
}
