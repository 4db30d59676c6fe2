package token

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", ".token")
	storage, err := NewFileStorage(path)
	assert.NoError(t, err)

	// absent token reads as ""
	tok, err := storage.Read()
	assert.NoError(t, err)
	assert.Empty(t, tok)

	assert.NoError(t, storage.Write("T1"))
	tok, err = storage.Read()
	assert.NoError(t, err)
	assert.Equal(t, "T1", tok)

	// a new store on the same path sees the persisted token
	again, err := NewFileStorage(path)
	assert.NoError(t, err)
	tok, err = again.Read()
	assert.NoError(t, err)
	assert.Equal(t, "T1", tok)

	assert.NoError(t, storage.Clear())
	tok, err = storage.Read()
	assert.NoError(t, err)
	assert.Empty(t, tok)

	// clearing twice is fine
	assert.NoError(t, storage.Clear())
}

func TestNewFileStorage_RequiresPath(t *testing.T) {
	_, err := NewFileStorage("  ")
	assert.Error(t, err)
}
