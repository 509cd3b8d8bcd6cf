package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordList(t *testing.T) {
	list := NewWordList([]string{" Monkey ", "dragon", "#comment", "", "DRAGON", "letmein"})

	assert.Equal(t, 3, list.Len())
	assert.True(t, list.Contains("dragon"))
	assert.True(t, list.Contains("monkey"))
	assert.True(t, list.Contains("letmein"))
	assert.False(t, list.Contains("drag"))
	assert.False(t, list.Contains("zebra"))
}

func TestWordList_Nil(t *testing.T) {
	var list *WordList
	assert.Equal(t, 0, list.Len())
	assert.False(t, list.Contains("anything"))
}

func TestLoadWordList(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(fileName, []byte("sunshine\n# top\nprincess\n\nSunshine\n"), 0o600))

	list, err := LoadWordList(fileName)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	assert.True(t, list.Contains("princess"))
}

func TestLoadWordList_Missing(t *testing.T) {
	_, err := LoadWordList(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
