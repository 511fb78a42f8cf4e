package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Data Engineer", firstLine("\n  Data Engineer\nMore text"))
	assert.Equal(t, "Untitled role", firstLine("  \n \n"))
}

func TestResolveAPIKey_FlagWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	assert.Equal(t, "flag-key", resolveAPIKey("flag-key"))
	assert.Equal(t, "env-key", resolveAPIKey(""))
}

func TestResolveDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")

	assert.Equal(t, "postgres://flag", resolveDatabaseURL("postgres://flag"))
	assert.Equal(t, "postgres://env", resolveDatabaseURL(""))
}

func TestNewOptionalClient_NoKey(t *testing.T) {
	client, err := newOptionalClient(context.Background(), "")

	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestLoadResumeDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("resume b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("resume a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("skip"), 0644))

	items, err := loadResumeDir(dir)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "a.txt", items[0].Filename)
	assert.Equal(t, "resume a", items[0].Text)
	assert.Equal(t, "b.txt", items[1].Filename)
}

func TestLoadResumeDir_Empty(t *testing.T) {
	items, err := loadResumeDir(t.TempDir())

	assert.NoError(t, err)
	assert.Empty(t, items)
}
