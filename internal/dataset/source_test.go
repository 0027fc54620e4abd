package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileSourceLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, tiersFile, `[{"Role Name":"Manager","Description":"mgr"}]`)
	writeFixture(t, dir, levelOneFile, `[{"Lvl":4,"Building a Team (Skill)":"s","Building a Team (Confidence)":"c"}]`)
	writeFixture(t, dir, levelTwoFile, `[{"Lvl":4," Building a Team":"Themes or Focus Areas:\nHiring: closing"}]`)

	raw, err := NewFileSource(dir).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, raw.Tiers, 1)
	assert.Len(t, raw.LevelOne, 1)
	assert.Len(t, raw.LevelTwo, 1)
}

func TestFileSourceMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, tiersFile, `[]`)
	writeFixture(t, dir, levelOneFile, `[]`)
	// level_two_questions.json intentionally absent.

	_, err := NewFileSource(dir).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), levelTwoFile)
}

func TestFileSourceMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, tiersFile, `[]`)
	writeFixture(t, dir, levelOneFile, `{not json`)
	writeFixture(t, dir, levelTwoFile, `[]`)

	_, err := NewFileSource(dir).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), levelOneFile)
}
