package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "lemma_summary.csv", cfg.CorpusPath)
	assert.Equal(t, 0, cfg.RowCap)
	assert.Equal(t, "name", cfg.StorySort)
	assert.True(t, cfg.CleanNames)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
corpus_path: data/kazky.csv
row_cap: 500
story_sort: words
clean_names: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlContent), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "data/kazky.csv", cfg.CorpusPath)
	assert.Equal(t, 500, cfg.RowCap)
	assert.Equal(t, "words", cfg.StorySort)
	assert.False(t, cfg.CleanNames)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("corpus_path: [broken"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := &Config{CorpusPath: "x.csv", RowCap: 42, StorySort: "new", CleanNames: true}
	require.NoError(t, Save(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
