package deck

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestWriteEmptyDeck(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.apkg"), "Казки", nil)
	assert.Error(t, err)
}

func TestWriteDeck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.apkg")
	notes := []Note{
		{Lemma: "кіт", Counts: "5", FirstStory: "1_intro"},
		{Lemma: "пес", Counts: "3", FirstStory: "2_market"},
	}
	require.NoError(t, Write(out, "Казки", notes))

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer r.Close()

	names := make(map[string]bool)
	for _, f := range r.File {
		names[f.Name] = true
	}
	assert.True(t, names["collection.anki2"])
	assert.True(t, names["media"])

	// Extract the collection and check its contents.
	dbPath := filepath.Join(t.TempDir(), "collection.anki2")
	for _, f := range r.File {
		if f.Name != "collection.anki2" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(dbPath, data, 0644))
	}

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var noteCount, cardCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&noteCount))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cardCount))
	assert.Equal(t, 2, noteCount)
	assert.Equal(t, 2, cardCount)

	var flds, sfld string
	require.NoError(t, db.QueryRow("SELECT flds, sfld FROM notes ORDER BY id LIMIT 1").Scan(&flds, &sfld))
	assert.Equal(t, "кіт", sfld)
	assert.Equal(t, []string{"кіт", "5", "1_intro"}, strings.Split(flds, "\x1f"))

	var decks string
	require.NoError(t, db.QueryRow("SELECT decks FROM col").Scan(&decks))
	assert.Contains(t, decks, "Казки")
}

func TestGUIDStable(t *testing.T) {
	assert.Equal(t, guid("кіт"), guid("кіт"))
	assert.NotEqual(t, guid("кіт"), guid("пес"))
}
