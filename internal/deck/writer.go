// Package deck builds Anki .apkg flashcard decks from lemma rows.
package deck

import (
	"archive/zip"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Fields of the lemma note type, in order.
var noteFields = []string{"Lemma", "Counts", "FirstStory"}

// Note is one flashcard: the lemma on the front, its statistics on the
// back.
type Note struct {
	Lemma      string
	Counts     string
	FirstStory string
}

// Write builds a .apkg file at outputPath containing one note per
// lemma, under a single deck with the given name.
func Write(outputPath, deckName string, notes []Note) error {
	if len(notes) == 0 {
		return fmt.Errorf("no notes to export")
	}

	tempDir, err := os.MkdirTemp("", "kazky-deck-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := writeCollection(dbPath, deckName, notes); err != nil {
		return err
	}

	// Anki expects a media manifest even when the deck ships none.
	mediaPath := filepath.Join(tempDir, "media")
	if err := os.WriteFile(mediaPath, []byte("{}"), 0644); err != nil {
		return fmt.Errorf("writing media manifest: %w", err)
	}

	return writeZip(outputPath, tempDir)
}

// writeCollection creates the SQLite collection database.
func writeCollection(dbPath, deckName string, notes []Note) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(collectionSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	now := time.Now()
	modelID := now.UnixMilli()
	deckID := modelID + 1

	models, err := modelsJSON(modelID, deckID)
	if err != nil {
		return err
	}
	decks, err := decksJSON(deckID, deckName, now)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')
	`, now.Unix(), now.UnixMilli(), now.UnixMilli(), confJSON(deckID), models, decks, dconfJSON())
	if err != nil {
		return fmt.Errorf("writing collection row: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	noteStmt, err := tx.Prepare(`
		INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
		VALUES (?, ?, ?, ?, -1, '', ?, ?, ?, 0, '')
	`)
	if err != nil {
		return fmt.Errorf("preparing note insert: %w", err)
	}
	defer noteStmt.Close()

	cardStmt, err := tx.Prepare(`
		INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps, lapses, left, odue, odid, flags, data)
		VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 2500, 0, 0, 0, 0, 0, 0, '')
	`)
	if err != nil {
		return fmt.Errorf("preparing card insert: %w", err)
	}
	defer cardStmt.Close()

	noteID := deckID + 1
	cardID := noteID + int64(len(notes))
	for i, n := range notes {
		flds := strings.Join([]string{n.Lemma, n.Counts, n.FirstStory}, "\x1f")
		if _, err := noteStmt.Exec(noteID, guid(n.Lemma), modelID, now.Unix(), flds, n.Lemma, checksum(n.Lemma)); err != nil {
			return fmt.Errorf("inserting note %q: %w", n.Lemma, err)
		}
		if _, err := cardStmt.Exec(cardID, noteID, deckID, now.Unix(), i+1); err != nil {
			return fmt.Errorf("inserting card %q: %w", n.Lemma, err)
		}
		noteID++
		cardID++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing notes: %w", err)
	}
	return nil
}

// checksum is the Anki note checksum: first 8 hex digits of the sort
// field hash as an integer.
func checksum(sfld string) int64 {
	h := sha256.New()
	h.Write([]byte(sfld))
	hashStr := fmt.Sprintf("%x", h.Sum(nil))
	csum, _ := strconv.ParseInt(hashStr[:8], 16, 64)
	return csum
}

// guid derives a stable note GUID from the lemma.
func guid(lemma string) string {
	h := sha256.Sum256([]byte("kazky:" + lemma))
	return fmt.Sprintf("%x", h[:5])
}

func modelsJSON(modelID, deckID int64) (string, error) {
	type field struct {
		Name   string `json:"name"`
		Ord    int    `json:"ord"`
		Sticky bool   `json:"sticky"`
		RTL    bool   `json:"rtl"`
		Font   string `json:"font"`
		Size   int    `json:"size"`
	}
	type template struct {
		Name string `json:"name"`
		Ord  int    `json:"ord"`
		Qfmt string `json:"qfmt"`
		Afmt string `json:"afmt"`
	}

	flds := make([]field, len(noteFields))
	for i, name := range noteFields {
		flds[i] = field{Name: name, Ord: i, Font: "Arial", Size: 20}
	}

	model := map[string]interface{}{
		"id":    modelID,
		"name":  "Kazky Lemma",
		"type":  0,
		"did":   deckID,
		"sortf": 0,
		"flds":  flds,
		"tmpls": []template{{
			Name: "Lemma Card",
			Ord:  0,
			Qfmt: "{{Lemma}}",
			Afmt: "{{FrontSide}}<hr id=\"answer\">{{Counts}}<br>{{FirstStory}}",
		}},
		"css": ".card { font-family: arial; font-size: 24px; text-align: center; }",
	}

	out, err := json.Marshal(map[string]interface{}{
		strconv.FormatInt(modelID, 10): model,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling models: %w", err)
	}
	return string(out), nil
}

func decksJSON(deckID int64, name string, now time.Time) (string, error) {
	deck := map[string]interface{}{
		"id":   deckID,
		"name": name,
		"desc": "Ukrainian lemma frequency deck exported by kazky",
		"mod":  now.Unix(),
		"usn":  -1,
		"conf": 1,
	}

	out, err := json.Marshal(map[string]interface{}{
		strconv.FormatInt(deckID, 10): deck,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling decks: %w", err)
	}
	return string(out), nil
}

func confJSON(deckID int64) string {
	return fmt.Sprintf(`{"curDeck":%d,"activeDecks":[%d],"nextPos":1}`, deckID, deckID)
}

func dconfJSON() string {
	return `{"1":{"id":1,"name":"Default"}}`
}

// writeZip packs the collection directory into the .apkg file.
func writeZip(outputPath, dir string) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)
	defer zipWriter.Close()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		writer, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
	if err != nil {
		return fmt.Errorf("creating zip: %w", err)
	}

	return nil
}

const collectionSchema = `
CREATE TABLE col (
	id    integer PRIMARY KEY,
	crt   integer NOT NULL,
	mod   integer NOT NULL,
	scm   integer NOT NULL,
	ver   integer NOT NULL,
	dty   integer NOT NULL,
	usn   integer NOT NULL,
	ls    integer NOT NULL,
	conf  text NOT NULL,
	models text NOT NULL,
	decks text NOT NULL,
	dconf text NOT NULL,
	tags  text NOT NULL
);
CREATE TABLE notes (
	id    integer PRIMARY KEY,
	guid  text NOT NULL,
	mid   integer NOT NULL,
	mod   integer NOT NULL,
	usn   integer NOT NULL,
	tags  text NOT NULL,
	flds  text NOT NULL,
	sfld  text NOT NULL,
	csum  integer NOT NULL,
	flags integer NOT NULL,
	data  text NOT NULL
);
CREATE TABLE cards (
	id     integer PRIMARY KEY,
	nid    integer NOT NULL,
	did    integer NOT NULL,
	ord    integer NOT NULL,
	mod    integer NOT NULL,
	usn    integer NOT NULL,
	type   integer NOT NULL,
	queue  integer NOT NULL,
	due    integer NOT NULL,
	ivl    integer NOT NULL,
	factor integer NOT NULL,
	reps   integer NOT NULL,
	lapses integer NOT NULL,
	left   integer NOT NULL,
	odue   integer NOT NULL,
	odid   integer NOT NULL,
	flags  integer NOT NULL,
	data   text NOT NULL
);
CREATE TABLE revlog (
	id      integer PRIMARY KEY,
	cid     integer NOT NULL,
	usn     integer NOT NULL,
	ease    integer NOT NULL,
	ivl     integer NOT NULL,
	lastIvl integer NOT NULL,
	factor  integer NOT NULL,
	time    integer NOT NULL,
	type    integer NOT NULL
);
CREATE TABLE graves (
	usn  integer NOT NULL,
	oid  integer NOT NULL,
	type integer NOT NULL
);
CREATE INDEX ix_notes_csum ON notes (csum);
CREATE INDEX ix_cards_nid ON cards (nid);
`
