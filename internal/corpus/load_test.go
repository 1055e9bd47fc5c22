package corpus

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemma_summary.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Records, 2)
}

func TestLoadMissingFileIsLoadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "nope.csv")
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	c, err := Load(srv.URL + "/lemma_summary.csv")
	require.NoError(t, err)
	assert.Len(t, c.Records, 2)
}

func TestLoadHTTPErrorStatusIsLoadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Load(srv.URL + "/missing.csv")
	var le *LoadError
	require.ErrorAs(t, err, &le)
}

func TestLoadParseFailureIsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("lemma,total_count,first_story\n\"кіт\n"), 0644))

	_, err := Load(path)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}
