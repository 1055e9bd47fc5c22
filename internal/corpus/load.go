package corpus

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// LoadError reports a failure to fetch the summary CSV, as opposed to a
// failure to parse it. Both are terminal for the session; the caller
// reports them and waits for a fresh load.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load reads a lemma summary from a local path or an http(s) URL.
// One fetch, no retry, no caching.
func Load(source string) (*Corpus, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return loadHTTP(source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer f.Close()

	return Parse(f)
}

func loadHTTP(url string) (*Corpus, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, &LoadError{Source: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Source: url, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	return Parse(resp.Body)
}
