// Package csvstore owns the in-memory sales dataset. The CSV resource is
// fetched and parsed exactly once per process; every query afterwards runs
// against the cached rows.
package csvstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
)

// Source supplies the raw CSV bytes.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	Path string
}

func (f FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// HTTPSource fetches the dataset from a well-known URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (h HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch CSV: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// Store caches the parsed dataset. Load is guarded by a mutex so concurrent
// callers wait for the single in-flight load instead of fetching twice; a
// failed load leaves the store unloaded so a later call can retry.
type Store struct {
	source Source

	mu     sync.Mutex
	loaded bool
	rows   []map[string]string
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Load fetches and parses the dataset. Idempotent: subsequent calls after a
// successful load are no-ops.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	body, err := s.source.Open(ctx)
	if err != nil {
		return fmt.Errorf("CSV読み込みエラー: %w", err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("CSV読み込みエラー: %w", err)
	}

	s.rows = parseCSV(string(raw))
	s.loaded = true
	return nil
}

// Rows returns the cached dataset. Callers must treat the result as
// read-only; the slice is shared across all queries.
func (s *Store) Rows() []map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

func (s *Store) RowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *Store) IsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// parseCSV treats the first line as the header and drops any data row whose
// field count differs from the header's.
func parseCSV(text string) []map[string]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil
	}

	var headers []string
	for _, h := range strings.Split(lines[0], ",") {
		headers = append(headers, strings.ReplaceAll(strings.TrimSpace(h), `"`, ""))
	}

	var rows []map[string]string
	for _, line := range lines[1:] {
		values := parseLine(line)
		if len(values) != len(headers) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			row[h] = values[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// parseLine splits one CSV line on commas, honoring double-quoted fields
// with a quote-toggle state machine. Quote characters themselves are
// dropped; there is no escaped-quote handling beyond the toggle.
func parseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	result = append(result, strings.TrimSpace(current.String()))
	return result
}
