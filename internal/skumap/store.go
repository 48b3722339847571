// Package skumap persists the supplier-SKU to listing-ID identity map
// between runs. The format is one "<sku> <listingID>" pair per line; the
// whole file is rewritten on save.
package skumap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type Store struct {
	path    string
	entries map[string]string
}

// Load reads the map file. Lines with fewer than two fields are skipped,
// not treated as errors.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SKU map: %w", err)
	}
	defer file.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		entries[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read SKU map: %w", err)
	}

	return &Store{path: path, entries: entries}, nil
}

func (s *Store) Get(sku string) (string, bool) {
	id, ok := s.entries[sku]
	return id, ok
}

// Put records a freshly created listing. Entries are never removed.
func (s *Store) Put(sku, listingID string) {
	s.entries[sku] = listingID
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Save rewrites the map file in full.
func (s *Store) Save() error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to write SKU map: %w", err)
	}

	for sku, id := range s.entries {
		if _, err := fmt.Fprintf(file, "%s %s\n", sku, id); err != nil {
			file.Close()
			return fmt.Errorf("failed to write SKU map entry: %w", err)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close SKU map: %w", err)
	}
	return nil
}
