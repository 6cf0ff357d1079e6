// Package catalog reads the externally authored catalog of event results
// and loads the referenced result files.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ohler55/ojg/oj"

	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/processing/identity"
)

var ErrEntryNotFound = errors.New("catalog entry not found")

// Catalog is the ordered list of stored event results. File references in
// the entries are resolved relative to the catalog file.
type Catalog struct {
	Entries []model.IndexEntry
	baseDir string
}

// Load reads the catalog file (a JSON array of index entries).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var entries []model.IndexEntry
	if err := oj.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return &Catalog{Entries: entries, baseDir: filepath.Dir(path)}, nil
}

// Entry returns the catalog entry with the given id.
func (c *Catalog) Entry(id string) (*model.IndexEntry, error) {
	for i := range c.Entries {
		if c.Entries[i].ID == id {
			return &c.Entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

func (c *Catalog) resolvePath(entry *model.IndexEntry) string {
	if filepath.IsAbs(entry.File) {
		return entry.File
	}
	return filepath.Join(c.baseDir, entry.File)
}

// LoadRoster reads a roster file (JSON object, normalized driver name to
// team name). An empty path yields an empty roster.
func LoadRoster(path string) (identity.Roster, error) {
	if path == "" {
		return identity.Roster{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	ret := identity.Roster{}
	if err := oj.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}
	return ret, nil
}
