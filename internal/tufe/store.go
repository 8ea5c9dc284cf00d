package tufe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ustaoglu/kiracap/internal/model"
)

// Store persists TÜFE records on disk, one JSON file per year. Writes go
// through a temp file and rename so a concurrent reader never observes a
// partial record.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the persisted record for a year. Expiry is the caller's
// concern; Load returns whatever was last written.
func (s *Store) Load(year int) (model.TufeRecord, bool) {
	data, err := os.ReadFile(s.path(year))
	if err != nil {
		return model.TufeRecord{}, false
	}
	var rec model.TufeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.TufeRecord{}, false
	}
	return rec, true
}

// Save writes a record, superseding the previous one for that year. An
// automatic record never replaces a manual one; only a new manual write
// clears a manual override.
func (s *Store) Save(rec model.TufeRecord) error {
	if existing, ok := s.Load(rec.Year); ok && existing.Manual() && !rec.Manual() {
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	path := s.path(rec.Year)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit record: %w", err)
	}
	return nil
}

func (s *Store) path(year int) string {
	return filepath.Join(s.dir, fmt.Sprintf("tufe-%d.json", year))
}
