// internal/catalog/store.go
package catalog

import (
	"strings"
	"sync/atomic"

	"college-comparator/internal/common/logger"
	"college-comparator/internal/models"
)

// Store holds the process-wide college catalog. The record slice is
// immutable once published; Reload swaps the whole snapshot atomically so
// in-flight readers see either the old or the new catalog in full.
type Store struct {
	current atomic.Pointer[snapshot]
}

type snapshot struct {
	colleges []models.College
}

func NewStore() *Store {
	return &Store{}
}

// Swap publishes a new catalog snapshot.
func (s *Store) Swap(colleges []models.College) {
	s.current.Store(&snapshot{colleges: colleges})
}

// Loaded reports whether a catalog has been published.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Records returns the current ordered record slice. Callers must not
// mutate it.
func (s *Store) Records() []models.College {
	snap := s.current.Load()
	if snap == nil {
		return nil
	}
	return snap.colleges
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	return len(s.Records())
}

// Prepare derives per-record state that matching relies on and drops rows
// that violate catalog integrity (missing name or city). NormalizedName is
// computed exactly once here and never recomputed.
func Prepare(raw []models.College, log logger.Logger) []models.College {
	out := make([]models.College, 0, len(raw))
	for _, c := range raw {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			log.Warn("dropping catalog row with missing name", map[string]interface{}{
				"rowId": c.ID,
			})
			continue
		}
		if strings.TrimSpace(c.City) == "" {
			log.Warn("dropping catalog row with missing city", map[string]interface{}{
				"rowId": c.ID,
				"name":  c.Name,
			})
			continue
		}

		c.NormalizedName = strings.ToLower(c.Name)
		if strings.TrimSpace(c.LocationURL) == "" {
			c.LocationURL = models.MapsSearchURL(c.Name)
		}
		out = append(out, c)
	}
	return out
}
