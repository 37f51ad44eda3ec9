// Package store holds the in-memory violation list. The store exclusively
// owns its records: all mutation goes through Append, Update, and Delete, and
// List hands out copies.
package store

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/afuentes/centinela/pkg/types"
)

// newScanID generates the ID for a violation synthesized from a scan
// finding. Extracted as a variable for testing.
var newScanID = defaultNewScanID

func defaultNewScanID() string {
	return fmt.Sprintf("SCAN-%04d", rand.Intn(9000)+1000)
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Status types.ViolationStatus
	Risk   types.Risk
	Policy string
	Year   int
	Month  string
	// Query matches case-insensitively against ID and Name.
	Query string
}

// Store is a concurrency-safe in-memory violation list.
type Store struct {
	mu         sync.RWMutex
	violations []types.Violation
}

// New creates a store pre-populated with the given violations.
func New(seed ...types.Violation) *Store {
	s := &Store{}
	s.violations = append(s.violations, seed...)
	return s
}

// List returns the violations matching the filter, newest first by date.
func (s *Store) List(f Filter) []types.Violation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []types.Violation
	for _, v := range s.violations {
		if f.matches(v) {
			result = append(result, v)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// Get returns the violation with the given id.
func (s *Store) Get(id string) (types.Violation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.violations {
		if v.ID == id {
			return v, nil
		}
	}
	return types.Violation{}, fmt.Errorf("violation %q not found", id)
}

// Append adds violations to the front of the list. IDs must be unique; a
// duplicate is rejected.
func (s *Store) Append(violations ...types.Violation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(s.violations))
	for _, v := range s.violations {
		seen[v.ID] = true
	}
	for _, v := range violations {
		if seen[v.ID] {
			return fmt.Errorf("violation %q already exists", v.ID)
		}
		seen[v.ID] = true
	}

	s.violations = append(violations, s.violations...)
	return nil
}

// Update replaces the violation with matching ID in place.
func (s *Store) Update(v types.Violation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.violations {
		if s.violations[i].ID == v.ID {
			s.violations[i] = v
			return nil
		}
	}
	return fmt.Errorf("violation %q not found", v.ID)
}

// SetStatus updates only the status of the violation with the given id.
func (s *Store) SetStatus(id string, status types.ViolationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.violations {
		if s.violations[i].ID == id {
			s.violations[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("violation %q not found", id)
}

// Delete removes the violation with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.violations {
		if s.violations[i].ID == id {
			s.violations = append(s.violations[:i], s.violations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("violation %q not found", id)
}

// Len returns the number of stored violations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.violations)
}

// IngestScanResult synthesizes one violation per scan finding and prepends
// them to the list. The created violations are returned.
func (s *Store) IngestScanResult(result *types.ScanResult, now time.Time) []types.Violation {
	created := make([]types.Violation, 0, len(result.Findings))
	for _, f := range result.Findings {
		created = append(created, violationFromFinding(f, result.AppName, now))
	}

	s.mu.Lock()
	s.violations = append(created, s.violations...)
	s.mu.Unlock()

	return created
}

func violationFromFinding(f types.ScanFinding, appName string, now time.Time) types.Violation {
	policy := f.Policy
	if policy == "" {
		policy = "Política General"
	}
	risk := types.Risk(f.Status)
	if risk == "" {
		risk = types.RiskMedium
	}
	location := f.File
	if location == "" {
		location = "General"
	}
	if f.Line > 0 {
		location = fmt.Sprintf("%s:%d", location, f.Line)
	}
	snippet := f.Snippet
	if snippet == "" {
		snippet = "Snippet no disponible."
	}
	explanation := f.Analysis
	if explanation == "" {
		explanation = "Sin detalles técnicos adicionales."
	}

	return types.Violation{
		ID:     newScanID(),
		Name:   appName,
		Policy: policy,
		Status: types.StatusFlagged,
		Risk:   risk,
		Date:   now.Format("2006-01-02"),
		Year:   now.Year(),
		Month:  types.MonthName(now.Month()),
		Area:   "Escaneo Externo",
		Details: types.ViolationDetails{
			Location:    location,
			Snippet:     snippet,
			Explanation: explanation,
		},
	}
}

func (f Filter) matches(v types.Violation) bool {
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.Risk != "" && v.Risk != f.Risk {
		return false
	}
	if f.Policy != "" && v.Policy != f.Policy {
		return false
	}
	if f.Year != 0 && v.Year != f.Year {
		return false
	}
	if f.Month != "" && v.Month != f.Month {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(v.ID), q) &&
			!strings.Contains(strings.ToLower(v.Name), q) {
			return false
		}
	}
	return true
}
