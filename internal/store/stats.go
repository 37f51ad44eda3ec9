package store

import (
	"sort"

	"github.com/afuentes/centinela/pkg/types"
)

// MonthCount is one point in the monthly violation series.
type MonthCount struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Count int    `json:"count"`
}

// RiskCount is one slice of the risk distribution.
type RiskCount struct {
	Risk  types.Risk `json:"risk"`
	Count int        `json:"count"`
}

// MonthlySeries returns violation counts grouped by year and month, in
// chronological order, for the dashboard chart.
func (s *Store) MonthlySeries() []MonthCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type key struct {
		year  int
		month string
		date  string
	}
	counts := make(map[key]int)
	for _, v := range s.violations {
		k := key{year: v.Year, month: v.Month, date: v.Date[:min(len(v.Date), 7)]}
		counts[k]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].date < keys[j].date })

	series := make([]MonthCount, len(keys))
	for i, k := range keys {
		series[i] = MonthCount{Year: k.year, Month: k.month, Count: counts[k]}
	}
	return series
}

// RiskDistribution returns violation counts per risk level, most severe
// first, for the dashboard chart.
func (s *Store) RiskDistribution() []RiskCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[types.Risk]int)
	for _, v := range s.violations {
		counts[v.Risk]++
	}

	ordered := []types.Risk{types.RiskCritical, types.RiskHigh, types.RiskMedium, types.RiskLow}
	var dist []RiskCount
	for _, r := range ordered {
		if counts[r] > 0 {
			dist = append(dist, RiskCount{Risk: r, Count: counts[r]})
			delete(counts, r)
		}
	}
	for r, c := range counts {
		dist = append(dist, RiskCount{Risk: r, Count: c})
	}
	return dist
}
