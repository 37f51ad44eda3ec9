package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/afuentes/centinela/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_HasFiveUniqueViolations(t *testing.T) {
	seed := Seed()
	require.Len(t, seed, 5)

	ids := make(map[string]bool)
	for _, v := range seed {
		assert.False(t, ids[v.ID], "duplicate id %s", v.ID)
		ids[v.ID] = true
		assert.NotEmpty(t, v.Policy)
		assert.NotEmpty(t, v.Details.Explanation)
	}
}

func TestList_NoFilterReturnsAllNewestFirst(t *testing.T) {
	s := New(Seed()...)

	all := s.List(Filter{})
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Date, all[i].Date)
	}
}

func TestList_Filters(t *testing.T) {
	s := New(Seed()...)

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"by status", Filter{Status: types.StatusBanned}, []string{"APP-102"}},
		{"by risk", Filter{Risk: types.RiskHigh}, []string{"APP-882", "APP-555"}},
		{"by year", Filter{Year: 2025}, []string{"APP-993", "APP-555"}},
		{"by month", Filter{Month: "Febrero"}, []string{"APP-882", "APP-441"}},
		{"by policy", Filter{Policy: "Acoso"}, []string{"APP-993"}},
		{"by query on name", Filter{Query: "chatbot"}, []string{"APP-441"}},
		{"by query on id", Filter{Query: "app-102"}, []string{"APP-102"}},
		{"combined", Filter{Risk: types.RiskHigh, Year: 2026}, []string{"APP-882"}},
		{"no match", Filter{Query: "inexistente"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.List(tt.filter)
			ids := make([]string, len(got))
			for i, v := range got {
				ids[i] = v.ID
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestAppend_RejectsDuplicateID(t *testing.T) {
	s := New(Seed()...)

	err := s.Append(types.Violation{ID: "APP-102"})
	require.Error(t, err)
	assert.Equal(t, 5, s.Len())
}

func TestAppend_PrependsNewViolations(t *testing.T) {
	s := New(Seed()...)

	v := types.Violation{ID: "APP-777", Name: "Nueva", Date: "2026-03-01"}
	require.NoError(t, s.Append(v))

	got, err := s.Get("APP-777")
	require.NoError(t, err)
	assert.Equal(t, "Nueva", got.Name)
	assert.Equal(t, 6, s.Len())
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	s := New(Seed()...)

	v, err := s.Get("APP-441")
	require.NoError(t, err)
	v.Status = types.StatusResolved

	require.NoError(t, s.Update(v))

	got, err := s.Get("APP-441")
	require.NoError(t, err)
	assert.Equal(t, types.StatusResolved, got.Status)
	assert.Equal(t, 5, s.Len())
}

func TestUpdate_NotFound(t *testing.T) {
	s := New()
	err := s.Update(types.Violation{ID: "APP-000"})
	assert.Error(t, err)
}

func TestSetStatus(t *testing.T) {
	s := New(Seed()...)

	require.NoError(t, s.SetStatus("APP-882", types.StatusBanned))

	got, err := s.Get("APP-882")
	require.NoError(t, err)
	assert.Equal(t, types.StatusBanned, got.Status)

	assert.Error(t, s.SetStatus("APP-000", types.StatusBanned))
}

func TestDelete(t *testing.T) {
	s := New(Seed()...)

	require.NoError(t, s.Delete("APP-993"))
	assert.Equal(t, 4, s.Len())

	_, err := s.Get("APP-993")
	assert.Error(t, err)

	assert.Error(t, s.Delete("APP-993"))
}

func TestIngestScanResult(t *testing.T) {
	orig := newScanID
	counter := 0
	newScanID = func() string {
		counter++
		return fmt.Sprintf("SCAN-%04d", counter)
	}
	defer func() { newScanID = orig }()

	s := New(Seed()...)
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	result := &types.ScanResult{
		AppName: "MiApp",
		Findings: []types.ScanFinding{
			{File: "main.go", Policy: "Acoso", Status: types.FindingCritical, Line: 42, Snippet: "x", Analysis: "y"},
			{File: "", Policy: "", Status: "", Line: 0},
		},
	}

	created := s.IngestScanResult(result, now)
	require.Len(t, created, 2)
	assert.Equal(t, 7, s.Len())

	first := created[0]
	assert.Equal(t, "SCAN-0001", first.ID)
	assert.Equal(t, "MiApp", first.Name)
	assert.Equal(t, "Acoso", first.Policy)
	assert.Equal(t, types.StatusFlagged, first.Status)
	assert.Equal(t, types.RiskCritical, first.Risk)
	assert.Equal(t, "2026-08-30", first.Date)
	assert.Equal(t, 2026, first.Year)
	assert.Equal(t, "Agosto", first.Month)
	assert.Equal(t, "Escaneo Externo", first.Area)
	assert.Equal(t, "main.go:42", first.Details.Location)

	// Empty finding fields fall back to defaults.
	second := created[1]
	assert.Equal(t, "Política General", second.Policy)
	assert.Equal(t, types.RiskMedium, second.Risk)
	assert.Equal(t, "General", second.Details.Location)
	assert.Equal(t, "Snippet no disponible.", second.Details.Snippet)
	assert.Equal(t, "Sin detalles técnicos adicionales.", second.Details.Explanation)

	// Ingested violations appear first in the list.
	all := s.List(Filter{})
	assert.Equal(t, "SCAN-0001", all[0].ID)
}

func TestMonthlySeries(t *testing.T) {
	s := New(Seed()...)

	series := s.MonthlySeries()
	require.Len(t, series, 4)

	// Chronological order.
	assert.Equal(t, MonthCount{Year: 2025, Month: "Noviembre", Count: 1}, series[0])
	assert.Equal(t, MonthCount{Year: 2025, Month: "Diciembre", Count: 1}, series[1])
	assert.Equal(t, MonthCount{Year: 2026, Month: "Enero", Count: 1}, series[2])
	assert.Equal(t, MonthCount{Year: 2026, Month: "Febrero", Count: 2}, series[3])
}

func TestRiskDistribution(t *testing.T) {
	s := New(Seed()...)

	dist := s.RiskDistribution()
	require.Len(t, dist, 4)

	assert.Equal(t, RiskCount{Risk: types.RiskCritical, Count: 1}, dist[0])
	assert.Equal(t, RiskCount{Risk: types.RiskHigh, Count: 2}, dist[1])
	assert.Equal(t, RiskCount{Risk: types.RiskMedium, Count: 1}, dist[2])
	assert.Equal(t, RiskCount{Risk: types.RiskLow, Count: 1}, dist[3])
}
