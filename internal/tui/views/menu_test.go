package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuModel(t *testing.T) {
	items := []MenuItem{
		{Name: "violaciones", Description: "Explorar violaciones"},
		{Name: "auditar", Description: "Ejecutar auditoría"},
	}
	m := NewMenuModel(items)

	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 2, len(m.Items()))
}

func TestMenuModelNavigateDown(t *testing.T) {
	items := []MenuItem{
		{Name: "violaciones", Description: "Explorar violaciones"},
		{Name: "auditar", Description: "Ejecutar auditoría"},
	}
	m := NewMenuModel(items)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(MenuModel)
	assert.Equal(t, 1, m.Cursor())

	// Should not go past the end.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(MenuModel)
	assert.Equal(t, 1, m.Cursor())
}

func TestMenuModelNavigateUp(t *testing.T) {
	items := []MenuItem{
		{Name: "violaciones", Description: "Explorar violaciones"},
		{Name: "auditar", Description: "Ejecutar auditoría"},
	}
	m := NewMenuModel(items)

	// Should not go below 0.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = updated.(MenuModel)
	assert.Equal(t, 0, m.Cursor())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(MenuModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = updated.(MenuModel)
	assert.Equal(t, 0, m.Cursor())
}

func TestMenuModelSelected(t *testing.T) {
	items := []MenuItem{
		{Name: "violaciones", Description: "Explorar violaciones"},
		{Name: "auditar", Description: "Ejecutar auditoría"},
	}
	m := NewMenuModel(items)

	selected := m.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "violaciones", selected.Name)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(MenuModel)
	selected = m.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "auditar", selected.Name)
}

func TestMenuModelSelectedEmpty(t *testing.T) {
	m := NewMenuModel([]MenuItem{})
	assert.Nil(t, m.Selected())
}

func TestMenuModelView(t *testing.T) {
	items := []MenuItem{
		{Name: "violaciones", Description: "Explorar violaciones"},
	}
	m := NewMenuModel(items)
	view := m.View()

	assert.Contains(t, view, "Centinela")
	assert.Contains(t, view, "violaciones")
	assert.Contains(t, view, "Explorar violaciones")
	assert.Contains(t, view, "navegar")
}

func TestMenuModelQuit(t *testing.T) {
	m := NewMenuModel([]MenuItem{{Name: "violaciones", Description: "test"}})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}
