package registry

import (
	"fmt"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
)

// Direction moves an entry one step towards the front or the back.
type Direction string

// Directions.
const (
	Up   Direction = "up"
	Down Direction = "down"
)

// The helpers below edit an owned menu copy. Nothing is stored until the
// copy is committed with ReplaceMenu or CreateMenu.

// AddItem appends a new enabled NOTE item to m.
func AddItem(m *models.Menu) *models.MenuItem {
	m.Items = append(m.Items, models.MenuItem{
		Name:    "New Item",
		Enabled: true,
		Type:    models.ItemNote,
	})
	return &m.Items[len(m.Items)-1]
}

// UpdateItem replaces the item at index i. The new-tab flag only applies to
// NOTE items and is cleared for others.
func UpdateItem(m *models.Menu, i int, it models.MenuItem) error {
	if err := checkIndex(m, i); err != nil {
		return err
	}
	if it.Type != models.ItemNote {
		it.NewTab = false
	}
	m.Items[i] = it
	return nil
}

// RemoveItem deletes the item at index i.
func RemoveItem(m *models.Menu, i int) error {
	if err := checkIndex(m, i); err != nil {
		return err
	}
	m.Items = append(m.Items[:i], m.Items[i+1:]...)
	return nil
}

// MoveItem swaps the item at index i with its neighbour in direction d.
// Moving past either end is a no-op.
func MoveItem(m *models.Menu, i int, d Direction) error {
	if err := checkIndex(m, i); err != nil {
		return err
	}
	j, err := neighbour(i, d)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(m.Items) {
		return nil
	}
	m.Items[i], m.Items[j] = m.Items[j], m.Items[i]
	return nil
}

func checkIndex(m *models.Menu, i int) error {
	if i < 0 || i >= len(m.Items) {
		return fmt.Errorf("registry: menu %q item %d: %w", m.ID, i, apperr.ErrNotFound)
	}
	return nil
}

func neighbour(i int, d Direction) (int, error) {
	switch d {
	case Up:
		return i - 1, nil
	case Down:
		return i + 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", apperr.ErrValidation, d)
	}
}
