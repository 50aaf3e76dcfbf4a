package wargame

import "github.com/KirkDiggler/rpg-toolkit/core"

// UnitStats is the characteristics line of a datasheet
type UnitStats struct {
	WS uint8 // weapon skill
	BS uint8 // ballistic skill
	S  uint8
	T  uint8
	W  uint8
	A  uint8
	Ld uint8
	Sv uint8
}

// Model is a single miniature: a stat line and the weapon it carries
type Model struct {
	ID     string
	Name   string
	Stats  UnitStats
	Weapon Weapon
}

var _ core.Entity = (*Model)(nil)

// GetID returns the model's ID
func (m *Model) GetID() string {
	return m.ID
}

// GetType returns the entity type for rpg-toolkit
func (m *Model) GetType() string {
	return "model"
}
