// Package grid provides the mutable tile board that level generation paints
// into, plus the tile alphabet shared with the on-disk .map format.
package grid

// Tile is a single board cell, stored as its on-disk ASCII byte.
type Tile byte

// Tile alphabet. Orb tiles are the digits '1' through '8'; the digit encodes
// the orb kind and is opaque to the generator.
const (
	Empty    Tile = '.'
	Wall     Tile = '#'
	Platform Tile = '='
	Hazard   Tile = '^'
	Spawn    Tile = 'S'
	Goal     Tile = 'G'
	Star     Tile = '*'

	OrbMin Tile = '1'
	OrbMax Tile = '8'
)

// Solid reports whether the tile blocks movement and supports standing.
func (t Tile) Solid() bool {
	return t == Wall || t == Platform
}

// IsHazard reports whether the tile kills on contact.
func (t Tile) IsHazard() bool {
	return t == Hazard
}

// Passable reports whether a player can occupy the tile. Hazards are not
// passable even though they are not solid: touching one triggers failure,
// so no valid route may run through them.
func (t Tile) Passable() bool {
	return !t.Solid() && !t.IsHazard()
}

// IsOrb reports whether the tile is an upgrade/downgrade orb.
func (t Tile) IsOrb() bool {
	return t >= OrbMin && t <= OrbMax
}

// Known reports whether the tile belongs to the level alphabet.
func (t Tile) Known() bool {
	switch t {
	case Empty, Wall, Platform, Hazard, Spawn, Goal, Star:
		return true
	}
	return t.IsOrb()
}
