// Package cards defines the immutable card facts the analysis engine
// consumes and the catalog interface that supplies them.
package cards

import "strings"

// Card holds the facts about a single card the engine needs. Values are
// built once at catalog-load time and never mutated afterwards.
type Card struct {
	Name     string `json:"name"`
	TypeLine string `json:"type_line"`

	// ManaCost is the symbolic cost string, e.g. "{2}{W}{U}". Empty for
	// lands and cards with no cost.
	ManaCost string `json:"mana_cost"`

	// ManaValue is the converted mana cost, never negative.
	ManaValue int `json:"mana_value"`

	// ColorIdentity lists the card's colors drawn from W/U/B/R/G.
	ColorIdentity []string `json:"color_identity"`

	// ProducedColors lists the colors this card's mana abilities add,
	// drawn from W/U/B/R/G/C. Empty for cards that produce no mana.
	ProducedColors []string `json:"produced_colors"`

	OracleText string `json:"oracle_text,omitempty"`

	// IsLand is derived from the type line unless the catalog supplies
	// it explicitly.
	IsLand bool `json:"is_land"`
}

// IsCreature reports whether the type line names a creature.
func (c *Card) IsCreature() bool {
	return strings.Contains(strings.ToLower(c.TypeLine), "creature")
}

// IsArtifact reports whether the type line names an artifact.
func (c *Card) IsArtifact() bool {
	return strings.Contains(strings.ToLower(c.TypeLine), "artifact")
}

// IsPermanent reports whether the card stays on the battlefield once
// resolved. Instants and sorceries are the only spell types that don't.
func (c *Card) IsPermanent() bool {
	tl := strings.ToLower(c.TypeLine)
	if tl == "" {
		return false
	}
	for _, t := range []string{"creature", "artifact", "enchantment", "planeswalker", "battle", "land"} {
		if strings.Contains(tl, t) {
			return true
		}
	}
	return false
}

// ProducesMana reports whether the card declares any produced colors.
func (c *Card) ProducesMana() bool {
	return len(c.ProducedColors) > 0
}

// IsManaRock reports whether the card is a mana-producing non-land
// permanent. Creatures among these are mana dorks.
func (c *Card) IsManaRock() bool {
	return !c.IsLand && c.IsPermanent() && c.ProducesMana()
}

// Placeholder returns the zero-value stand-in substituted for a card
// the catalog doesn't know: zero mana value, non-land, produces nothing.
func Placeholder(name string) *Card {
	return &Card{Name: name}
}

// DeriveIsLand reports whether a type line describes a land. Used when
// a data source doesn't carry an explicit land flag.
func DeriveIsLand(typeLine string) bool {
	return strings.Contains(strings.ToLower(typeLine), "land")
}
