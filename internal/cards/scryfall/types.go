package scryfall

import "github.com/mtg-tools/manalysis/internal/cards"

// Card matches the subset of Scryfall's card object schema the catalog
// needs.
type Card struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TypeLine      string     `json:"type_line"`
	ManaCost      string     `json:"mana_cost"`
	CMC           float64    `json:"cmc"`
	OracleText    string     `json:"oracle_text,omitempty"`
	ColorIdentity []string   `json:"color_identity"`
	ProducedMana  []string   `json:"produced_mana,omitempty"`
	CardFaces     []CardFace `json:"card_faces,omitempty"`
}

// CardFace is one face of a multi-faced card.
type CardFace struct {
	Name       string `json:"name"`
	TypeLine   string `json:"type_line"`
	ManaCost   string `json:"mana_cost"`
	OracleText string `json:"oracle_text"`
}

// BulkDataList is the /bulk-data listing response.
type BulkDataList struct {
	Data []BulkData `json:"data"`
}

// BulkData describes one downloadable bulk file.
type BulkData struct {
	Type        string `json:"type"` // "oracle_cards", "default_cards", ...
	DownloadURI string `json:"download_uri"`
	UpdatedAt   string `json:"updated_at"`
	Size        int64  `json:"size"`
}

// ToCard converts a Scryfall card object into the engine's card facts.
// Multi-faced cards use the front face's cost and type line when the
// top-level fields are empty.
func (sc *Card) ToCard() *cards.Card {
	typeLine := sc.TypeLine
	manaCost := sc.ManaCost
	oracleText := sc.OracleText
	if len(sc.CardFaces) > 0 {
		front := sc.CardFaces[0]
		if typeLine == "" {
			typeLine = front.TypeLine
		}
		if manaCost == "" {
			manaCost = front.ManaCost
		}
		if oracleText == "" {
			oracleText = front.OracleText
		}
	}

	mv := int(sc.CMC)
	if mv < 0 {
		mv = 0
	}

	return &cards.Card{
		Name:           sc.Name,
		TypeLine:       typeLine,
		ManaCost:       manaCost,
		ManaValue:      mv,
		ColorIdentity:  sc.ColorIdentity,
		ProducedColors: sc.ProducedMana,
		OracleText:     oracleText,
		IsLand:         cards.DeriveIsLand(typeLine),
	}
}
