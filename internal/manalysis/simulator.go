package manalysis

import (
	"math/rand/v2"
	"slices"

	"github.com/mtg-tools/manalysis/internal/cards"
	"github.com/mtg-tools/manalysis/internal/mana"
)

const (
	openingHandSize = 7

	// DefaultTurnHorizon is how many turns a casting trial plays out.
	DefaultTurnHorizon = 10
)

// castEvent records one successful cast inside a trial.
type castEvent struct {
	card string
	turn int
}

// trialResult is the output of one randomized playout. All state behind
// it is trial-local and discarded after aggregation.
type trialResult struct {
	casts        []castEvent
	openingHand  []string
	openingLands int
	drawn        map[string]bool // names that reached the hand at any point
}

// simulator runs independent randomized playouts of one deck. The deck
// template and card facts are read-only; every trial clones its own
// game state, so simulators are safe to share across workers as long as
// each worker brings its own rand source.
type simulator struct {
	deck  []string
	cards map[string]*cards.Card
	turns int
}

func (a *Analyzer) newSimulator(turns int) *simulator {
	if turns <= 0 {
		turns = DefaultTurnHorizon
	}
	return &simulator{
		deck:  a.decklist.Expand(),
		cards: a.cards,
		turns: turns,
	}
}

// run plays a single trial: shuffle, deal seven, then for each turn
// draw, rebuild the mana pool from permanents, drop at most one land,
// and cast whatever the pool can pay for, in draw order.
//
// Paid costs are deducted from the turn's pool before the next hand
// card is evaluated, so two spells never spend the same mana.
func (s *simulator) run(rng *rand.Rand) trialResult {
	library := slices.Clone(s.deck)
	rng.Shuffle(len(library), func(i, j int) {
		library[i], library[j] = library[j], library[i]
	})

	handSize := min(openingHandSize, len(library))
	hand := slices.Clone(library[:handSize])
	library = library[handSize:]

	res := trialResult{
		openingHand: slices.Clone(hand),
		drawn:       make(map[string]bool, len(hand)),
	}
	for _, name := range hand {
		res.drawn[name] = true
		if s.cards[name].IsLand {
			res.openingLands++
		}
	}

	var landsInPlay, rocksInPlay []string

	for turn := 1; turn <= s.turns; turn++ {
		if len(library) > 0 {
			hand = append(hand, library[0])
			res.drawn[library[0]] = true
			library = library[1:]
		}

		// Unused mana does not carry over; the pool is rebuilt from
		// permanents every turn.
		pool := mana.NewPool()
		for _, name := range landsInPlay {
			addProduction(pool, s.cards[name])
		}
		for _, name := range rocksInPlay {
			addProduction(pool, s.cards[name])
		}

		// At most one land drop per turn, first land in draw order.
		// A land played this turn produces nothing until the next
		// turn's pool rebuild.
		for i, name := range hand {
			if !s.cards[name].IsLand {
				continue
			}
			landsInPlay = append(landsInPlay, name)
			hand = slices.Delete(hand, i, i+1)
			break
		}

		for i := 0; i < len(hand); {
			card := s.cards[hand[i]]
			if card.IsLand {
				i++
				continue
			}
			cost, err := mana.Parse(card.ManaCost)
			if err != nil || !cost.Pay(pool) {
				// Malformed costs are conservatively uncastable.
				i++
				continue
			}
			res.casts = append(res.casts, castEvent{card: hand[i], turn: turn})
			if card.IsManaRock() {
				rocksInPlay = append(rocksInPlay, hand[i])
			}
			hand = slices.Delete(hand, i, i+1)
		}
	}

	return res
}

// addProduction adds one mana of each color the permanent produces.
func addProduction(pool mana.Pool, card *cards.Card) {
	for _, color := range card.ProducedColors {
		pool.Add(mana.Color(color), 1)
	}
}
