// Package mana provides symbolic mana cost parsing and payment resolution.
package mana

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a single mana color symbol.
type Color string

// The colors a permanent can produce. Colorless ("C") is a producible
// color in its own right, distinct from generic costs.
const (
	White     Color = "W"
	Blue      Color = "U"
	Black     Color = "B"
	Red       Color = "R"
	Green     Color = "G"
	Colorless Color = "C"
)

// Colors lists all producible colors in canonical WUBRGC order.
var Colors = []Color{White, Blue, Black, Red, Green, Colorless}

// Pool tracks available mana by color.
type Pool map[Color]int

// NewPool returns an empty mana pool.
func NewPool() Pool {
	return make(Pool)
}

// Add adds n mana of the given color to the pool.
func (p Pool) Add(c Color, n int) {
	p[c] += n
}

// Total returns the total mana in the pool across all colors.
func (p Pool) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Clone returns an independent copy of the pool.
func (p Pool) Clone() Pool {
	out := make(Pool, len(p))
	for c, n := range p {
		out[c] = n
	}
	return out
}

// Cost is a parsed symbolic mana cost such as "{2}{W}{U}".
type Cost struct {
	// Generic is the total generic portion, payable with mana of any color.
	Generic int

	// Pips counts the required non-generic symbols by exact token.
	// Hybrid and Phyrexian tokens (e.g. "W/U", "G/P") are kept opaque:
	// no pool ever holds such a symbol, so costs using them are judged
	// unpayable rather than being expanded into payment alternatives.
	Pips map[string]int
}

// Parse tokenizes a brace-delimited mana cost string. Numeric tokens
// accumulate into the generic portion; every other token becomes a
// required pip. An empty string parses to a free cost.
func Parse(cost string) (Cost, error) {
	c := Cost{Pips: make(map[string]int)}
	if cost == "" {
		return c, nil
	}

	rest := cost
	for len(rest) > 0 {
		if rest[0] != '{' {
			return Cost{}, fmt.Errorf("malformed mana cost %q: expected '{'", cost)
		}
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return Cost{}, fmt.Errorf("malformed mana cost %q: unterminated symbol", cost)
		}
		token := rest[1:end]
		if token == "" {
			return Cost{}, fmt.Errorf("malformed mana cost %q: empty symbol", cost)
		}
		if n, err := strconv.Atoi(token); err == nil {
			if n < 0 {
				return Cost{}, fmt.Errorf("malformed mana cost %q: negative symbol", cost)
			}
			c.Generic += n
		} else {
			c.Pips[token]++
		}
		rest = rest[end+1:]
	}

	return c, nil
}

// ManaValue returns the total converted cost of the parsed symbols.
// Variable symbols such as X count zero.
func (c Cost) ManaValue() int {
	mv := c.Generic
	for pip, n := range c.Pips {
		if pip == "X" || pip == "Y" || pip == "Z" {
			continue
		}
		mv += n
	}
	return mv
}

// Payable reports whether the pool can cover the cost: every required
// pip must be available in that exact color, and the mana left over
// after reserving pips must cover the generic portion.
func (c Cost) Payable(pool Pool) bool {
	reserved := 0
	for pip, need := range c.Pips {
		if pool[Color(pip)] < need {
			return false
		}
		reserved += need
	}
	return pool.Total()-reserved >= c.Generic
}

// Pay deducts the cost from the pool, spending pips first and then
// covering the generic portion from the remaining colors in canonical
// order. It reports false and leaves the pool untouched when the cost
// is not payable.
func (c Cost) Pay(pool Pool) bool {
	if !c.Payable(pool) {
		return false
	}
	for pip, need := range c.Pips {
		pool[Color(pip)] -= need
	}
	generic := c.Generic
	for _, color := range Colors {
		if generic == 0 {
			break
		}
		spend := min(pool[color], generic)
		pool[color] -= spend
		generic -= spend
	}
	// Drain any non-canonical colors if generic remains.
	for color := range pool {
		if generic == 0 {
			break
		}
		spend := min(pool[color], generic)
		pool[color] -= spend
		generic -= spend
	}
	return true
}

// CanCast reports whether the symbolic cost string is payable from the
// pool. Missing or empty costs are always payable; malformed costs are
// conservatively unpayable.
func CanCast(cost string, pool Pool) bool {
	c, err := Parse(cost)
	if err != nil {
		return false
	}
	return c.Payable(pool)
}
