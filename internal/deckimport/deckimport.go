// Package deckimport parses decklists from plain text and Arena export
// formats.
package deckimport

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Result is a parsed decklist with any lines that couldn't be parsed.
type Result struct {
	// Cards maps card name to quantity for the main deck.
	Cards map[string]int

	// Sideboard maps card name to quantity for the sideboard, when the
	// input marks one.
	Sideboard map[string]int

	// Warnings describes skipped or suspicious lines, one per line.
	Warnings []string
}

// TotalCards returns the quantity-weighted main deck size.
func (r *Result) TotalCards() int {
	total := 0
	for _, qty := range r.Cards {
		total += qty
	}
	return total
}

// cardLine matches "4 Lightning Bolt", "4x Lightning Bolt" and the
// Arena export form "4 Lightning Bolt (M21) 159".
var cardLine = regexp.MustCompile(`^(\d+)[xX]?\s+(.+?)(?:\s+\([A-Z0-9]{2,6}\)(?:\s+[\dA-Za-z-]+)?)?$`)

// Parse reads a decklist from r. Lines it understands:
//
//	4 Lightning Bolt
//	4x Lightning Bolt
//	4 Lightning Bolt (M21) 159
//	Lightning Bolt            (quantity 1)
//
// "Deck", "Mainboard" and "Sideboard" section headers are honored;
// blank lines and comments starting with # or // are skipped. Lines
// that still don't parse produce warnings rather than errors.
func Parse(r io.Reader) (*Result, error) {
	result := &Result{
		Cards:     make(map[string]int),
		Sideboard: make(map[string]int),
	}

	target := result.Cards
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		switch strings.ToLower(line) {
		case "deck", "mainboard", "main", "companion", "commander":
			target = result.Cards
			continue
		case "sideboard", "side":
			target = result.Sideboard
			continue
		}

		name, qty, ok := parseCardLine(line)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: could not parse %q", lineNo, line))
			continue
		}
		if qty <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: ignoring non-positive quantity for %q", lineNo, name))
			continue
		}
		target[name] += qty
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read decklist: %w", err)
	}

	return result, nil
}

// ParseString parses a decklist held in a string.
func ParseString(s string) (*Result, error) {
	return Parse(strings.NewReader(s))
}

func parseCardLine(line string) (name string, qty int, ok bool) {
	if m := cardLine.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return "", 0, false
		}
		return strings.TrimSpace(m[2]), n, true
	}

	// A bare card name counts as a single copy, as in Commander lists.
	if strings.IndexFunc(line, isLetter) >= 0 {
		return line, 1, true
	}
	return "", 0, false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
