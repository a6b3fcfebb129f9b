package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Deck is a saved decklist.
type Deck struct {
	ID        string
	Name      string
	Format    string
	Cards     map[string]int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalCards returns the quantity-weighted deck size.
func (d *Deck) TotalCards() int {
	total := 0
	for _, qty := range d.Cards {
		total += qty
	}
	return total
}

// SaveDeck inserts or updates a deck and its card list atomically. A
// deck without an ID gets a fresh one, returned via the Deck.
func (s *Service) SaveDeck(ctx context.Context, deck *Deck) error {
	if deck == nil {
		return fmt.Errorf("deck cannot be nil")
	}
	if deck.Name == "" {
		return fmt.Errorf("deck name cannot be empty")
	}
	for name, qty := range deck.Cards {
		if qty <= 0 {
			return fmt.Errorf("card %q has non-positive quantity %d", name, qty)
		}
	}
	if deck.ID == "" {
		deck.ID = uuid.NewString()
	}

	return s.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO decks (id, name, format, created_at, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				format = excluded.format,
				updated_at = CURRENT_TIMESTAMP
		`, deck.ID, deck.Name, deck.Format)
		if err != nil {
			return fmt.Errorf("failed to save deck %q: %w", deck.Name, err)
		}

		// Replace the card list wholesale; diffing buys nothing at deck
		// sizes.
		if _, err := tx.ExecContext(ctx, "DELETE FROM deck_cards WHERE deck_id = ?", deck.ID); err != nil {
			return fmt.Errorf("failed to clear deck cards: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO deck_cards (deck_id, card_name, quantity) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare deck card insert: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for name, qty := range deck.Cards {
			if _, err := stmt.ExecContext(ctx, deck.ID, name, qty); err != nil {
				return fmt.Errorf("failed to save deck card %q: %w", name, err)
			}
		}
		return nil
	})
}

// GetDeck retrieves a deck and its card list by ID. Returns nil when no
// deck has that ID.
func (s *Service) GetDeck(ctx context.Context, id string) (*Deck, error) {
	var deck Deck
	err := s.db.Conn().QueryRowContext(ctx, `
		SELECT id, name, format, created_at, updated_at
		FROM decks
		WHERE id = ?
	`, id).Scan(&deck.ID, &deck.Name, &deck.Format, &deck.CreatedAt, &deck.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deck %q: %w", id, err)
	}

	rows, err := s.db.Conn().QueryContext(ctx,
		"SELECT card_name, quantity FROM deck_cards WHERE deck_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get deck cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	deck.Cards = make(map[string]int)
	for rows.Next() {
		var name string
		var qty int
		if err := rows.Scan(&name, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan deck card: %w", err)
		}
		deck.Cards[name] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deck cards: %w", err)
	}

	return &deck, nil
}

// ListDecks retrieves all saved decks, newest first, without their card
// lists.
func (s *Service) ListDecks(ctx context.Context) ([]*Deck, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, name, format, created_at, updated_at
		FROM decks
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var decks []*Deck
	for rows.Next() {
		var deck Deck
		err := rows.Scan(&deck.ID, &deck.Name, &deck.Format, &deck.CreatedAt, &deck.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, &deck)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating decks: %w", err)
	}

	return decks, nil
}

// DeleteDeck removes a deck and its card list. Deleting a missing deck
// is an error so typos surface.
func (s *Service) DeleteDeck(ctx context.Context, id string) error {
	return s.WithTransaction(ctx, func(tx *sql.Tx) error {
		// Explicit child delete so the result doesn't hinge on the
		// foreign_keys pragma being honored.
		if _, err := tx.ExecContext(ctx, "DELETE FROM deck_cards WHERE deck_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete deck cards: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete deck %q: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check delete result: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("no deck with id %q", id)
		}
		return nil
	})
}
