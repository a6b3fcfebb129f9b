package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mtg-tools/manalysis/internal/cards"
)

// SaveCards upserts a batch of catalog cards in a single transaction.
func (s *Service) SaveCards(ctx context.Context, batch []*cards.Card) error {
	if len(batch) == 0 {
		return nil
	}

	return s.WithTransaction(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO cards (
				name, type_line, mana_cost, mana_value, color_identity,
				produced_colors, oracle_text, is_land, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET
				type_line = excluded.type_line,
				mana_cost = excluded.mana_cost,
				mana_value = excluded.mana_value,
				color_identity = excluded.color_identity,
				produced_colors = excluded.produced_colors,
				oracle_text = excluded.oracle_text,
				is_land = excluded.is_land,
				updated_at = CURRENT_TIMESTAMP
		`
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare card upsert: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, card := range batch {
			if card.Name == "" {
				continue
			}
			_, err := stmt.ExecContext(ctx,
				card.Name, card.TypeLine, card.ManaCost, card.ManaValue,
				joinColors(card.ColorIdentity), joinColors(card.ProducedColors),
				card.OracleText, card.IsLand,
			)
			if err != nil {
				return fmt.Errorf("failed to save card %q: %w", card.Name, err)
			}
		}
		return nil
	})
}

// GetCard retrieves a single card by exact name. Returns nil when the
// card is not in the catalog.
func (s *Service) GetCard(ctx context.Context, name string) (*cards.Card, error) {
	query := `
		SELECT name, type_line, mana_cost, mana_value, color_identity,
		       produced_colors, oracle_text, is_land
		FROM cards
		WHERE name = ?
	`

	card, err := scanCard(s.db.Conn().QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %q: %w", name, err)
	}
	return card, nil
}

// LoadSnapshot reads the whole catalog into an immutable in-memory
// snapshot for analysis.
func (s *Service) LoadSnapshot(ctx context.Context) (*cards.Snapshot, error) {
	query := `
		SELECT name, type_line, mana_cost, mana_value, color_identity,
		       produced_colors, oracle_text, is_land
		FROM cards
	`

	rows, err := s.db.Conn().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load card catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var all []*cards.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		all = append(all, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}

	return cards.NewSnapshot(all), nil
}

// CountCards returns the number of cards in the catalog.
func (s *Service) CountCards(ctx context.Context) (int, error) {
	var count int
	err := s.db.Conn().QueryRowContext(ctx, "SELECT COUNT(*) FROM cards").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*cards.Card, error) {
	var card cards.Card
	var identity, produced string
	err := row.Scan(
		&card.Name, &card.TypeLine, &card.ManaCost, &card.ManaValue,
		&identity, &produced, &card.OracleText, &card.IsLand,
	)
	if err != nil {
		return nil, err
	}
	card.ColorIdentity = splitColors(identity)
	card.ProducedColors = splitColors(produced)
	return &card, nil
}

// joinColors flattens a color list to a comma-separated column value.
func joinColors(colors []string) string {
	return strings.Join(colors, ",")
}

func splitColors(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
