package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtg-tools/manalysis/internal/cards"
)

func TestSaveAndGetCard(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	err := svc.SaveCards(ctx, []*cards.Card{
		{
			Name:          "Llanowar Elves",
			TypeLine:      "Creature — Elf Druid",
			ManaCost:      "{G}",
			ManaValue:     1,
			ColorIdentity: []string{"G"},
			ProducedColors: []string{
				"G",
			},
			OracleText: "{T}: Add {G}.",
		},
		{
			Name:           "Forest",
			TypeLine:       "Basic Land — Forest",
			ProducedColors: []string{"G"},
			IsLand:         true,
		},
	})
	require.NoError(t, err)

	card, err := svc.GetCard(ctx, "Llanowar Elves")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "{G}", card.ManaCost)
	assert.Equal(t, 1, card.ManaValue)
	assert.Equal(t, []string{"G"}, card.ColorIdentity)
	assert.Equal(t, []string{"G"}, card.ProducedColors)
	assert.False(t, card.IsLand)

	land, err := svc.GetCard(ctx, "Forest")
	require.NoError(t, err)
	require.NotNil(t, land)
	assert.True(t, land.IsLand)
	assert.Empty(t, land.ManaCost)
}

func TestGetCardMissing(t *testing.T) {
	svc := setupTestService(t)

	card, err := svc.GetCard(context.Background(), "Nonexistent Card")
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestSaveCardsUpsert(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	original := &cards.Card{Name: "Sol Ring", TypeLine: "Artifact", ManaCost: "{1}", ManaValue: 1}
	require.NoError(t, svc.SaveCards(ctx, []*cards.Card{original}))

	updated := &cards.Card{
		Name: "Sol Ring", TypeLine: "Artifact", ManaCost: "{1}", ManaValue: 1,
		ProducedColors: []string{"C"}, OracleText: "{T}: Add {C}{C}.",
	}
	require.NoError(t, svc.SaveCards(ctx, []*cards.Card{updated}))

	count, err := svc.CountCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	card, err := svc.GetCard(ctx, "Sol Ring")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, []string{"C"}, card.ProducedColors)
}

func TestSaveCardsSkipsUnnamed(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	err := svc.SaveCards(ctx, []*cards.Card{
		{Name: ""},
		{Name: "Mountain", TypeLine: "Basic Land — Mountain", IsLand: true},
	})
	require.NoError(t, err)

	count, err := svc.CountCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoadSnapshot(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	err := svc.SaveCards(ctx, []*cards.Card{
		{Name: "Island", TypeLine: "Basic Land — Island", IsLand: true, ProducedColors: []string{"U"}},
		{Name: "Divination", TypeLine: "Sorcery", ManaCost: "{2}{U}", ManaValue: 3, ColorIdentity: []string{"U"}},
	})
	require.NoError(t, err)

	snapshot, err := svc.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Len())

	card, ok := snapshot.Get("Divination")
	require.True(t, ok)
	assert.Equal(t, 3, card.ManaValue)
}

func TestLoadSnapshotEmpty(t *testing.T) {
	svc := setupTestService(t)

	snapshot, err := svc.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Len())
}
