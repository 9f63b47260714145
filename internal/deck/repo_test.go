package deck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"digicards/pkg/database"
	"digicards/pkg/database/dbtest"
	"digicards/pkg/models"
)

func deckQuantities(t *testing.T, repo *Repo, deckID int64) map[string]int {
	t.Helper()
	cards, err := repo.Cards(context.Background(), deckID)
	require.NoError(t, err)
	out := make(map[string]int, len(cards))
	for _, c := range cards {
		out[c.CardNumber] = c.Quantity
	}
	return out
}

func TestCreateAndList(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	color := int64(2)
	image := "https://img.example/deck.png"
	id, err := repo.Create(ctx, NewDeck{Name: "Blue Flare Rush", ColorID: &color, Image: &image})
	require.NoError(t, err)
	require.EqualValues(t, 3, id, "seeded decks take ids 1 and 2")

	id2, err := repo.Create(ctx, NewDeck{Name: "Colorless"})
	require.NoError(t, err)
	require.Greater(t, id2, id)

	decks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 4)
	require.Equal(t, models.Deck{ID: 3, Name: "Blue Flare Rush", ColorID: &color, Image: &image}, decks[2])
	require.Nil(t, decks[3].ColorID)
	require.Nil(t, decks[3].Image)
}

func TestCreateUnknownColor(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))

	color := int64(42)
	_, err := repo.Create(context.Background(), NewDeck{Name: "Ghost", ColorID: &color})
	require.ErrorIs(t, err, database.ErrConflict)
}

func TestCards(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	cards, err := repo.Cards(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"BT1-001", "BT1-030"}, []string{cards[0].CardNumber, cards[1].CardNumber})
	require.Equal(t, "Agumon", cards[0].Name)
	require.Equal(t, 4, cards[0].Quantity)
	require.NotNil(t, cards[0].ImageURL)

	empty, err := repo.Cards(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, empty)

	missing, err := repo.Cards(ctx, 404)
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestAddCardOverwrites(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	require.NoError(t, repo.AddCard(ctx, 2, "BT2-050", 2))
	require.NoError(t, repo.AddCard(ctx, 2, "BT2-050", 3))
	require.Equal(t, map[string]int{"BT2-050": 3}, deckQuantities(t, repo, 2))

	require.ErrorIs(t, repo.AddCard(ctx, 2, "NOPE-1", 1), database.ErrConflict)
	require.ErrorIs(t, repo.AddCard(ctx, 404, "BT2-050", 1), database.ErrConflict)
	require.ErrorIs(t, repo.AddCard(ctx, 2, "BT2-050", 0), database.ErrConflict)
	require.ErrorIs(t, repo.AddCard(ctx, 2, "BT2-050", database.MaxQuantity+1), database.ErrConflict)
	require.Equal(t, map[string]int{"BT2-050": 3}, deckQuantities(t, repo, 2))
}

func TestUpdateCard(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	require.NoError(t, repo.UpdateCard(ctx, 1, "BT1-030", 1))
	require.Equal(t, map[string]int{"BT1-001": 4, "BT1-030": 1}, deckQuantities(t, repo, 1))

	require.NoError(t, repo.UpdateCard(ctx, 1, "BT1-030", 0))
	require.Equal(t, map[string]int{"BT1-001": 4}, deckQuantities(t, repo, 1))

	require.ErrorIs(t, repo.UpdateCard(ctx, 1, "BT1-030", 2), database.ErrNotFound)
	require.ErrorIs(t, repo.UpdateCard(ctx, 1, "BT1-030", 0), database.ErrNotFound)
	require.ErrorIs(t, repo.UpdateCard(ctx, 1, "BT1-001", -1), database.ErrConflict)
	require.ErrorIs(t, repo.UpdateCard(ctx, 1, "BT1-001", database.MaxQuantity+1), database.ErrConflict)
}

func TestRemoveCard(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	require.NoError(t, repo.RemoveCard(ctx, 1, "BT1-001"))
	require.ErrorIs(t, repo.RemoveCard(ctx, 1, "BT1-001"), database.ErrNotFound)
	require.Equal(t, map[string]int{"BT1-030": 2}, deckQuantities(t, repo, 1))
}
