package card

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"digicards/pkg/database"
	"digicards/pkg/database/dbtest"
	"digicards/pkg/models"
)

func cardNumbers[T any](items []T, number func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, number(it))
	}
	return out
}

// addAlternatives inserts alternative printings as number/name pairs.
func addAlternatives(t *testing.T, store *database.Store, pairs ...string) {
	t.Helper()
	err := store.Do(context.Background(), "test.add_alternatives", func(ctx context.Context, conn *sqlx.Conn) error {
		for i := 0; i < len(pairs); i += 2 {
			if _, err := conn.ExecContext(ctx,
				`INSERT INTO Cards (card_number, name, alternative) VALUES (?, ?, 1)`, pairs[i], pairs[i+1]); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func summaryNumber(c models.CardSummary) string { return c.CardNumber }
func detailNumber(c models.CardDetail) string   { return c.CardNumber }

func TestListOrderingAndAlternatives(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	all, err := repo.List(ctx, ListOptions{IncludeAlternative: true})
	require.NoError(t, err)
	require.Equal(t, []string{
		"BT1-001", "BT1-001_P1", "BT1-001_P2", "BT1-0010", "BT1-0010_P1",
		"BT2-110", "BT2-050", "BT2-050_P1", "BT2-060", "BT1-020", "BT1-030", "BT2-100",
	}, cardNumbers(all, summaryNumber))

	mains, err := repo.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"BT1-001", "BT1-0010", "BT2-110", "BT2-050", "BT2-060", "BT1-020", "BT1-030", "BT2-100",
	}, cardNumbers(mains, summaryNumber))
	for _, c := range mains {
		require.False(t, c.Alternative, c.CardNumber)
	}
}

func TestListResolvesNames(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))

	cards, err := repo.List(context.Background(), ListOptions{})
	require.NoError(t, err)

	byNumber := map[string]models.CardSummary{}
	for _, c := range cards {
		byNumber[c.CardNumber] = c
	}

	agumon := byNumber["BT1-001"]
	require.Equal(t, "Red", *agumon.ColorOne)
	require.Equal(t, "Digimon", *agumon.CardType)
	require.Equal(t, "BT1", *agumon.BTAbbreviation)
	require.Nil(t, agumon.ColorTwo)

	// Null foreign keys survive the joins as null names.
	flare := byNumber["BT2-110"]
	require.Nil(t, flare.ColorOne)
	require.Nil(t, flare.BTAbbreviation)
	require.Nil(t, flare.Stage)
	require.Equal(t, "Option", *flare.CardType)
}

func TestListIDsAndFull(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	refs, err := repo.ListIDs(ctx, ListOptions{IncludeAlternative: true})
	require.NoError(t, err)
	require.Len(t, refs, 12)
	require.Equal(t, "BT1-001", refs[0].CardNumber)
	require.EqualValues(t, 1, *refs[0].ColorOneID)
	require.EqualValues(t, 1, *refs[0].BTID)
	require.False(t, refs[0].Alternative)
	require.True(t, refs[1].Alternative)

	full, err := repo.ListFull(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, full, 8)
	require.NotNil(t, full[0].DP)
	require.EqualValues(t, 2000, *full[0].DP)
	require.NotNil(t, full[0].Effect)
}

func TestListPaging(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	first, err := repo.List(ctx, ListOptions{Page: 1, PerPage: 3})
	require.NoError(t, err)
	second, err := repo.List(ctx, ListOptions{Page: 2, PerPage: 3})
	require.NoError(t, err)
	last, err := repo.List(ctx, ListOptions{Page: 3, PerPage: 3})
	require.NoError(t, err)

	require.Equal(t, []string{"BT1-001", "BT1-0010", "BT2-110"}, cardNumbers(first, summaryNumber))
	require.Equal(t, []string{"BT2-050", "BT2-060", "BT1-020"}, cardNumbers(second, summaryNumber))
	require.Equal(t, []string{"BT1-030", "BT2-100"}, cardNumbers(last, summaryNumber))

	empty, err := repo.List(ctx, ListOptions{Page: 9, PerPage: 3})
	require.NoError(t, err)
	require.Empty(t, empty)
	require.NotNil(t, empty)
}

func TestGet(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	card, err := repo.Get(ctx, "BT2-050")
	require.NoError(t, err)
	require.Equal(t, "DemiDevimon", card.Name)
	require.Equal(t, "Purple", *card.ColorOne)
	require.NotNil(t, card.SecurityEffect)

	_, err = repo.Get(ctx, "BT2-050_P1")
	require.True(t, errors.Is(err, database.ErrNotFound), "alternative fetched by number: %v", err)

	_, err = repo.Get(ctx, "ST9-999")
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestAlternatives(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	set, err := repo.Alternatives(ctx, "BT1-001")
	require.NoError(t, err)
	require.Equal(t, "BT1-001", set.Main.CardNumber)
	// BT1-0010_P1 shares the prefix but not the "BT1-001_" stem.
	require.Equal(t, []models.CardStub{
		{ID: 2, CardNumber: "BT1-001_P1"},
		{ID: 3, CardNumber: "BT1-001_P2"},
	}, set.Alternatives)

	set, err = repo.Alternatives(ctx, "BT2-060")
	require.NoError(t, err)
	require.Empty(t, set.Alternatives)

	_, err = repo.Alternatives(ctx, "BT9-404")
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestAlternativesNeedSuffix(t *testing.T) {
	store := dbtest.Seeded(t)
	repo := NewRepo(store)
	ctx := context.Background()
	addAlternatives(t, store, "BT2-060_", "Devimon", "BT2-060_P1", "Devimon")

	set, err := repo.Alternatives(ctx, "BT2-060")
	require.NoError(t, err)
	require.Equal(t, []string{"BT2-060_P1"}, cardNumbers(set.Alternatives, func(s models.CardStub) string { return s.CardNumber }))

	groups, err := repo.SearchWithAlternatives(ctx, "devimon")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "BT2-060", groups[1].CardNumber)
	require.Equal(t, []string{"BT2-060_P1"},
		cardNumbers(groups[1].Alternatives, func(a models.AlternativeArt) string { return a.CardNumber }))
}

func TestSearchWithAlternativesOrdersByName(t *testing.T) {
	store := dbtest.Seeded(t)
	repo := NewRepo(store)
	addAlternatives(t, store, "BT1-030_P1", "Greymon X", "BT1-030_P2", "greymon")

	groups, err := repo.SearchWithAlternatives(context.Background(), "greymon")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, []string{"BT1-030_P2", "BT1-030_P1"},
		cardNumbers(groups[0].Alternatives, func(a models.AlternativeArt) string { return a.CardNumber }))
}

func TestSearch(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	res, err := repo.Search(ctx, "devi")
	require.NoError(t, err)
	require.Equal(t, []string{"BT2-050", "BT2-060"}, cardNumbers(res, detailNumber))

	res, err = repo.Search(ctx, "GABU")
	require.NoError(t, err)
	require.Equal(t, []string{"BT1-020"}, cardNumbers(res, detailNumber))

	// Wildcards in the input are literal.
	res, err = repo.Search(ctx, "%")
	require.NoError(t, err)
	require.Empty(t, res)
	res, err = repo.Search(ctx, "a_u")
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestSearchWithAlternatives(t *testing.T) {
	repo := NewRepo(dbtest.Seeded(t))
	ctx := context.Background()

	groups, err := repo.SearchWithAlternatives(ctx, "DemiDevi")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, "BT2-050", groups[0].CardNumber)
	require.Equal(t, []models.AlternativeArt{{
		ID: 7, CardNumber: "BT2-050_P1", Name: "DemiDevimon", ImageURL: groups[0].Alternatives[0].ImageURL,
	}}, groups[0].Alternatives)

	groups, err = repo.SearchWithAlternatives(ctx, "agu")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "BT1-001", groups[0].CardNumber)
	require.Equal(t, []string{"BT1-001_P1", "BT1-001_P2"},
		cardNumbers(groups[0].Alternatives, func(a models.AlternativeArt) string { return a.CardNumber }))
	require.Equal(t, "BT1-0010", groups[1].CardNumber)
	require.Equal(t, []string{"BT1-0010_P1"},
		cardNumbers(groups[1].Alternatives, func(a models.AlternativeArt) string { return a.CardNumber }))

	groups, err = repo.SearchWithAlternatives(ctx, "greymon")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].Alternatives)
	require.Empty(t, groups[0].Alternatives)

	groups, err = repo.SearchWithAlternatives(ctx, "zz")
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestGroupAlternatives(t *testing.T) {
	id := func(v int64) *int64 { return &v }
	str := func(v string) *string { return &v }
	main := func(number string) models.CardDetail {
		return models.CardDetail{CardSummary: models.CardSummary{CardNumber: number, Name: number}}
	}

	rows := []groupRow{
		{CardDetail: main("B"), AltID: id(20), AltCardNumber: str("B_2"), AltName: str("b")},
		{CardDetail: main("A")},
		{CardDetail: main("B"), AltID: id(10), AltCardNumber: str("B_1"), AltName: str("b")},
		{CardDetail: main("C"), AltID: id(30), AltCardNumber: str("C_1")},
	}

	groups := groupAlternatives(rows)
	require.Len(t, groups, 3)
	require.Equal(t, []string{"B", "A", "C"}, []string{groups[0].CardNumber, groups[1].CardNumber, groups[2].CardNumber})
	require.Equal(t, []models.AlternativeArt{
		{ID: 20, CardNumber: "B_2", Name: "b"},
		{ID: 10, CardNumber: "B_1", Name: "b"},
	}, groups[0].Alternatives)
	require.Empty(t, groups[1].Alternatives)
	require.NotNil(t, groups[1].Alternatives)
	require.Equal(t, "C_1", groups[2].Alternatives[0].CardNumber)

	require.Empty(t, groupAlternatives(nil))
}

func TestEscapeLike(t *testing.T) {
	tests := []struct{ in, want string }{
		{"BT1-001", "BT1-001"},
		{"BT1_001", "BT1!_001"},
		{"50%", "50!%"},
		{"wow!", "wow!!"},
	}
	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
