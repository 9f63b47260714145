package card

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"digicards/pkg/database"
	"digicards/pkg/models"
)

// ListOptions filters and pages the card listings. PerPage 0 returns
// every row.
type ListOptions struct {
	IncludeAlternative bool
	Page               int
	PerPage            int
}

func (o ListOptions) paged() bool {
	return o.PerPage > 0
}

func (o ListOptions) args() []any {
	if !o.paged() {
		return nil
	}
	page := o.Page
	if page < 1 {
		page = 1
	}
	return []any{o.PerPage, (page - 1) * o.PerPage}
}

type Repo struct {
	store *database.Store
}

func NewRepo(store *database.Store) *Repo {
	return &Repo{store: store}
}

// List returns the name-resolved view of every card.
func (r *Repo) List(ctx context.Context, opts ListOptions) ([]models.CardSummary, error) {
	res := []models.CardSummary{}
	err := r.selectAll(ctx, "card.list", &res, listQuery(summaryColumns, true, opts), opts.args()...)
	return res, err
}

// ListIDs returns cards with their foreign keys left as ids.
func (r *Repo) ListIDs(ctx context.Context, opts ListOptions) ([]models.CardRef, error) {
	res := []models.CardRef{}
	err := r.selectAll(ctx, "card.list_ids", &res, listQuery(refColumns, false, opts), opts.args()...)
	return res, err
}

func (r *Repo) ListFull(ctx context.Context, opts ListOptions) ([]models.CardDetail, error) {
	res := []models.CardDetail{}
	err := r.selectAll(ctx, "card.list_full", &res, listQuery(detailColumns, true, opts), opts.args()...)
	return res, err
}

const getQuery = `SELECT ` + detailColumns + ` FROM Cards c` + dimensionJoins + `
	WHERE c.card_number = ? AND c.alternative = 0`

// Get returns the main card with the given number. Alternatives are
// never returned by their own number.
func (r *Repo) Get(ctx context.Context, cardNumber string) (models.CardDetail, error) {
	var card models.CardDetail
	err := r.store.Do(ctx, "card.get", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &card, r.store.Dialect().Rebind(getQuery), cardNumber)
	})
	return card, err
}

const alternativesQuery = `SELECT id, card_number FROM Cards
	WHERE card_number LIKE ? ESCAPE '!' AND alternative = 1
	ORDER BY card_number`

// Alternatives returns the main card and stubs of every printing
// numbered <cardNumber>_<suffix>, where suffix is not empty.
func (r *Repo) Alternatives(ctx context.Context, cardNumber string) (models.AlternativeSet, error) {
	set := models.AlternativeSet{Alternatives: []models.CardStub{}}
	dialect := r.store.Dialect()
	err := r.store.Do(ctx, "card.alternatives", func(ctx context.Context, conn *sqlx.Conn) error {
		if err := conn.GetContext(ctx, &set.Main, dialect.Rebind(getQuery), cardNumber); err != nil {
			return err
		}
		return conn.SelectContext(ctx, &set.Alternatives, dialect.Rebind(alternativesQuery), escapeLike(cardNumber)+"!__%")
	})
	return set, err
}

const searchQuery = `SELECT ` + detailColumns + ` FROM Cards c` + dimensionJoins + `
	WHERE c.alternative = 0 AND LOWER(c.name) LIKE ? ESCAPE '!'` + nameOrder

// Search matches main cards whose name contains namePart, ignoring case.
func (r *Repo) Search(ctx context.Context, namePart string) ([]models.CardDetail, error) {
	res := []models.CardDetail{}
	err := r.selectAll(ctx, "card.search", &res, searchQuery, containsPattern(namePart))
	return res, err
}

// groupRow is one (main, alternative) pair of the fan-out join. The
// alternative columns are null when the main card has none.
type groupRow struct {
	models.CardDetail
	AltID         *int64  `db:"alt_id"`
	AltCardNumber *string `db:"alt_card_number"`
	AltName       *string `db:"alt_name"`
	AltImageURL   *string `db:"alt_image_url"`
}

func searchWithAlternativesQuery(d database.Dialect) string {
	return `SELECT ` + detailColumns + `,
		alt.id AS alt_id, alt.card_number AS alt_card_number,
		alt.name AS alt_name, alt.image_url AS alt_image_url
	FROM Cards c` + dimensionJoins + `
	LEFT JOIN Cards alt
		ON alt.alternative = 1
		AND LENGTH(alt.card_number) > LENGTH(c.card_number) + 1
		AND SUBSTR(alt.card_number, 1, LENGTH(c.card_number) + 1) = ` + d.Concat("c.card_number", "'_'") + `
	WHERE c.alternative = 0 AND LOWER(c.name) LIKE ? ESCAPE '!'
	ORDER BY LOWER(c.name), c.card_number, LOWER(alt.name), alt.card_number`
}

// SearchWithAlternatives is Search with each main card's alternatives
// folded into it.
func (r *Repo) SearchWithAlternatives(ctx context.Context, namePart string) ([]models.CardGroup, error) {
	var rows []groupRow
	err := r.selectAll(ctx, "card.search_with_alternatives", &rows,
		searchWithAlternativesQuery(r.store.Dialect()), containsPattern(namePart))
	if err != nil {
		return nil, err
	}
	return groupAlternatives(rows), nil
}

// groupAlternatives folds the fan-out rows into one group per main card,
// keeping the first-seen order of mains and the row order of alternatives.
func groupAlternatives(rows []groupRow) []models.CardGroup {
	groups := []models.CardGroup{}
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.CardNumber]
		if !ok {
			i = len(groups)
			index[row.CardNumber] = i
			groups = append(groups, models.CardGroup{
				CardDetail:   row.CardDetail,
				Alternatives: []models.AlternativeArt{},
			})
		}
		if row.AltID == nil {
			continue
		}
		alt := models.AlternativeArt{ID: *row.AltID, ImageURL: row.AltImageURL}
		if row.AltCardNumber != nil {
			alt.CardNumber = *row.AltCardNumber
		}
		if row.AltName != nil {
			alt.Name = *row.AltName
		}
		groups[i].Alternatives = append(groups[i].Alternatives, alt)
	}
	return groups
}

func (r *Repo) selectAll(ctx context.Context, op string, dest any, query string, args ...any) error {
	query = r.store.Dialect().Rebind(query)
	return r.store.Do(ctx, op, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, dest, query, args...)
	})
}

func containsPattern(part string) string {
	return "%" + escapeLike(strings.ToLower(part)) + "%"
}
