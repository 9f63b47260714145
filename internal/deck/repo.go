package deck

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"digicards/pkg/database"
	"digicards/pkg/models"
)

type NewDeck struct {
	Name    string
	ColorID *int64
	Image   *string
}

type Repo struct {
	store *database.Store
}

func NewRepo(store *database.Store) *Repo {
	return &Repo{store: store}
}

// Create stores the deck and returns its generated id.
func (r *Repo) Create(ctx context.Context, d NewDeck) (int64, error) {
	q := r.store.Dialect().Rebind(`INSERT INTO Decks (name, color_id, image) VALUES (?, ?, ?)`)

	var id int64
	err := r.store.Do(ctx, "deck.create", func(ctx context.Context, conn *sqlx.Conn) error {
		var err error
		id, err = r.store.Dialect().InsertID(ctx, conn, q, d.Name, d.ColorID, d.Image)
		return err
	})
	return id, err
}

func (r *Repo) List(ctx context.Context) ([]models.Deck, error) {
	res := []models.Deck{}
	err := r.store.Do(ctx, "deck.list", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &res, `SELECT id, name, color_id, image FROM Decks ORDER BY id`)
	})
	return res, err
}

// Cards lists a deck's cards by card number. A missing deck and an
// empty one both give an empty slice.
func (r *Repo) Cards(ctx context.Context, deckID int64) ([]models.DeckCard, error) {
	q := r.store.Dialect().Rebind(`SELECT dc.card_number, c.name, dc.quantity, c.image_url
		FROM DeckCards dc
		JOIN Cards c ON c.card_number = dc.card_number
		WHERE dc.deck_id = ?
		ORDER BY dc.card_number`)

	res := []models.DeckCard{}
	err := r.store.Do(ctx, "deck.cards", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &res, q, deckID)
	})
	return res, err
}

// AddCard puts quantity copies of the card in the deck, replacing any
// quantity already there.
func (r *Repo) AddCard(ctx context.Context, deckID int64, cardNumber string, quantity int) error {
	if quantity <= 0 || quantity > database.MaxQuantity {
		return fmt.Errorf("deck.add_card: quantity %d: %w", quantity, database.ErrConflict)
	}
	d := r.store.Dialect()
	q := d.Rebind(`INSERT INTO DeckCards (deck_id, card_number, quantity) VALUES (?, ?, ?) ` +
		d.Upsert("DeckCards", []string{"deck_id", "card_number"}, "quantity", false))

	return r.store.Do(ctx, "deck.add_card", func(ctx context.Context, conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, q, deckID, cardNumber, quantity)
		return err
	})
}

// UpdateCard overwrites the quantity, or removes the card when quantity
// is 0.
func (r *Repo) UpdateCard(ctx context.Context, deckID int64, cardNumber string, quantity int) error {
	switch {
	case quantity < 0, quantity > database.MaxQuantity:
		return fmt.Errorf("deck.update_card: quantity %d: %w", quantity, database.ErrConflict)
	case quantity == 0:
		return r.RemoveCard(ctx, deckID, cardNumber)
	}

	q := r.store.Dialect().Rebind(`UPDATE DeckCards SET quantity = ? WHERE deck_id = ? AND card_number = ?`)
	return r.store.Do(ctx, "deck.update_card", func(ctx context.Context, conn *sqlx.Conn) error {
		return database.CheckAffected(conn.ExecContext(ctx, q, quantity, deckID, cardNumber))
	})
}

func (r *Repo) RemoveCard(ctx context.Context, deckID int64, cardNumber string) error {
	q := r.store.Dialect().Rebind(`DELETE FROM DeckCards WHERE deck_id = ? AND card_number = ?`)
	return r.store.Do(ctx, "deck.remove_card", func(ctx context.Context, conn *sqlx.Conn) error {
		return database.CheckAffected(conn.ExecContext(ctx, q, deckID, cardNumber))
	})
}
