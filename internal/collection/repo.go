package collection

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"digicards/pkg/database"
	"digicards/pkg/models"
)

// Action reports what Update did to the row.
type Action string

const (
	ActionUpdated Action = "updated"
	ActionRemoved Action = "removed"
)

type ListOptions struct {
	Page               int
	PerPage            int
	IncludeAlternative bool
}

type Repo struct {
	store *database.Store
}

func NewRepo(store *database.Store) *Repo {
	return &Repo{store: store}
}

// Add inserts the card or adds quantity to what is already owned. A total
// past database.MaxQuantity is refused with ErrConflict.
func (r *Repo) Add(ctx context.Context, cardNumber string, quantity int) error {
	if quantity <= 0 || quantity > database.MaxQuantity {
		return fmt.Errorf("collection.add: quantity %d: %w", quantity, database.ErrConflict)
	}
	d := r.store.Dialect()
	q := d.Rebind(`INSERT INTO Collection (card_number, quantity) VALUES (?, ?) ` +
		d.Upsert("Collection", []string{"card_number"}, "quantity", true))

	return r.store.Do(ctx, "collection.add", func(ctx context.Context, conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, q, cardNumber, quantity)
		return err
	})
}

func (r *Repo) Remove(ctx context.Context, cardNumber string) error {
	q := r.store.Dialect().Rebind(`DELETE FROM Collection WHERE card_number = ?`)
	return r.store.Do(ctx, "collection.remove", func(ctx context.Context, conn *sqlx.Conn) error {
		return database.CheckAffected(conn.ExecContext(ctx, q, cardNumber))
	})
}

// Update sets the owned quantity. A quantity of zero or less removes
// the card.
func (r *Repo) Update(ctx context.Context, cardNumber string, quantity int) (Action, error) {
	if quantity <= 0 {
		if err := r.Remove(ctx, cardNumber); err != nil {
			return "", err
		}
		return ActionRemoved, nil
	}
	if quantity > database.MaxQuantity {
		return "", fmt.Errorf("collection.update: quantity %d: %w", quantity, database.ErrConflict)
	}

	q := r.store.Dialect().Rebind(`UPDATE Collection SET quantity = ? WHERE card_number = ?`)
	err := r.store.Do(ctx, "collection.update", func(ctx context.Context, conn *sqlx.Conn) error {
		return database.CheckAffected(conn.ExecContext(ctx, q, quantity, cardNumber))
	})
	if err != nil {
		return "", err
	}
	return ActionUpdated, nil
}

const listColumns = `SELECT c.id, c.card_number, c.name,
	ct.name AS card_type, r.name AS rarity,
	c1.name AS color_one, c2.name AS color_two, c3.name AS color_three,
	c.image_url, c.cost,
	s.name AS stage, a.name AS attribute,
	t1.name AS type_one, t2.name AS type_two,
	bt.abbreviation AS bt_abbreviation, c.alternative,
	col.quantity
	FROM Collection col
	JOIN Cards c ON c.card_number = col.card_number
	LEFT JOIN CardTypes ct ON ct.id = c.card_type_id
	LEFT JOIN Rarities r ON r.id = c.rarity_id
	LEFT JOIN Colors c1 ON c1.id = c.color_one_id
	LEFT JOIN Colors c2 ON c2.id = c.color_two_id
	LEFT JOIN Colors c3 ON c3.id = c.color_three_id
	LEFT JOIN Stages s ON s.id = c.stage_id
	LEFT JOIN Attributes a ON a.id = c.attribute_id
	LEFT JOIN Types t1 ON t1.id = c.type_one_id
	LEFT JOIN Types t2 ON t2.id = c.type_two_id
	LEFT JOIN BTs bt ON bt.id = c.bt_id`

// List pages through the collection ordered by card number.
func (r *Repo) List(ctx context.Context, opts ListOptions) ([]models.CollectionEntry, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 {
		opts.PerPage = 25
	}

	q := listColumns
	if !opts.IncludeAlternative {
		q += ` WHERE c.alternative = 0`
	}
	q = r.store.Dialect().Rebind(q + ` ORDER BY c.card_number LIMIT ? OFFSET ?`)

	res := []models.CollectionEntry{}
	err := r.store.Do(ctx, "collection.list", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &res, q, opts.PerPage, (opts.Page-1)*opts.PerPage)
	})
	return res, err
}
