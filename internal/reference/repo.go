package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"digicards/pkg/database"
	"digicards/pkg/models"
)

var ErrUnknownTable = errors.New("unknown reference table")

// tables maps URL slugs to the statements for that table. Table names
// never come from the request.
var tables = map[string]struct{ list, get string }{
	"bts": {
		list: `SELECT id, name, abbreviation FROM BTs ORDER BY id`,
		get:  `SELECT id, name, abbreviation FROM BTs WHERE id = ?`,
	},
	"colors":     plain("Colors"),
	"card-types": plain("CardTypes"),
	"rarities":   plain("Rarities"),
	"stages":     plain("Stages"),
	"attributes": plain("Attributes"),
	"types":      plain("Types"),
}

func plain(table string) struct{ list, get string } {
	return struct{ list, get string }{
		list: "SELECT id, name FROM " + table + " ORDER BY id",
		get:  "SELECT id, name FROM " + table + " WHERE id = ?",
	}
}

// Tables returns the accepted slugs.
func Tables() []string {
	return []string{"bts", "colors", "card-types", "rarities", "stages", "attributes", "types"}
}

type Repo struct {
	store *database.Store
}

func NewRepo(store *database.Store) *Repo {
	return &Repo{store: store}
}

func (r *Repo) List(ctx context.Context, table string) ([]models.Reference, error) {
	q, ok := tables[table]
	if !ok {
		return nil, fmt.Errorf("%q: %w", table, ErrUnknownTable)
	}

	res := []models.Reference{}
	err := r.store.Do(ctx, "reference.list", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &res, q.list)
	})
	return res, err
}

func (r *Repo) Get(ctx context.Context, table string, id int64) (models.Reference, error) {
	var ref models.Reference
	q, ok := tables[table]
	if !ok {
		return ref, fmt.Errorf("%q: %w", table, ErrUnknownTable)
	}

	err := r.store.Do(ctx, "reference.get", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &ref, r.store.Dialect().Rebind(q.get), id)
	})
	return ref, err
}
