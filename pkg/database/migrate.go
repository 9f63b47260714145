package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// MaxQuantity bounds every stored collection and deck quantity.
const MaxQuantity = 9999

// schema bootstraps an empty store. {{pk}} is replaced by the dialect's
// auto-increment primary key and {{maxqty}} by MaxQuantity. Foreign keys
// are table-level so MySQL enforces them.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS BTs (
		id {{pk}},
		name VARCHAR(255) NOT NULL,
		abbreviation VARCHAR(32)
	)`,
	`CREATE TABLE IF NOT EXISTS Colors (id {{pk}}, name VARCHAR(64) NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS CardTypes (id {{pk}}, name VARCHAR(64) NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS Rarities (id {{pk}}, name VARCHAR(64) NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS Stages (id {{pk}}, name VARCHAR(64) NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS Attributes (id {{pk}}, name VARCHAR(64) NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS Types (id {{pk}}, name VARCHAR(64) NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS Cards (
		id {{pk}},
		card_number VARCHAR(32) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		dp INTEGER,
		cost INTEGER,
		evolution_cost_one INTEGER,
		evolution_cost_two INTEGER,
		effect TEXT,
		evolution_effect TEXT,
		security_effect TEXT,
		image_url VARCHAR(512),
		alternative SMALLINT NOT NULL DEFAULT 0,
		card_type_id INTEGER,
		rarity_id INTEGER,
		color_one_id INTEGER,
		color_two_id INTEGER,
		color_three_id INTEGER,
		stage_id INTEGER,
		attribute_id INTEGER,
		type_one_id INTEGER,
		type_two_id INTEGER,
		bt_id INTEGER,
		FOREIGN KEY (card_type_id) REFERENCES CardTypes(id),
		FOREIGN KEY (rarity_id) REFERENCES Rarities(id),
		FOREIGN KEY (color_one_id) REFERENCES Colors(id),
		FOREIGN KEY (color_two_id) REFERENCES Colors(id),
		FOREIGN KEY (color_three_id) REFERENCES Colors(id),
		FOREIGN KEY (stage_id) REFERENCES Stages(id),
		FOREIGN KEY (attribute_id) REFERENCES Attributes(id),
		FOREIGN KEY (type_one_id) REFERENCES Types(id),
		FOREIGN KEY (type_two_id) REFERENCES Types(id),
		FOREIGN KEY (bt_id) REFERENCES BTs(id)
	)`,
	`CREATE TABLE IF NOT EXISTS Collection (
		card_number VARCHAR(32) NOT NULL PRIMARY KEY,
		quantity INTEGER NOT NULL CHECK (quantity > 0 AND quantity <= {{maxqty}}),
		FOREIGN KEY (card_number) REFERENCES Cards(card_number)
	)`,
	`CREATE TABLE IF NOT EXISTS Decks (
		id {{pk}},
		name VARCHAR(255) NOT NULL,
		color_id INTEGER,
		image VARCHAR(512),
		FOREIGN KEY (color_id) REFERENCES Colors(id)
	)`,
	`CREATE TABLE IF NOT EXISTS DeckCards (
		deck_id INTEGER NOT NULL,
		card_number VARCHAR(32) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0 AND quantity <= {{maxqty}}),
		PRIMARY KEY (deck_id, card_number),
		FOREIGN KEY (deck_id) REFERENCES Decks(id) ON DELETE CASCADE,
		FOREIGN KEY (card_number) REFERENCES Cards(card_number)
	)`,
}

// Migrate creates any missing table. It is safe to run repeatedly.
func (s *Store) Migrate(ctx context.Context) error {
	r := strings.NewReplacer("{{pk}}", s.dialect.primaryKey(), "{{maxqty}}", strconv.Itoa(MaxQuantity))
	return s.Do(ctx, "store.migrate", func(ctx context.Context, conn *sqlx.Conn) error {
		for i, stmt := range schema {
			if _, err := conn.ExecContext(ctx, r.Replace(stmt)); err != nil {
				return fmt.Errorf("migrate stmt %d: %w", i, err)
			}
		}
		return nil
	})
}
