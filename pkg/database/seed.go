package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	"digicards/pkg/models"
)

func LoadCatalogFromJSON(jsonPath string) (models.Catalog, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("read catalog json: %w", err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(b, &catalog); err != nil {
		return models.Catalog{}, fmt.Errorf("unmarshal catalog json: %w", err)
	}
	return catalog, nil
}

var cardColumns = []string{
	"id", "card_number", "name", "dp", "cost", "evolution_cost_one", "evolution_cost_two",
	"effect", "evolution_effect", "security_effect", "image_url", "alternative",
	"card_type_id", "rarity_id", "color_one_id", "color_two_id", "color_three_id",
	"stage_id", "attribute_id", "type_one_id", "type_two_id", "bt_id",
}

// Seed inserts the catalog in one transaction, skipping rows whose key
// already exists. It returns how many rows were inserted.
func (s *Store) Seed(ctx context.Context, catalog models.Catalog) (int, error) {
	inserted := 0
	err := s.Do(ctx, "store.seed", func(ctx context.Context, conn *sqlx.Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		insert := func(table string, cols []string, rows [][]any) error {
			if len(rows) == 0 {
				return nil
			}
			stmt, err := tx.PrepareContext(ctx, s.dialect.Rebind(s.dialect.InsertIgnore(table, cols)))
			if err != nil {
				return fmt.Errorf("prepare insert %s: %w", table, err)
			}
			defer stmt.Close()

			for _, row := range rows {
				res, err := stmt.ExecContext(ctx, row...)
				if err != nil {
					return fmt.Errorf("insert %s %v: %w", table, row[0], err)
				}
				if aff, _ := res.RowsAffected(); aff > 0 {
					inserted++
				}
			}
			return nil
		}

		references := []struct {
			table string
			rows  []models.Reference
		}{
			{"Colors", catalog.Colors},
			{"CardTypes", catalog.CardTypes},
			{"Rarities", catalog.Rarities},
			{"Stages", catalog.Stages},
			{"Attributes", catalog.Attributes},
			{"Types", catalog.Types},
		}
		for _, ref := range references {
			rows := make([][]any, 0, len(ref.rows))
			for _, r := range ref.rows {
				rows = append(rows, []any{r.ID, r.Name})
			}
			if err := insert(ref.table, []string{"id", "name"}, rows); err != nil {
				return err
			}
		}

		bts := make([][]any, 0, len(catalog.BTs))
		for _, bt := range catalog.BTs {
			bts = append(bts, []any{bt.ID, bt.Name, bt.Abbreviation})
		}
		if err := insert("BTs", []string{"id", "name", "abbreviation"}, bts); err != nil {
			return err
		}

		cards := make([][]any, 0, len(catalog.Cards))
		for _, c := range catalog.Cards {
			cards = append(cards, []any{
				c.ID, c.CardNumber, c.Name, c.DP, c.Cost, c.EvolutionCostOne, c.EvolutionCostTwo,
				c.Effect, c.EvolutionEffect, c.SecurityEffect, c.ImageURL, boolInt(c.Alternative),
				c.CardTypeID, c.RarityID, c.ColorOneID, c.ColorTwoID, c.ColorThreeID,
				c.StageID, c.AttributeID, c.TypeOneID, c.TypeTwoID, c.BTID,
			})
		}
		if err := insert("Cards", cardColumns, cards); err != nil {
			return err
		}

		owned := make([][]any, 0, len(catalog.Collection))
		for _, e := range catalog.Collection {
			owned = append(owned, []any{e.CardNumber, e.Quantity})
		}
		if err := insert("Collection", []string{"card_number", "quantity"}, owned); err != nil {
			return err
		}

		decks := make([][]any, 0, len(catalog.Decks))
		var deckCards [][]any
		for _, d := range catalog.Decks {
			decks = append(decks, []any{d.ID, d.Name, d.ColorID, d.Image})
			for _, dc := range d.Cards {
				deckCards = append(deckCards, []any{d.ID, dc.CardNumber, dc.Quantity})
			}
		}
		if err := insert("Decks", []string{"id", "name", "color_id", "image"}, decks); err != nil {
			return err
		}
		if err := insert("DeckCards", []string{"deck_id", "card_number", "quantity"}, deckCards); err != nil {
			return err
		}

		if s.dialect.driver == DriverPostgres && len(decks) > 0 {
			// Explicit ids do not advance the serial sequence.
			if _, err := tx.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('decks', 'id'), (SELECT MAX(id) FROM decks))`); err != nil {
				return fmt.Errorf("reset decks sequence: %w", err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
