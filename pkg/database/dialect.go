package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Dialect holds the handful of statement fragments that differ between
// the supported drivers. Queries are written with '?' placeholders and
// rebound once per dialect.
type Dialect struct {
	driver string
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		return Dialect{driver: driver}, nil
	}
	return Dialect{}, fmt.Errorf("unsupported driver %q", driver)
}

func (d Dialect) Driver() string {
	return d.driver
}

// Rebind converts '?' placeholders to the driver's bind style.
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(d.driver), query)
}

// Concat joins two string expressions.
func (d Dialect) Concat(a, b string) string {
	if d.driver == DriverMySQL {
		return fmt.Sprintf("CONCAT(%s, %s)", a, b)
	}
	return fmt.Sprintf("(%s || %s)", a, b)
}

// Upsert returns the conflict clause that either adds the incoming
// value of col to the stored one or overwrites it.
func (d Dialect) Upsert(table string, key []string, col string, additive bool) string {
	if d.driver == DriverMySQL {
		if additive {
			return fmt.Sprintf("ON DUPLICATE KEY UPDATE %[1]s = %[1]s + VALUES(%[1]s)", col)
		}
		return fmt.Sprintf("ON DUPLICATE KEY UPDATE %[1]s = VALUES(%[1]s)", col)
	}
	target := strings.Join(key, ", ")
	if additive {
		return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %[2]s = %[3]s.%[2]s + excluded.%[2]s", target, col, table)
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %[2]s = excluded.%[2]s", target, col)
}

// InsertIgnore builds an insert that silently skips rows whose key exists.
func (d Dialect) InsertIgnore(table string, cols []string) string {
	values := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	body := fmt.Sprintf("INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), values)
	switch d.driver {
	case DriverMySQL:
		return "INSERT IGNORE " + body
	case DriverSQLite:
		return "INSERT OR IGNORE " + body
	default:
		return "INSERT " + body + " ON CONFLICT DO NOTHING"
	}
}

// InsertID executes an already rebound insert and returns the generated id.
func (d Dialect) InsertID(ctx context.Context, conn *sqlx.Conn, query string, args ...any) (int64, error) {
	if d.driver == DriverPostgres {
		var id int64
		err := conn.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (d Dialect) primaryKey() string {
	switch d.driver {
	case DriverMySQL:
		return "INT AUTO_INCREMENT PRIMARY KEY"
	case DriverPostgres:
		return "SERIAL PRIMARY KEY"
	default:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}
