package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Store errors, matched with errors.Is at the request boundary.
var (
	// ErrNotFound: the call succeeded but the target row is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a write was refused by a constraint.
	ErrConflict = errors.New("operation failed")
	// ErrUnavailable: the store could not be reached or the statement failed.
	ErrUnavailable = errors.New("store unavailable")
)

// CheckAffected turns a write that touched no row into ErrNotFound.
func CheckAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict), errors.Is(err, ErrUnavailable):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case isConstraint(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
}

// MySQL server error numbers for constraint violations. Out of range
// values are refused writes, like a failed CHECK.
const (
	mysqlBadNull          = 1048
	mysqlOutOfRange       = 1264
	mysqlDupEntry         = 1062
	mysqlNoReferencedRow  = 1216
	mysqlRowIsReferenced  = 1217
	mysqlRowIsReferenced2 = 1451
	mysqlNoReferencedRow2 = 1452
	mysqlCheckViolated    = 3819
)

func isConstraint(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlBadNull, mysqlOutOfRange, mysqlDupEntry, mysqlNoReferencedRow, mysqlRowIsReferenced,
			mysqlRowIsReferenced2, mysqlNoReferencedRow2, mysqlCheckViolated:
			return true
		}
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation", "foreign_key_violation", "not_null_violation", "check_violation":
			return true
		}
		return false
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
