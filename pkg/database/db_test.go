package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

func TestDataSource(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    []string
		wantErr bool
	}{
		{
			name: "mysql from parts",
			cfg: Config{Driver: DriverMySQL, Host: "db", User: "app", Password: "pw", Name: "cards",
				QueryTimeout: 3 * time.Second},
			want: []string{"app:pw@tcp(db:3306)/cards", "clientFoundRows=true", "parseTime=true", "readTimeout=3s"},
		},
		{
			name: "mysql dsn keeps found rows",
			cfg:  Config{Driver: DriverMySQL, DSN: "app:pw@tcp(localhost:3307)/cards"},
			want: []string{"tcp(localhost:3307)", "clientFoundRows=true"},
		},
		{
			name:    "mysql missing host",
			cfg:     Config{Driver: DriverMySQL, User: "app", Name: "cards"},
			wantErr: true,
		},
		{
			name: "postgres from parts",
			cfg:  Config{Driver: DriverPostgres, Host: "pg", User: "app", Password: "pw", Name: "cards", SSLMode: "disable"},
			want: []string{"postgres://app:pw@pg:5432/cards?", "sslmode=disable", "statement_timeout=5000"},
		},
		{
			name: "sqlite path",
			cfg:  Config{Driver: DriverSQLite, Path: "/tmp/x.db", QueryTimeout: 2 * time.Second},
			want: []string{"file:/tmp/x.db?", "_foreign_keys=on", "_busy_timeout=2000"},
		},
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.dataSource()
			if (err != nil) != tt.wantErr {
				t.Fatalf("dataSource() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, part := range tt.want {
				if !strings.Contains(got, part) {
					t.Errorf("dataSource() = %q, missing %q", got, part)
				}
			}
		})
	}
}

func TestDialectFragments(t *testing.T) {
	my, _ := DialectFor(DriverMySQL)
	pg, _ := DialectFor(DriverPostgres)
	lite, _ := DialectFor(DriverSQLite)

	if got := my.Upsert("Collection", []string{"card_number"}, "quantity", true); got != "ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)" {
		t.Errorf("mysql additive upsert = %q", got)
	}
	if got := lite.Upsert("Collection", []string{"card_number"}, "quantity", true); got != "ON CONFLICT (card_number) DO UPDATE SET quantity = Collection.quantity + excluded.quantity" {
		t.Errorf("sqlite additive upsert = %q", got)
	}
	if got := pg.Upsert("DeckCards", []string{"deck_id", "card_number"}, "quantity", false); got != "ON CONFLICT (deck_id, card_number) DO UPDATE SET quantity = excluded.quantity" {
		t.Errorf("postgres overwrite upsert = %q", got)
	}

	if got := pg.Rebind("SELECT 1 WHERE a = ? AND b = ?"); got != "SELECT 1 WHERE a = $1 AND b = $2" {
		t.Errorf("postgres rebind = %q", got)
	}
	if got := my.Concat("a", "'_'"); got != "CONCAT(a, '_')" {
		t.Errorf("mysql concat = %q", got)
	}
	if got := lite.InsertIgnore("Colors", []string{"id", "name"}); got != "INSERT OR IGNORE INTO Colors (id, name) VALUES (?, ?)" {
		t.Errorf("sqlite insert ignore = %q", got)
	}
	if got := pg.InsertIgnore("Colors", []string{"id", "name"}); !strings.HasSuffix(got, "ON CONFLICT DO NOTHING") {
		t.Errorf("postgres insert ignore = %q", got)
	}

	if _, err := DialectFor("mssql"); err == nil {
		t.Errorf("expected error for unsupported driver")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"sentinel kept", ErrNotFound, ErrNotFound},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, ErrConflict},
		{"mysql fk", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, ErrConflict},
		{"mysql other", &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}, ErrUnavailable},
		{"postgres fk", &pq.Error{Code: "23503"}, ErrConflict},
		{"postgres syntax", &pq.Error{Code: "42601"}, ErrUnavailable},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, ErrConflict},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrUnavailable},
		{"wrapped driver error", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), ErrConflict},
		{"plain", errors.New("connection refused"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("classify() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("classify() = %v, want %v", got, tt.want)
			}
			if !strings.HasPrefix(got.Error(), "op: ") {
				t.Fatalf("classify() = %q, want op prefix", got)
			}
		})
	}
}
