package repos

import (
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"userdesk/internal/repos/migrations"
)

// OpenDB opens the process-wide database handle. The pool is capped at a single
// connection: every request shares it, and an in-memory database stays one
// database for the life of the handle.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func applyMigrations(db *sqlx.DB) error {
	driver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	// m.Close would close db as well; the handle belongs to the caller.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SeedDemo inserts a handful of users when the table is empty (idempotent).
func SeedDemo(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo users")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	users := []struct {
		first, last string
		status      int
		role        int64
	}{
		{"Grace", "Hopper", 1, 1},
		{"Alan", "Turing", 1, 2},
		{"Ada", "Lovelace", 0, 2},
		{"Edsger", "Dijkstra", 1, 2},
		{"Barbara", "Liskov", 1, 1},
		{"Ken", "Thompson", 0, 2},
	}
	for _, u := range users {
		if _, err := tx.Exec(`INSERT INTO users(first_name,last_name,status,role) VALUES(?,?,?,?)`,
			u.first, u.last, u.status, u.role); err != nil {
			return err
		}
	}
	return tx.Commit()
}
