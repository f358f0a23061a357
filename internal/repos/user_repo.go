package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"userdesk/internal/domain"
)

// ErrNotFound is returned when a referenced user (or any user of a batch) does not exist.
var ErrNotFound = errors.New("not found")

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

// userRow mirrors the joined users/roles row; status is stored as 0/1.
type userRow struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Status    int    `db:"status"`
	Role      int64  `db:"role"`
	RoleName  string `db:"role_name"`
}

func (r userRow) user() domain.User {
	return domain.User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Status:    domain.StatusFromColumn(r.Status),
		Role:      r.Role,
		RoleName:  r.RoleName,
	}
}

const selectUsers = `
	SELECT u.id, u.first_name, u.last_name, u.status, u.role, r.role_name
	FROM users u
	JOIN roles r ON r.role_id = u.role`

// List returns every user with its role name, oldest first.
func (r *UserRepo) List() ([]domain.User, error) {
	var rows []userRow
	if err := r.db.Select(&rows, selectUsers+` ORDER BY u.id`); err != nil {
		return nil, err
	}
	out := make([]domain.User, len(rows))
	for i, row := range rows {
		out[i] = row.user()
	}
	return out, nil
}

func (r *UserRepo) Get(id int64) (domain.User, error) {
	var row userRow
	err := r.db.Get(&row, selectUsers+` WHERE u.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return row.user(), nil
}

// Add inserts a user and returns the id assigned by storage. Ids are never reused.
func (r *UserRepo) Add(f domain.Fields) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO users(first_name, last_name, status, role)
		VALUES (?, ?, ?, ?)
	`, f.FirstName, f.LastName, domain.StatusColumn(f.Status), f.Role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every mutable field of an existing user (last write wins).
// Nothing is written if the id does not exist.
func (r *UserRepo) Update(id int64, f domain.Fields) error {
	return r.inTx(func(tx *sqlx.Tx) error {
		if err := guardExisting(tx, []int64{id}); err != nil {
			return err
		}
		_, err := tx.Exec(`
			UPDATE users SET first_name = ?, last_name = ?, status = ?, role = ?
			WHERE id = ?
		`, f.FirstName, f.LastName, domain.StatusColumn(f.Status), f.Role, id)
		return err
	})
}

// Delete removes every listed user, or none of them if any id is missing.
func (r *UserRepo) Delete(ids []int64) error {
	return r.inTx(func(tx *sqlx.Tx) error {
		if err := guardExisting(tx, ids); err != nil {
			return err
		}
		query, args, err := sqlx.In(`DELETE FROM users WHERE id IN (?)`, ids)
		if err != nil {
			return err
		}
		res, err := tx.Exec(query, args...)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n != int64(len(ids)) {
			return fmt.Errorf("deleted %d of %d users: %w", n, len(ids), ErrNotFound)
		}
		return nil
	})
}

// UpdateStatus sets the status of every listed user, or of none if any id is missing.
func (r *UserRepo) UpdateStatus(ids []int64, active bool) error {
	return r.inTx(func(tx *sqlx.Tx) error {
		if err := guardExisting(tx, ids); err != nil {
			return err
		}
		query, args, err := sqlx.In(`UPDATE users SET status = ? WHERE id IN (?)`, domain.StatusColumn(active), ids)
		if err != nil {
			return err
		}
		_, err = tx.Exec(query, args...)
		return err
	})
}

// guardExisting fails with ErrNotFound unless every id (already de-duplicated) exists.
// It runs inside the caller's transaction so the check and the write see the same rows.
func guardExisting(tx *sqlx.Tx, ids []int64) error {
	if len(ids) == 0 {
		return ErrNotFound
	}
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	var n int
	if err := tx.Get(&n, query, args...); err != nil {
		return err
	}
	if n != len(ids) {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) inTx(fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
