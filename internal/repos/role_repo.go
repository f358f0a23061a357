package repos

import (
	"github.com/jmoiron/sqlx"

	"userdesk/internal/domain"
)

type RoleRepo struct{ db *sqlx.DB }

func NewRoleRepo(db *sqlx.DB) *RoleRepo { return &RoleRepo{db: db} }

func (r *RoleRepo) List() ([]domain.Role, error) {
	out := []domain.Role{}
	err := r.db.Select(&out, `SELECT role_id, role_name FROM roles ORDER BY role_id`)
	return out, err
}

func (r *RoleRepo) Exists(id int64) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM roles WHERE role_id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}
