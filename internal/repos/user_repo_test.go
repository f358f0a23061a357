package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"userdesk/internal/domain"
	"userdesk/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func add(t *testing.T, r *repos.UserRepo, first string, role int64) int64 {
	t.Helper()
	id, err := r.Add(domain.Fields{FirstName: first, LastName: "Lee", Status: true, Role: role})
	require.NoError(t, err)
	return id
}

func TestAddGetRoundTrip(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))

	id, err := r.Add(domain.Fields{FirstName: "Ann", LastName: "Lee", Status: true, Role: 1})
	require.NoError(t, err)

	u, err := r.Get(id)
	require.NoError(t, err)
	require.Equal(t, domain.User{ID: id, FirstName: "Ann", LastName: "Lee", Status: true, Role: 1, RoleName: "Admin"}, u)
}

func TestIDsAreNotReused(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))

	first := add(t, r, "Ann", 2)
	second := add(t, r, "Bob", 2)
	require.NoError(t, r.Delete([]int64{second}))

	third := add(t, r, "Cid", 2)
	require.NotEqual(t, first, third)
	require.NotEqual(t, second, third)
	require.Greater(t, third, second)
}

func TestGetMissing(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	_, err := r.Get(999)
	require.ErrorIs(t, err, repos.ErrNotFound)
}

func TestAddRejectsUnknownRole(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	_, err := r.Add(domain.Fields{FirstName: "Ann", LastName: "Lee", Role: 42})
	require.Error(t, err)
	require.NotErrorIs(t, err, repos.ErrNotFound)
}

func TestList(t *testing.T) {
	db := memdb(t)
	r := repos.NewUserRepo(db)

	users, err := r.List()
	require.NoError(t, err)
	require.Empty(t, users)

	require.NoError(t, repos.SeedDemo(db))
	require.NoError(t, repos.SeedDemo(db)) // idempotent

	users, err = r.List()
	require.NoError(t, err)
	require.Len(t, users, 6)
	require.Equal(t, "Grace", users[0].FirstName)
	require.Equal(t, "Admin", users[0].RoleName)
	require.True(t, users[0].Status)
	require.False(t, users[2].Status)
}

func TestUpdate(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	id := add(t, r, "Ann", 2)

	require.NoError(t, r.Update(id, domain.Fields{FirstName: "Anna", LastName: "Li", Status: false, Role: 1}))
	u, err := r.Get(id)
	require.NoError(t, err)
	require.Equal(t, "Anna", u.FirstName)
	require.Equal(t, "Li", u.LastName)
	require.False(t, u.Status)
	require.Equal(t, "Admin", u.RoleName)
}

func TestUpdateMissingLeavesStorageUnchanged(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	id := add(t, r, "Ann", 2)
	before, err := r.List()
	require.NoError(t, err)

	err = r.Update(id+100, domain.Fields{FirstName: "X", LastName: "Y", Role: 1})
	require.ErrorIs(t, err, repos.ErrNotFound)

	after, err := r.List()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestDeleteIsAllOrNothing(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	a := add(t, r, "Ann", 2)
	b := add(t, r, "Bob", 2)

	err := r.Delete([]int64{a, 999})
	require.ErrorIs(t, err, repos.ErrNotFound)
	_, err = r.Get(a)
	require.NoError(t, err)

	require.NoError(t, r.Delete([]int64{a, b}))
	users, err := r.List()
	require.NoError(t, err)
	require.Empty(t, users)

	require.ErrorIs(t, r.Delete(nil), repos.ErrNotFound)
}

func TestUpdateStatusIsAllOrNothing(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	a := add(t, r, "Ann", 2)

	err := r.UpdateStatus([]int64{a, 999}, false)
	require.ErrorIs(t, err, repos.ErrNotFound)
	u, err := r.Get(a)
	require.NoError(t, err)
	require.True(t, u.Status)
}

func TestUpdateStatusIdempotent(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	a := add(t, r, "Ann", 2)
	b := add(t, r, "Bob", 1)

	require.NoError(t, r.UpdateStatus([]int64{a, b}, false))
	once, err := r.List()
	require.NoError(t, err)

	require.NoError(t, r.UpdateStatus([]int64{a, b}, false))
	twice, err := r.List()
	require.NoError(t, err)

	require.Equal(t, once, twice)
	for _, u := range twice {
		require.False(t, u.Status)
	}
}

func TestRoles(t *testing.T) {
	r := repos.NewRoleRepo(memdb(t))

	roles, err := r.List()
	require.NoError(t, err)
	require.Equal(t, []domain.Role{{ID: 1, Name: "Admin"}, {ID: 2, Name: "User"}}, roles)

	ok, err := r.Exists(2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.Exists(3)
	require.NoError(t, err)
	require.False(t, ok)
}
