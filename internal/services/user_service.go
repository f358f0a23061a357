package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"userdesk/internal/domain"
	"userdesk/internal/repos"
	"userdesk/internal/validate"
)

const maxNameLen = 70

type UserService struct {
	Users *repos.UserRepo
	Roles *repos.RoleRepo
}

func NewUserService(users *repos.UserRepo, roles *repos.RoleRepo) *UserService {
	return &UserService{Users: users, Roles: roles}
}

func (s *UserService) List() ([]domain.User, error) {
	users, err := s.Users.List()
	if err != nil {
		return nil, Storage("Can't get users", err)
	}
	return users, nil
}

func (s *UserService) ListRoles() ([]domain.Role, error) {
	roles, err := s.Roles.List()
	if err != nil {
		return nil, Storage("Can't get roles", err)
	}
	return roles, nil
}

// Get looks a user up by the numeric id captured from the path.
func (s *UserService) Get(rawID string) (domain.User, error) {
	missing := NotFound(fmt.Sprintf("There is no user with id %s", rawID))
	id, ok := validate.ID(rawID)
	if !ok {
		return domain.User{}, missing
	}
	u, err := s.Users.Get(id)
	if errors.Is(err, repos.ErrNotFound) {
		return domain.User{}, missing
	}
	if err != nil {
		return domain.User{}, Storage("Can't get user", err)
	}
	return u, nil
}

// Create validates the candidate completely before it reaches storage.
func (s *UserService) Create(c domain.Candidate) (int64, error) {
	f, err := s.fields(c, "Error adding user")
	if err != nil {
		return 0, err
	}
	id, err := s.Users.Add(f)
	if err != nil {
		return 0, Storage("Error adding user", err)
	}
	return id, nil
}

// Update overwrites the user identified by rawID. An empty rawID means the id
// was not submitted.
func (s *UserService) Update(rawID string, c domain.Candidate) error {
	f, err := s.fields(c, "Error updating user")
	if err != nil {
		return err
	}
	var id int64
	if fail := validate.Chain(
		validate.BadRequest("ID is empty", func() bool { return rawID == "" }),
		validate.BadRequest("Invalid ID", func() bool {
			var ok bool
			id, ok = validate.ID(rawID)
			return !ok
		}),
	); fail != nil {
		return Invalid(fail.Message)
	}

	err = s.Users.Update(id, f)
	if errors.Is(err, repos.ErrNotFound) {
		return NotFound(fmt.Sprintf("There is no user with id %d", id))
	}
	if err != nil {
		return Storage("Error updating user", err)
	}
	return nil
}

// Delete removes all users in rawIDs or none. A nil slice means the list was not submitted.
func (s *UserService) Delete(rawIDs []string) error {
	ids, fail := batchIDs(rawIDs)
	if fail != nil {
		return Invalid(fail.Message)
	}
	err := s.Users.Delete(ids)
	if errors.Is(err, repos.ErrNotFound) {
		return NotFound("Error deleting")
	}
	if err != nil {
		return Storage("Error deleting", err)
	}
	return nil
}

// SetStatus changes the status of all users in rawIDs or none. A nil rawStatus
// means the field was not submitted; an empty one means "inactive".
func (s *UserService) SetStatus(rawIDs []string, rawStatus *string) error {
	if rawStatus == nil {
		return Invalid("Status is empty")
	}
	ids, fail := batchIDs(rawIDs)
	if fail != nil {
		return Invalid(fail.Message)
	}
	active, err := domain.ParseStatus(*rawStatus)
	if err != nil {
		return Invalid("Invalid status")
	}

	err = s.Users.UpdateStatus(ids, active)
	if errors.Is(err, repos.ErrNotFound) {
		return NotFound("Error updating")
	}
	if err != nil {
		return Storage("Error updating", err)
	}
	return nil
}

// fields runs the create/update rule set and converts the candidate to typed fields.
func (s *UserService) fields(c domain.Candidate, storageMsg string) (domain.Fields, error) {
	f := domain.Fields{FirstName: c.FirstName, LastName: c.LastName}
	fail := validate.Chain(
		validate.BadRequest("First name is empty", func() bool { return c.FirstName == "" }),
		validate.BadRequest("First name is invalid", func() bool { return !utf8.ValidString(c.FirstName) }),
		validate.BadRequest("First name can be maximum 70 characters", func() bool { return validate.TooLong(c.FirstName, maxNameLen) }),
		validate.BadRequest("Last name is empty", func() bool { return c.LastName == "" }),
		validate.BadRequest("Last name is invalid", func() bool { return !utf8.ValidString(c.LastName) }),
		validate.BadRequest("Last name can be maximum 70 characters", func() bool { return validate.TooLong(c.LastName, maxNameLen) }),
		validate.BadRequest("Role is empty", func() bool { return c.Role == "" }),
		validate.BadRequest("Invalid role", func() bool {
			var ok bool
			f.Role, ok = validate.ID(c.Role)
			return !ok
		}),
		validate.BadRequest("Invalid status", func() bool {
			var err error
			f.Status, err = domain.ParseStatus(c.RawStatus)
			return err != nil
		}),
	)
	if fail != nil {
		return domain.Fields{}, Invalid(fail.Message)
	}

	ok, err := s.Roles.Exists(f.Role)
	if err != nil {
		return domain.Fields{}, Storage(storageMsg, err)
	}
	if !ok {
		return domain.Fields{}, Invalid("Role does not exist")
	}
	return f, nil
}

func batchIDs(raw []string) ([]int64, *validate.Failure) {
	var ids []int64
	fail := validate.Chain(
		validate.BadRequest("ID is empty", func() bool { return len(raw) == 0 }),
		validate.BadRequest("Invalid ID", func() bool {
			var ok bool
			ids, ok = validate.IDs(raw)
			return !ok
		}),
	)
	return ids, fail
}
