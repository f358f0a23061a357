package domain

// User is a persisted user joined with its role label.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    bool   `json:"status"`
	Role      int64  `json:"role"`
	RoleName  string `json:"role_name"`
}

type Role struct {
	ID   int64  `db:"role_id" json:"id"`
	Name string `db:"role_name" json:"name"`
}

// Candidate is unvalidated user input. It has no identity; the id is assigned
// by storage on create or supplied separately on update.
type Candidate struct {
	FirstName string
	LastName  string
	Role      string
	// RawStatus is the boundary value ("on", "", "true", ...); see ParseStatus.
	RawStatus string
}

// Fields is the validated, typed form of a Candidate handed to storage.
type Fields struct {
	FirstName string
	LastName  string
	Status    bool
	Role      int64
}
