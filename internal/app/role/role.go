package role

// Role is the value stored in the user_roles assignment table.
// Identity (credentials, sessions) lives in the external provider;
// a user is meaningful to this service only through its role row.
type Role string

const (
	Admin     Role = "admin"
	Franchise Role = "franchise"
	Mitra     Role = "mitra"
)

func (r Role) Valid() bool {
	switch r {
	case Admin, Franchise, Mitra:
		return true
	}
	return false
}
