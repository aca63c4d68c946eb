package domain

// Role viewer role normalized from the session claims
type Role string

// known roles, RoleNone is reported for anonymous viewers
const (
	RoleNone    Role = ""
	RoleLearner Role = "learner"
	RoleAdmin   Role = "admin"
)

// Identity resolved viewer identity for one navigation.
// A corrupt or absent session token resolves to the anonymous identity,
// never to an error.
type Identity struct {
	UID           string `json:"uid,omitempty"`
	Name          string `json:"name,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Role          Role   `json:"role,omitempty"`
}

// Anonymous the identity of an unauthenticated viewer
var Anonymous = Identity{Authenticated: false, Role: RoleNone}

// IsAdmin report whether the viewer holds the admin role
func (id Identity) IsAdmin() bool {
	return id.Authenticated && id.Role == RoleAdmin
}
