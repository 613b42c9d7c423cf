package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. The zero value is not a valid role.
type Role uint8

const (
	RoleUnknown Role = iota
	RolePatient
	RoleDoctor
	RoleAdmissionist
	RoleAdmin
)

var roleNames = map[Role]string{
	RolePatient:      "patient",
	RoleDoctor:       "doctor",
	RoleAdmissionist: "admissionist",
	RoleAdmin:        "admin",
}

// ProfileRoles lists the roles backed by a profile table, in the order the
// account resolver probes them by email.
var ProfileRoles = []Role{RolePatient, RoleDoctor, RoleAdmissionist}

// ParseRole converts the persisted or wire form of a role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "patient":
		return RolePatient, nil
	case "doctor":
		return RoleDoctor, nil
	case "admissionist":
		return RoleAdmissionist, nil
	case "admin":
		return RoleAdmin, nil
	}
	return RoleUnknown, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// HasProfile reports whether accounts with this role own a profile row.
func (r Role) HasProfile() bool {
	return r == RolePatient || r == RoleDoctor || r == RoleAdmissionist
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRole, r)
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
