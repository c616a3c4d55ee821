package access

import (
	"fmt"
	"net/http"
	"strings"
)

// Role is the closed set of account roles. The zero value is not a valid role.
type Role uint8

const (
	RoleEmployee Role = iota + 1
	RoleRecruiter
	RoleSuperadmin
)

// Roles lists every valid role in declaration order.
var Roles = []Role{RoleEmployee, RoleRecruiter, RoleSuperadmin}

func (r Role) String() string {
	switch r {
	case RoleEmployee:
		return "employee"
	case RoleRecruiter:
		return "recruiter"
	case RoleSuperadmin:
		return "superadmin"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleRecruiter, RoleSuperadmin:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "employee":
		return RoleEmployee, nil
	case "recruiter":
		return RoleRecruiter, nil
	case "superadmin":
		return RoleSuperadmin, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

// Verb is the intent of an operation, independent of transport.
type Verb uint8

const (
	VerbRead Verb = iota + 1
	VerbCreate
	VerbUpdate
	VerbDelete
)

func (v Verb) String() string {
	switch v {
	case VerbRead:
		return "read"
	case VerbCreate:
		return "create"
	case VerbUpdate:
		return "update"
	case VerbDelete:
		return "delete"
	default:
		return fmt.Sprintf("verb(%d)", uint8(v))
	}
}

// Safe reports whether the verb never mutates state.
func (v Verb) Safe() bool {
	return v == VerbRead
}

// VerbFromHTTPMethod maps HTTP methods onto verbs. PUT and PATCH are both updates.
func VerbFromHTTPMethod(method string) (Verb, bool) {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return VerbRead, true
	case http.MethodPost:
		return VerbCreate, true
	case http.MethodPut, http.MethodPatch:
		return VerbUpdate, true
	case http.MethodDelete:
		return VerbDelete, true
	default:
		return 0, false
	}
}

// Resource names a protected collection.
type Resource string

const (
	ResourceJob         Resource = "job"
	ResourceApplication Resource = "application"
	ResourceUser        Resource = "user"
)

var Resources = []Resource{ResourceJob, ResourceApplication, ResourceUser}
