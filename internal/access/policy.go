// Package access holds the role-scoped access-control policy for jobs and
// applications. Every function is pure: it sees only the actor and, for
// instance checks, the ownership facts of the target record.
//
// Evaluation happens in two layers. CanAccessCollection gates the endpoint,
// the Scope functions narrow list and lookup queries to the visible set, and
// the instance checks re-verify ownership on every single-object operation.
package access

import (
	"github.com/google/uuid"
)

// Actor is the authenticated identity behind a request.
type Actor struct {
	UserID      uuid.UUID
	Role        Role
	IsStaff     bool
	IsSuperuser bool
}

func (a Actor) Authenticated() bool {
	return a.UserID != uuid.Nil && a.Role.Valid()
}

// Decision is the explicit outcome of a policy check.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

const (
	reasonUnauthenticated = "authentication required"
	reasonRole            = "role not permitted"
	reasonNotOwner        = "not the owner"
	reasonVerb            = "operation not permitted"
)

// CanAccessCollection is the collection-level gate.
func CanAccessCollection(a Actor, res Resource, v Verb) Decision {
	if !a.Authenticated() {
		return deny(reasonUnauthenticated)
	}

	switch res {
	case ResourceJob:
		if v.Safe() {
			return allow()
		}
		if a.Role == RoleRecruiter || a.IsSuperuser {
			return allow()
		}
		return deny(reasonRole)
	case ResourceApplication:
		// visibility is narrowed by ApplicationScope
		return allow()
	case ResourceUser:
		if a.IsSuperuser {
			return allow()
		}
		return deny(reasonRole)
	default:
		return deny(reasonRole)
	}
}

// ScopeKind describes which rows of a collection an actor may see.
type ScopeKind uint8

const (
	// ScopeNone matches nothing.
	ScopeNone ScopeKind = iota
	// ScopeAll matches every row.
	ScopeAll
	// ScopeOwnJobs matches jobs whose recruiter belongs to UserID.
	ScopeOwnJobs
	// ScopeOwnApplications matches applications whose employee belongs to UserID.
	ScopeOwnApplications
	// ScopeApplicationsToOwnJobs matches applications to jobs whose recruiter belongs to UserID.
	ScopeApplicationsToOwnJobs
)

// Scope is a predicate over a collection, applied by repositories as a query filter.
type Scope struct {
	Kind   ScopeKind
	UserID uuid.UUID
}

func (s Scope) Empty() bool { return s.Kind == ScopeNone }

// JobScope returns the visible set of jobs.
func JobScope(a Actor) Scope {
	if !a.Authenticated() {
		return Scope{Kind: ScopeNone}
	}

	switch a.Role {
	case RoleRecruiter:
		return Scope{Kind: ScopeOwnJobs, UserID: a.UserID}
	case RoleEmployee, RoleSuperadmin:
		if a.IsSuperuser {
			return Scope{Kind: ScopeAll}
		}
		return Scope{Kind: ScopeNone}
	default:
		return Scope{Kind: ScopeNone}
	}
}

// ApplicationScope returns the visible set of applications.
func ApplicationScope(a Actor) Scope {
	if !a.Authenticated() {
		return Scope{Kind: ScopeNone}
	}

	switch a.Role {
	case RoleEmployee:
		return Scope{Kind: ScopeOwnApplications, UserID: a.UserID}
	case RoleRecruiter:
		return Scope{Kind: ScopeApplicationsToOwnJobs, UserID: a.UserID}
	case RoleSuperadmin:
		if a.IsSuperuser {
			return Scope{Kind: ScopeAll}
		}
		return Scope{Kind: ScopeNone}
	default:
		return Scope{Kind: ScopeNone}
	}
}

// JobOwnership carries the facts an instance check needs about a job.
type JobOwnership struct {
	RecruiterUserID uuid.UUID
}

// CanAccessJob is the per-instance gate for jobs. Reads always pass here;
// read safety comes from JobScope.
func CanAccessJob(a Actor, v Verb, job JobOwnership) Decision {
	if !a.Authenticated() {
		return deny(reasonUnauthenticated)
	}
	if v.Safe() {
		return allow()
	}
	if job.RecruiterUserID == a.UserID {
		return allow()
	}
	if a.IsSuperuser {
		return allow()
	}
	return deny(reasonNotOwner)
}

// ApplicationOwnership carries the facts an instance check needs about an application.
type ApplicationOwnership struct {
	EmployeeUserID     uuid.UUID
	JobRecruiterUserID uuid.UUID
}

// CanAccessApplication is the per-instance gate for applications.
//
//	superuser: read, delete
//	employee:  read, update, delete on own applications
//	recruiter: read on applications to own jobs
func CanAccessApplication(a Actor, v Verb, app ApplicationOwnership) Decision {
	if !a.Authenticated() {
		return deny(reasonUnauthenticated)
	}

	if a.IsSuperuser {
		switch v {
		case VerbRead, VerbDelete:
			return allow()
		default:
			return deny(reasonVerb)
		}
	}

	switch a.Role {
	case RoleEmployee:
		switch v {
		case VerbRead, VerbUpdate, VerbDelete:
			if app.EmployeeUserID == a.UserID {
				return allow()
			}
			return deny(reasonNotOwner)
		default:
			return deny(reasonVerb)
		}
	case RoleRecruiter:
		if v != VerbRead {
			return deny(reasonVerb)
		}
		if app.JobRecruiterUserID == a.UserID {
			return allow()
		}
		return deny(reasonNotOwner)
	case RoleSuperadmin:
		return deny(reasonRole)
	default:
		return deny(reasonRole)
	}
}
