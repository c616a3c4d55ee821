package scope

import (
	"job-portal/internal/access"
	"job-portal/internal/shared/pagination"

	"gorm.io/gorm"
)

func none(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// Jobs narrows a query on the jobs table to the actor's visible set.
func Jobs(s access.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch s.Kind {
		case access.ScopeAll:
			return db
		case access.ScopeOwnJobs:
			return db.Where("jobs.recruiter_id IN (SELECT id FROM recruiters WHERE user_id = ?)", s.UserID)
		default:
			return none(db)
		}
	}
}

// Applications narrows a query on the applications table to the actor's visible set.
func Applications(s access.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch s.Kind {
		case access.ScopeAll:
			return db
		case access.ScopeOwnApplications:
			return db.Where("applications.employee_id IN (SELECT id FROM employees WHERE user_id = ?)", s.UserID)
		case access.ScopeApplicationsToOwnJobs:
			return db.Where(
				"applications.job_id IN (SELECT jobs.id FROM jobs JOIN recruiters ON recruiters.id = jobs.recruiter_id WHERE recruiters.user_id = ?)",
				s.UserID,
			)
		default:
			return none(db)
		}
	}
}

func Paginate(p pagination.Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PageSize)
	}
}
