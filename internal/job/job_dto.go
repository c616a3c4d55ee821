package job

import (
	"github.com/shopspring/decimal"
)

type CreateJobRequest struct {
	Title               string           `json:"title" binding:"required,max=255"`
	Description         string           `json:"description" binding:"required"`
	Location            string           `json:"location" binding:"required,max=255"`
	JobType             string           `json:"job_type" binding:"omitempty,oneof=full_time part_time contract internship freelance"`
	Salary              *decimal.Decimal `json:"salary" binding:"required,gte=0,lte=99999999.99"`
	ApplicationDeadline *string          `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
	IsActive            *bool            `json:"is_active"`
}

// UpdateJobRequest is the full replacement body for PUT.
type UpdateJobRequest = CreateJobRequest

// PatchJobRequest carries only the fields present in the body.
type PatchJobRequest struct {
	Title               *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Description         *string          `json:"description" binding:"omitempty,min=1"`
	Location            *string          `json:"location" binding:"omitempty,min=1,max=255"`
	JobType             *string          `json:"job_type" binding:"omitempty,oneof=full_time part_time contract internship freelance"`
	Salary              *decimal.Decimal `json:"salary" binding:"omitempty,gte=0,lte=99999999.99"`
	ApplicationDeadline *string          `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
	IsActive            *bool            `json:"is_active"`
}

type ListJobsQuery struct {
	Search   string `form:"search"`
	JobType  string `form:"job_type" binding:"omitempty,oneof=full_time part_time contract internship freelance"`
	IsActive *bool  `form:"is_active"`
}

type JobResponse struct {
	ID                  string  `json:"id"`
	RecruiterID         string  `json:"recruiter"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Location            string  `json:"location"`
	JobType             string  `json:"job_type"`
	Salary              string  `json:"salary"`
	PostedDate          string  `json:"posted_date"`
	ApplicationDeadline *string `json:"application_deadline"`
	IsActive            bool    `json:"is_active"`
}
