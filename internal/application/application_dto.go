package application

type CreateApplicationRequest struct {
	JobID       string `json:"job" binding:"required,uuid"`
	CoverLetter string `json:"cover_letter"`
}

// UpdateApplicationRequest is the PUT body. The employee, status and
// active flag are server controlled and not accepted here.
type UpdateApplicationRequest struct {
	JobID       string  `json:"job" binding:"required,uuid"`
	CoverLetter *string `json:"cover_letter"`
}

type PatchApplicationRequest struct {
	JobID       *string `json:"job" binding:"omitempty,uuid"`
	CoverLetter *string `json:"cover_letter"`
}

type ListApplicationsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=submitted reviewed accepted rejected"`
	JobID  string `form:"job" binding:"omitempty,uuid"`
}

type ApplicationResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee"`
	JobID       string `json:"job"`
	CoverLetter string `json:"cover_letter"`
	SubmittedAt string `json:"submitted_at"`
	Status      string `json:"status"`
	IsActive    bool   `json:"is_active"`
}
