package rbac

type EnforceRequest struct {
	Role        string `form:"role" json:"role" binding:"required,oneof=employee recruiter superadmin"`
	IsSuperuser bool   `form:"is_superuser" json:"is_superuser"`
	Resource    string `form:"resource" json:"resource" binding:"required,oneof=job application user"`
	Action      string `form:"action" json:"action" binding:"required,oneof=read create update delete"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PolicyResponse struct {
	Subject  string `json:"subject"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
