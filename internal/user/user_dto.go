package user

type ListUsersQuery struct {
	Role     string `form:"role" binding:"omitempty,oneof=employee recruiter superadmin"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ForceResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}
