package profile

type UpdateProfileRequest struct {
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	Website     *string `json:"website" binding:"omitempty,url,max=255"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=15"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Location    string `json:"location,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}
