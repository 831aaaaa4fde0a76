package request

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=20"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
