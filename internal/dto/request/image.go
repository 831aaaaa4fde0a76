package request

type CreateImageRequest struct {
	PropertyID int64  `json:"property_id" validate:"required,gt=0"`
	ImageURL   string `json:"image_url" validate:"required,url,max=500"`
	IsPrimary  bool   `json:"is_primary"`
}

type UpdateImageRequest struct {
	ImageURL  string `json:"image_url" validate:"required,url,max=500"`
	IsPrimary bool   `json:"is_primary"`
}
