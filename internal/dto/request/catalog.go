package request

type LocationRequest struct {
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Country string `json:"country" validate:"required,max=100"`
	ZipCode string `json:"zip_code" validate:"max=20"`
}

type AmenityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type PropertyTypeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
