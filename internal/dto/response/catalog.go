package response

import (
	"book-my-property/internal/data/entity"

	"github.com/samber/lo"
)

type LocationResponse struct {
	ID      int64  `json:"id"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

type AmenityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PropertyTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func LocationToResponse(l *entity.Location) LocationResponse {
	return LocationResponse{ID: l.ID, City: l.City, State: l.State, Country: l.Country, ZipCode: l.ZipCode}
}

func AmenityToResponse(a *entity.Amenity) AmenityResponse {
	return AmenityResponse{ID: a.ID, Name: a.Name}
}

func PropertyTypeToResponse(t *entity.PropertyType) PropertyTypeResponse {
	return PropertyTypeResponse{ID: t.ID, Name: t.Name}
}

func AmenitiesToResponse(items []*entity.Amenity) []AmenityResponse {
	return lo.Map(items, func(a *entity.Amenity, _ int) AmenityResponse { return AmenityToResponse(a) })
}
