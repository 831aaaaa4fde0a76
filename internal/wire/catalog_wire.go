package wire

import (
	"net/http"

	"book-my-property/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

type catalogRoutes struct {
	list, get, create, update, remove http.HandlerFunc
}

// wireCatalog configures locations, amenities and property types: public reads, admin writes
func wireCatalog(r chi.Router, h *adaptor.CatalogHandler, g guards) {
	resources := map[string]catalogRoutes{
		"/api/locations":      {h.GetLocations, h.GetLocation, h.CreateLocation, h.UpdateLocation, h.DeleteLocation},
		"/api/amenities":      {h.GetAmenities, h.GetAmenity, h.CreateAmenity, h.UpdateAmenity, h.DeleteAmenity},
		"/api/property-types": {h.GetPropertyTypes, h.GetPropertyType, h.CreatePropertyType, h.UpdatePropertyType, h.DeletePropertyType},
	}

	for path, routes := range resources {
		r.Route(path, func(r chi.Router) {
			r.Get("/", routes.list)
			r.Get("/{id}", routes.get)

			r.Group(func(r chi.Router) {
				r.Use(g.authn, g.admin)
				r.Post("/", routes.create)
				r.Put("/{id}", routes.update)
				r.Delete("/{id}", routes.remove)
			})
		})
	}
}
