package adaptor

import (
	"encoding/json"
	"net/http"
	"testing"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPropertyHandlerGetProperties(t *testing.T) {
	h, s := newTestRouter(t)
	page := response.NewPaginatedResponse([]response.PropertyResponse{{ID: 1, Title: "Loft"}}, 2, 5, 6)
	s.property.On("ListAvailable", mock.Anything, request.PaginatedRequest{Page: 2, PerPage: 5}).
		Return(page, nil)

	rec, env := do(t, h, http.MethodGet, "/api/properties?page=2&per_page=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var meta response.PaginationMeta
	require.NoError(t, json.Unmarshal(env.Pagination, &meta))
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, int64(6), meta.Total)
}

func TestPropertyHandlerSearch(t *testing.T) {
	t.Run("parses filters", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.property.On("Search", mock.Anything, mock.MatchedBy(func(req *request.SearchPropertyRequest) bool {
			return req.Location != nil && *req.Location == "austin" &&
				req.PropertyTypeID != nil && *req.PropertyTypeID == 2 &&
				req.MinPrice != nil && req.MinPrice.Equal(decimal.RequireFromString("100000.50")) &&
				req.MaxPrice == nil &&
				req.Page == 1 && req.PerPage == 10
		})).Return(response.NewPaginatedResponse[response.PropertyResponse](nil, 1, 10, 0), nil)

		rec, env := do(t, h, http.MethodGet, "/api/properties/search?location=+austin+&property_type=2&min_price=100000.50", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("blank location is no filter", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.property.On("Search", mock.Anything, mock.MatchedBy(func(req *request.SearchPropertyRequest) bool {
			return req.Location == nil
		})).Return(response.NewPaginatedResponse[response.PropertyResponse](nil, 1, 10, 0), nil)

		rec, _ := do(t, h, http.MethodGet, "/api/properties/search?location=%20%20", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad numbers", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rec, env := do(t, h, http.MethodGet, "/api/properties/search?property_type=flat&max_price=lots", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Errors, "property_type")
		assert.Contains(t, env.Errors, "max_price")
	})

	t.Run("inverted range from service", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.property.On("Search", mock.Anything, mock.Anything).
			Return(nil, apperr.InvalidArgument("min_price must not exceed max_price"))

		rec, _ := do(t, h, http.MethodGet, "/api/properties/search?min_price=10&max_price=5", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPropertyHandlerGetProperty(t *testing.T) {
	h, s := newTestRouter(t)
	s.property.On("GetByID", mock.Anything, int64(9)).Return(nil, apperr.NotFound("property not found"))

	rec, env := do(t, h, http.MethodGet, "/api/properties/9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "property not found", env.Message)
}

func TestPropertyHandlerCreate(t *testing.T) {
	h, s := newTestRouter(t)
	s.property.On("Create", mock.Anything, mock.MatchedBy(func(req *request.CreatePropertyRequest) bool {
		return req.Title == "Loft" && req.Price.Equal(decimal.NewFromInt(250000)) && len(req.AmenityIDs) == 2
	})).Return(&response.PropertyResponse{ID: 11, Title: "Loft"}, nil)

	body := `{"title":"Loft","description":"Sunny","price":"250000","property_type_id":1,"location_id":2,
		"area_sq_ft":900,"bedrooms":2,"bathrooms":1,"amenity_ids":[1,3]}`
	rec, env := do(t, h, http.MethodPost, "/api/properties", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"id":11`)
}

func TestPropertyHandlerDeleteForbidden(t *testing.T) {
	h, s := newTestRouter(t)
	s.property.On("Delete", mock.Anything, int64(4)).Return(apperr.Forbidden("you do not own this property"))

	rec, _ := do(t, h, http.MethodDelete, "/api/properties/4", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPropertyHandlerSetAmenities(t *testing.T) {
	h, s := newTestRouter(t)
	s.property.On("SetAmenities", mock.Anything, int64(4), &request.SetAmenitiesRequest{AmenityIDs: []int64{2, 5}}).
		Return([]response.AmenityResponse{{ID: 2, Name: "Pool"}, {ID: 5, Name: "Gym"}}, nil)

	rec, env := do(t, h, http.MethodPut, "/api/properties/4/amenities", `{"amenity_ids":[2,5]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "Pool")
}

func TestImageHandlerGetPropertyImages(t *testing.T) {
	h, s := newTestRouter(t)
	s.image.On("ListByProperty", mock.Anything, int64(4)).
		Return([]response.ImageResponse{{ID: 1, PropertyID: 4, IsPrimary: true}}, nil)

	rec, env := do(t, h, http.MethodGet, "/api/properties/4/images", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"is_primary":true`)
}
