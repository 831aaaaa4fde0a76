package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"book-my-property/internal/usecase"
	"book-my-property/internal/usecase/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status     bool              `json:"status"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination json.RawMessage   `json:"pagination"`
	Errors     map[string]string `json:"errors"`
}

type testServices struct {
	auth     *mocks.MockAuthService
	user     *mocks.MockUserService
	property *mocks.MockPropertyService
	catalog  *mocks.MockCatalogService
	image    *mocks.MockImageService
	inquiry  *mocks.MockInquiryService
	wishlist *mocks.MockWishlistService
}

// newTestRouter mounts every handler on a bare chi router, without auth middleware.
func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()

	s := &testServices{
		auth:     new(mocks.MockAuthService),
		user:     new(mocks.MockUserService),
		property: new(mocks.MockPropertyService),
		catalog:  new(mocks.MockCatalogService),
		image:    new(mocks.MockImageService),
		inquiry:  new(mocks.MockInquiryService),
		wishlist: new(mocks.MockWishlistService),
	}
	t.Cleanup(func() {
		s.auth.AssertExpectations(t)
		s.user.AssertExpectations(t)
		s.property.AssertExpectations(t)
		s.catalog.AssertExpectations(t)
		s.image.AssertExpectations(t)
		s.inquiry.AssertExpectations(t)
		s.wishlist.AssertExpectations(t)
	})

	h := NewHandler(&usecase.Service{
		Auth:     s.auth,
		User:     s.user,
		Property: s.property,
		Catalog:  s.catalog,
		Image:    s.image,
		Inquiry:  s.inquiry,
		Wishlist: s.wishlist,
	}, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/auth/register", h.Auth.Register)
	r.Post("/api/auth/login", h.Auth.Login)

	r.Get("/api/properties", h.Property.GetProperties)
	r.Get("/api/properties/search", h.Property.SearchProperties)
	r.Get("/api/properties/{id}", h.Property.GetProperty)
	r.Post("/api/properties", h.Property.CreateProperty)
	r.Delete("/api/properties/{id}", h.Property.DeleteProperty)
	r.Put("/api/properties/{id}/amenities", h.Property.SetAmenities)
	r.Get("/api/properties/{id}/images", h.Image.GetPropertyImages)

	r.Get("/api/locations", h.Catalog.GetLocations)
	r.Post("/api/locations", h.Catalog.CreateLocation)

	r.Post("/api/inquiries", h.Inquiry.CreateInquiry)

	r.Get("/api/wishlist", h.Wishlist.GetWishlist)
	r.Post("/api/wishlist/{propertyId}", h.Wishlist.AddToWishlist)
	r.Delete("/api/wishlist/{propertyId}", h.Wishlist.RemoveFromWishlist)

	r.Get("/api/users", h.User.GetAllUsers)
	r.Patch("/api/users/{id}/active", h.User.SetActive)
	r.Delete("/api/users/{id}", h.User.DeleteUser)

	return r, s
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}
