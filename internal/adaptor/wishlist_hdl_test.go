package adaptor

import (
	"net/http"
	"testing"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWishlistHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.wishlist.On("List", mock.Anything).
			Return([]response.WishlistResponse{{ID: 1, PropertyID: 4, PropertyTitle: "Loft"}}, nil)

		rec, env := do(t, h, http.MethodGet, "/api/wishlist", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), "Loft")
	})

	t.Run("add", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.wishlist.On("Add", mock.Anything, int64(4)).Return(nil)

		rec, _ := do(t, h, http.MethodPost, "/api/wishlist/4", "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("add twice", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.wishlist.On("Add", mock.Anything, int64(4)).Return(apperr.Conflict("property already in wishlist"))

		rec, _ := do(t, h, http.MethodPost, "/api/wishlist/4", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("remove missing", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.wishlist.On("Remove", mock.Anything, int64(4)).Return(apperr.NotFound("property not in wishlist"))

		rec, _ := do(t, h, http.MethodDelete, "/api/wishlist/4", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.wishlist.On("List", mock.Anything).Return(nil, apperr.Unauthorized("authentication required"))

		rec, _ := do(t, h, http.MethodGet, "/api/wishlist", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestInquiryHandlerCreate(t *testing.T) {
	h, s := newTestRouter(t)
	s.inquiry.On("Create", mock.Anything, &request.CreateInquiryRequest{
		PropertyID: 4,
		Name:       "Sam",
		Email:      "sam@example.com",
		Message:    "Is it still available?",
	}).Return(&response.InquiryResponse{ID: 8, PropertyID: 4}, nil)

	body := `{"property_id":4,"name":"Sam","email":"sam@example.com","message":"Is it still available?"}`
	rec, env := do(t, h, http.MethodPost, "/api/inquiries", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Status)
}
