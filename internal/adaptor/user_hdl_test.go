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

func TestUserHandlerGetAllUsers(t *testing.T) {
	t.Run("include deleted", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.user.On("GetAllUsers", mock.Anything, request.PaginatedRequest{Page: 1, PerPage: 10}, true).
			Return(response.NewPaginatedResponse([]response.UserResponse{{ID: 1, IsDeleted: true}}, 1, 10, 1), nil)

		rec, env := do(t, h, http.MethodGet, "/api/users?include_deleted=true", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"is_deleted":true`)
	})

	t.Run("bad flag", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rec, env := do(t, h, http.MethodGet, "/api/users?include_deleted=maybe", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Errors, "include_deleted")
	})

	t.Run("page rejected", func(t *testing.T) {
		h, s := newTestRouter(t)
		s.user.On("GetAllUsers", mock.Anything, request.PaginatedRequest{Page: 1, PerPage: 500}, false).
			Return(nil, apperr.InvalidArgument("per_page must be between 1 and 100"))

		rec, _ := do(t, h, http.MethodGet, "/api/users?per_page=500", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandlerSetActive(t *testing.T) {
	h, s := newTestRouter(t)
	s.user.On("SetActive", mock.Anything, int64(5), mock.MatchedBy(func(req *request.SetActiveRequest) bool {
		return req.IsActive != nil && !*req.IsActive
	})).Return(&response.UserResponse{ID: 5, IsActive: false}, nil)

	rec, env := do(t, h, http.MethodPatch, "/api/users/5/active", `{"is_active":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"is_active":false`)
}

func TestUserHandlerDeleteSelf(t *testing.T) {
	h, s := newTestRouter(t)
	s.user.On("DeleteUser", mock.Anything, int64(1)).Return(apperr.InvalidArgument("cannot delete your own account"))

	rec, env := do(t, h, http.MethodDelete, "/api/users/1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "cannot delete your own account", env.Message)
}
