package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository/mocks"
	"book-my-property/internal/dto/request"
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var mockCtx = mock.Anything

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockStore) {
	t.Helper()
	store := mocks.NewMockStore()
	svc, err := NewAuthService(store, newTestTokens(t), utils.AuthConfig{
		DefaultRole: entity.RoleUser,
		BcryptCost:  bcrypt.MinCost,
	}, zap.NewNop())
	require.NoError(t, err)
	return svc, store
}

func registerRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:       "Jane.Doe@Example.com",
		Password:    "secret123",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "5550101234",
	}
}

func userRole() *entity.Role {
	return &entity.Role{Base: entity.Base{ID: 3}, Name: entity.RoleUser}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues token", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		uow := store.UoW

		uow.UserRepo.On("FindByEmail", mockCtx, "jane.doe@example.com").Return(nil, nil)
		uow.RoleRepo.On("FindByName", mockCtx, entity.RoleUser).Return(userRole(), nil)
		uow.UserRepo.On("Add", mockCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "jane.doe@example.com" &&
				u.RoleID == 3 &&
				u.IsActive &&
				u.PasswordHash != "secret123" &&
				utils.CheckPasswordHash("secret123", u.PasswordHash)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 21
		}).Return(nil)

		result, err := svc.Register(ctx, registerRequest())

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Token)
		require.NotNil(t, result.ExpiresAt)
		assert.Equal(t, testNow.Add(time.Hour), *result.ExpiresAt)
		require.NotNil(t, result.User)
		assert.Equal(t, int64(21), result.User.ID)
		assert.Equal(t, entity.RoleUser, result.User.Role)
		uow.AssertRepositories(t)
	})

	t.Run("duplicate email is a result, not an error", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		uow := store.UoW

		existing := &entity.User{Base: entity.Base{ID: 4}, Email: "jane.doe@example.com"}
		uow.UserRepo.On("FindByEmail", mockCtx, "jane.doe@example.com").Return(existing, nil)

		result, err := svc.Register(ctx, registerRequest())

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, ReasonEmailTaken, result.Reason)
		assert.Empty(t, result.Token)
		uow.UserRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("lost race on unique index", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		uow := store.UoW

		uow.UserRepo.On("FindByEmail", mockCtx, "jane.doe@example.com").Return(nil, nil)
		uow.RoleRepo.On("FindByName", mockCtx, entity.RoleUser).Return(userRole(), nil)
		uow.UserRepo.On("Add", mockCtx, mock.Anything).
			Return(apperr.Wrap(apperr.KindConflict, "user already exists", errors.New("23505")))

		result, err := svc.Register(ctx, registerRequest())

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, ReasonEmailTaken, result.Reason)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		req := registerRequest()
		req.Email = "not-an-email"
		req.Password = "123"

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
		fields := apperr.FieldsOf(err)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("multibyte password over 72 bytes is invalid", func(t *testing.T) {
		svc, store := newTestAuthService(t)

		req := registerRequest()
		req.Password = strings.Repeat("密", 30)

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
		assert.Equal(t, "Maximum size is 72 bytes", apperr.FieldsOf(err)["password"])
		store.UoW.UserRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("store failure is an error", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		store.UoW.UserRepo.On("FindByEmail", mockCtx, mock.Anything).Return(nil, errors.New("connection refused"))

		result, err := svc.Register(ctx, registerRequest())

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, apperr.KindInfrastructure, apperr.KindOf(err))
	})

	t.Run("missing default role", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		store.UoW.UserRepo.On("FindByEmail", mockCtx, mock.Anything).Return(nil, nil)
		store.UoW.RoleRepo.On("FindByName", mockCtx, entity.RoleUser).Return(nil, nil)

		result, err := svc.Register(ctx, registerRequest())

		assert.Nil(t, result)
		assert.Equal(t, apperr.KindInfrastructure, apperr.KindOf(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	activeUser := func() *entity.User {
		return &entity.User{
			Base:         entity.Base{ID: 8},
			FirstName:    "Jane",
			LastName:     "Doe",
			Email:        "jane.doe@example.com",
			PasswordHash: hash,
			RoleID:       3,
			IsActive:     true,
		}
	}

	t.Run("success", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		store.UoW.UserRepo.On("FindByEmail", mockCtx, "jane.doe@example.com").Return(activeUser(), nil)
		store.UoW.RoleRepo.On("GetByID", mockCtx, int64(3)).Return(userRole(), nil)

		result, err := svc.Login(ctx, &request.LoginRequest{Email: " JANE.doe@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Token)

		claims, err := newTestTokens(t).Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(8), claims.UserID)
		assert.Equal(t, "Jane Doe", claims.Name)
		assert.Equal(t, entity.RoleUser, claims.Role)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		store.UoW.UserRepo.On("FindByEmail", mockCtx, "ghost@example.com").Return(nil, nil)
		store.UoW.UserRepo.On("FindByEmail", mockCtx, "jane.doe@example.com").Return(activeUser(), nil)

		unknown, err := svc.Login(ctx, &request.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
		require.NoError(t, err)
		wrong, err := svc.Login(ctx, &request.LoginRequest{Email: "jane.doe@example.com", Password: "wrong-password"})
		require.NoError(t, err)

		assert.Equal(t, unknown, wrong)
		assert.False(t, unknown.Success)
		assert.Equal(t, ReasonInvalidCredentials, unknown.Reason)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		user := activeUser()
		user.IsActive = false
		store.UoW.UserRepo.On("FindByEmail", mockCtx, "jane.doe@example.com").Return(user, nil)

		result, err := svc.Login(ctx, &request.LoginRequest{Email: "jane.doe@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, ReasonAccountInactive, result.Reason)
		assert.Empty(t, result.Token)
	})

	t.Run("inactive account with wrong password is not revealed", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		user := activeUser()
		user.IsActive = false
		store.UoW.UserRepo.On("FindByEmail", mockCtx, "jane.doe@example.com").Return(user, nil)

		result, err := svc.Login(ctx, &request.LoginRequest{Email: "jane.doe@example.com", Password: "nope-nope"})

		require.NoError(t, err)
		assert.Equal(t, ReasonInvalidCredentials, result.Reason)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newTestAuthService(t)
		store.UoW.UserRepo.On("FindByEmail", mockCtx, mock.Anything).Return(nil, errors.New("timeout"))

		result, err := svc.Login(ctx, &request.LoginRequest{Email: "jane.doe@example.com", Password: "secret123"})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
