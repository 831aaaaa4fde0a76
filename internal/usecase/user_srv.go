package usecase

import (
	"context"
	"fmt"
	"strings"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req request.PaginatedRequest, includeDeleted bool) (*response.PaginatedResponse[response.UserResponse], error)
	GetUser(ctx context.Context, id int64) (*response.UserResponse, error)
	SetActive(ctx context.Context, id int64, req *request.SetActiveRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	store repository.Store
	log   *zap.Logger
}

func NewUserService(store repository.Store, log *zap.Logger) UserService {
	return &userService{
		store: store,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context) (*response.UserResponse, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	user, err := mustFind(ctx, uow.Users(), userID, "user")
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if err := uow.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("Profile updated", zap.Int64("user_id", userID))
	return s.toResponse(ctx, uow, user)
}

// GetAllUsers pages through users. includeDeleted is an administrative view
// that also returns soft-deleted accounts.
func (s *userService) GetAllUsers(ctx context.Context, req request.PaginatedRequest, includeDeleted bool) (*response.PaginatedResponse[response.UserResponse], error) {
	uow := s.store.NewUnitOfWork()

	var page *repository.Page[*entity.User]
	if includeDeleted {
		if err := repository.ValidatePage(req.Page, req.PerPage); err != nil {
			return nil, err
		}
		all, err := uow.Users().GetAllIncludingDeleted(ctx)
		if err != nil {
			return nil, err
		}
		offset := req.Offset()
		page = repository.NewPage(lo.Slice(all, offset, offset+req.PerPage), req.Page, req.PerPage, int64(len(all)))
	} else {
		var err error
		page, err = uow.Users().GetPaged(ctx, req.Page, req.PerPage)
		if err != nil {
			return nil, err
		}
	}

	roles, err := s.roleNames(ctx, uow)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Users retrieved",
		zap.Int("count", len(page.Items)),
		zap.Int64("total", page.Total),
		zap.Bool("include_deleted", includeDeleted),
	)

	return toPaginated(page, func(u *entity.User) response.UserResponse {
		return response.UserToResponse(u, roles[u.RoleID])
	}), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*response.UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	user, err := mustFind(ctx, uow.Users(), id, "user")
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, uow, user)
}

func (s *userService) SetActive(ctx context.Context, id int64, req *request.SetActiveRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	user, err := mustFind(ctx, uow.Users(), id, "user")
	if err != nil {
		return nil, err
	}

	user.IsActive = *req.IsActive
	if err := uow.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User activation changed", zap.Int64("user_id", id), zap.Bool("is_active", user.IsActive))
	return s.toResponse(ctx, uow, user)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	callerID, _, err := caller(ctx)
	if err != nil {
		return err
	}
	if callerID == id {
		return apperr.InvalidArgument("you cannot delete your own account")
	}

	deleted, err := s.store.NewUnitOfWork().Users().DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("user not found")
	}

	s.log.Info("User deleted", zap.Int64("user_id", id), zap.Int64("deleted_by", callerID))
	return nil
}

func (s *userService) roleNames(ctx context.Context, uow repository.UnitOfWork) (map[int64]string, error) {
	roles, err := uow.Roles().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return lo.SliceToMap(roles, func(r *entity.Role) (int64, string) { return r.ID, r.Name }), nil
}

func (s *userService) toResponse(ctx context.Context, uow repository.UnitOfWork, user *entity.User) (*response.UserResponse, error) {
	role, err := uow.Roles().GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("find role: %w", err)
	}

	name := ""
	if role != nil {
		name = role.Name
	}
	resp := response.UserToResponse(user, name)
	return &resp, nil
}
