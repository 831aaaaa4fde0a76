package usecase

import (
	"context"
	"time"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/token"
	"book-my-property/pkg/utils"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(id token.Identity) (string, time.Time, error)
}

type Service struct {
	Auth     AuthService
	User     UserService
	Property PropertyService
	Catalog  CatalogService
	Image    ImageService
	Inquiry  InquiryService
	Wishlist WishlistService
}

func NewService(store repository.Store, tokens TokenIssuer, config *utils.Config, log *zap.Logger) (*Service, error) {
	auth, err := NewAuthService(store, tokens, config.Auth, log)
	if err != nil {
		return nil, err
	}

	return &Service{
		Auth:     auth,
		User:     NewUserService(store, log),
		Property: NewPropertyService(store, log),
		Catalog:  NewCatalogService(store, log),
		Image:    NewImageService(store, log),
		Inquiry:  NewInquiryService(store, log),
		Wishlist: NewWishlistService(store, log),
	}, nil
}

// validate turns struct tag failures into an InvalidArgument error.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation(errs)
	}
	return nil
}

// caller returns the authenticated user id and role from ctx.
func caller(ctx context.Context) (int64, string, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, "", apperr.Unauthorized("authentication required")
	}
	role, _ := utils.GetRoleFromContext(ctx)
	return userID, role, nil
}

// authorizeOwner lets admins and the owning user through.
func authorizeOwner(ctx context.Context, ownerID int64) error {
	userID, role, err := caller(ctx)
	if err != nil {
		return err
	}
	if role == entity.RoleAdmin || userID == ownerID {
		return nil
	}
	return apperr.Forbidden("only the owner or an admin can change this resource")
}

func toPaginated[E any, R any](page *repository.Page[*E], fn func(*E) R) *response.PaginatedResponse[R] {
	items := lo.Map(page.Items, func(e *E, _ int) R { return fn(e) })
	return response.NewPaginatedResponse(items, page.PageNumber, page.PageSize, page.Total)
}

// mustFind loads a non-deleted record or reports NotFound.
func mustFind[T any](ctx context.Context, repo repository.SoftDeleteRepository[T], id int64, name string) (*T, error) {
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("%s not found", name)
	}
	return e, nil
}
