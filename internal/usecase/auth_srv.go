package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/token"
	"book-my-property/pkg/utils"

	"go.uber.org/zap"
)

const (
	ReasonEmailTaken         = "email already registered"
	ReasonInvalidCredentials = "invalid email or password"
	ReasonAccountInactive    = "account inactive"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResult, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResult, error)
}

type authService struct {
	store  repository.Store
	tokens TokenIssuer
	config utils.AuthConfig
	// compared against when the email is unknown so both failures cost one bcrypt check
	dummyHash string
	log       *zap.Logger
}

func NewAuthService(
	store repository.Store,
	tokens TokenIssuer,
	config utils.AuthConfig,
	log *zap.Logger,
) (AuthService, error) {
	dummy, err := utils.HashPassword("book-my-property", config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("init auth service: %w", err)
	}

	return &authService{
		store:     store,
		tokens:    tokens,
		config:    config,
		dummyHash: dummy,
		log:       log.With(zap.String("service", "auth")),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResult, error) {
	// 1. Validate input
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Any("errors", apperr.FieldsOf(err)))
		return nil, err
	}

	email := normalizeEmail(req.Email)
	uow := s.store.NewUnitOfWork()

	// 2. Check the email is free
	existing, err := uow.Users().FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		s.log.Info("Register rejected, email taken", zap.Int64("user_id", existing.ID))
		return response.AuthFailed(ReasonEmailTaken), nil
	}

	// 3. Resolve the default role
	role, err := uow.Roles().FindByName(ctx, s.config.DefaultRole)
	if err != nil {
		return nil, fmt.Errorf("find default role: %w", err)
	}
	if role == nil {
		return nil, apperr.Infrastructure("default role is not configured",
			fmt.Errorf("role %q not found", s.config.DefaultRole))
	}

	// 4. Hash password
	hash, err := utils.HashPassword(req.Password, s.config.BcryptCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, apperr.Validation(map[string]string{"password": "Maximum size is 72 bytes"})
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Save user
	user := &entity.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		RoleID:       role.ID,
		IsActive:     true,
	}
	if err := uow.Users().Add(ctx, user); err != nil {
		// a concurrent register won the unique index
		if apperr.Is(err, apperr.KindConflict) {
			s.log.Info("Register lost race on email")
			return response.AuthFailed(ReasonEmailTaken), nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	result, err := s.issue(user, role.Name)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.Int64("user_id", user.ID), zap.String("role", role.Name))
	return result, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResult, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Any("errors", apperr.FieldsOf(err)))
		return nil, err
	}

	uow := s.store.NewUnitOfWork()

	user, err := uow.Users().FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		utils.CheckPasswordHash(req.Password, s.dummyHash)
		s.log.Warn("Login failed")
		return response.AuthFailed(ReasonInvalidCredentials), nil
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed", zap.Int64("user_id", user.ID))
		return response.AuthFailed(ReasonInvalidCredentials), nil
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.Int64("user_id", user.ID))
		return response.AuthFailed(ReasonAccountInactive), nil
	}

	role, err := uow.Roles().GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("find role: %w", err)
	}
	if role == nil {
		return nil, apperr.Infrastructure("user role is missing",
			fmt.Errorf("role %d not found for user %d", user.RoleID, user.ID))
	}

	result, err := s.issue(user, role.Name)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))
	return result, nil
}

func (s *authService) issue(user *entity.User, role string) (*response.AuthResult, error) {
	raw, expiresAt, err := s.tokens.Issue(token.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FullName(),
		Role:   role,
	})
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return response.AuthSucceeded(user, role, raw, expiresAt), nil
}
