package usecase

import (
	"context"
	"strings"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"

	"go.uber.org/zap"
)

type InquiryService interface {
	// Create records an inquiry from an anonymous visitor.
	Create(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error)
	List(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.InquiryResponse], error)
	ListByProperty(ctx context.Context, propertyID int64) ([]response.InquiryResponse, error)
	GetByID(ctx context.Context, id int64) (*response.InquiryResponse, error)
	Delete(ctx context.Context, id int64) error
}

type inquiryService struct {
	store repository.Store
	log   *zap.Logger
}

func NewInquiryService(store repository.Store, log *zap.Logger) InquiryService {
	return &inquiryService{
		store: store,
		log:   log.With(zap.String("service", "inquiry")),
	}
}

func (s *inquiryService) Create(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	if _, err := mustFind(ctx, uow.Properties(), req.PropertyID, "property"); err != nil {
		return nil, err
	}

	inquiry := &entity.ContactInquiry{
		PropertyID: req.PropertyID,
		Name:       strings.TrimSpace(req.Name),
		Email:      normalizeEmail(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    req.Message,
	}
	if err := uow.Inquiries().Add(ctx, inquiry); err != nil {
		return nil, err
	}

	s.log.Info("Inquiry received", zap.Int64("inquiry_id", inquiry.ID), zap.Int64("property_id", req.PropertyID))
	resp := response.InquiryToResponse(inquiry)
	return &resp, nil
}

func (s *inquiryService) List(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.InquiryResponse], error) {
	page, err := s.store.NewUnitOfWork().Inquiries().GetPaged(ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}
	return toPaginated(page, response.InquiryToResponse), nil
}

func (s *inquiryService) ListByProperty(ctx context.Context, propertyID int64) ([]response.InquiryResponse, error) {
	uow := s.store.NewUnitOfWork()
	if _, err := mustFind(ctx, uow.Properties(), propertyID, "property"); err != nil {
		return nil, err
	}

	inquiries, err := uow.Inquiries().ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return response.InquiriesToResponse(inquiries), nil
}

func (s *inquiryService) GetByID(ctx context.Context, id int64) (*response.InquiryResponse, error) {
	inquiry, err := mustFind(ctx, s.store.NewUnitOfWork().Inquiries(), id, "inquiry")
	if err != nil {
		return nil, err
	}
	resp := response.InquiryToResponse(inquiry)
	return &resp, nil
}

func (s *inquiryService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.NewUnitOfWork().Inquiries().DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("inquiry not found")
	}
	s.log.Info("Inquiry deleted", zap.Int64("inquiry_id", id))
	return nil
}
