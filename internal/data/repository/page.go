package repository

import (
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/utils"
)

// Page is one slice of an ordered result plus the total matching count.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	Total      int64
}

func NewPage[T any](items []T, pageNumber, pageSize int, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, PageNumber: pageNumber, PageSize: pageSize, Total: total}
}

func (p *Page[T]) TotalPages() int {
	return utils.CalculateTotalPages(p.Total, p.PageSize)
}

// ValidatePage rejects pagination arguments before any query runs.
func ValidatePage(pageNumber, pageSize int) error {
	if pageNumber < 1 {
		return apperr.InvalidArgument("page number must be at least 1")
	}
	if pageSize < 1 || pageSize > utils.MaxPageSize {
		return apperr.InvalidArgument("page size must be between 1 and %d", utils.MaxPageSize)
	}
	return nil
}
