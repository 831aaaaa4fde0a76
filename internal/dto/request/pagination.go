package request

import "book-my-property/pkg/utils"

// PaginatedRequest carries the page and per_page query parameters as sent.
// Out of range values are rejected by the repository, not clamped.
type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func NewPaginatedRequest(page, perPage string) PaginatedRequest {
	return PaginatedRequest{
		Page:    utils.ParseInt(page, 1),
		PerPage: utils.ParseInt(perPage, utils.DefaultPageSize),
	}
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.PerPage)
}
