package models

import (
	"math"
	"strings"
)

const MaxPageLimit = 500

// MaxPage keeps (Page-1)*Limit inside a 32-bit int.
const MaxPage = math.MaxInt32 / MaxPageLimit

// PaginationParams selects one page of submission history.
type PaginationParams struct {
	Page  int    `json:"page" query:"page" example:"1"`
	Limit int    `json:"limit" query:"limit" example:"20"`
	Role  string `json:"role" query:"role" example:"Software Developer"` // exact role name, case-insensitive
	Order string `json:"order" query:"order" example:"desc"`             // by createdAt (asc/desc)
}

type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 20,
		Order: "desc",
	}
}

// Normalize clamps out-of-range values to the defaults.
func (p *PaginationParams) Normalize() {
	def := DefaultPagination()
	if p.Page < 1 {
		p.Page = def.Page
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = def.Limit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	p.Role = strings.TrimSpace(p.Role)
	if p.Order != "asc" {
		p.Order = def.Order
	}
}

func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip is the number of rows before the page. It saturates at
// math.MaxInt64 instead of wrapping.
func (p *PaginationParams) GetSkip() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	pages, limit := int64(p.Page-1), int64(p.Limit)
	if pages > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return pages * limit
}

// SortDirection is 1 for asc and -1 for desc.
func (p *PaginationParams) SortDirection() int {
	if p.Order == "asc" {
		return 1
	}
	return -1
}
