package entity

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects one page of a listing. Pages are 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies the default page and size and caps the size. The page is
// capped so that Offset cannot overflow; such a page is always past the end.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}

	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes a returned page.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes Pages as ceil(total/limit).
func NewPagination(req PageRequest, total int64) Pagination {
	var pages int64
	if req.Limit > 0 {
		pages = (total + int64(req.Limit) - 1) / int64(req.Limit)
	}

	return Pagination{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
		Pages: pages,
	}
}

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	TotalUsers       int64
	TotalProducts    int64
	TotalCategories  int64
	PendingProducts  int64
	PendingMerchants int64
	TotalOrders      int64
	PendingOrders    int64
	TotalRevenue     float64
}
