package application

import (
	"context"
	"strings"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

// ServiceRepository abstracts read access to the services collection.
// ServiceRepository は公開コンテキストでサービスを読み取るためのポート。
type ServiceRepository interface {
	// FindPage runs the count and the windowed fetch against the identical
	// filter predicate and returns both the page and the unpaginated total.
	FindPage(ctx context.Context, filter ServiceFilter, sort []SortKey, paging Paging) ([]domain.Service, int64, error)
	// FindAll returns every matching record in sort order, with no window.
	FindAll(ctx context.Context, filter ServiceFilter, sort []SortKey) ([]domain.Service, error)
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ServiceFilter expresses search criteria for services. A field contributes
// to the predicate only when non-empty after trimming; the zero value matches
// every record.
type ServiceFilter struct {
	Query    string
	City     string
	Category string
}

// NewServiceFilter trims the raw query parameters into a filter.
func NewServiceFilter(query, city, category string) ServiceFilter {
	return ServiceFilter{
		Query:    strings.TrimSpace(query),
		City:     strings.TrimSpace(city),
		Category: strings.TrimSpace(category),
	}
}

// SortField names a sortable column of the service record.
type SortField string

const (
	SortByName      SortField = "name"
	SortByCity      SortField = "city"
	SortByCategory  SortField = "category"
	SortByCreatedAt SortField = "createdAt"
)

// SortKey is one (field, direction) component of an ordering.
type SortKey struct {
	Field      SortField
	Descending bool
}

// ResolveSort maps the client-chosen sort key and direction onto an ordered
// key list. Unrecognized values fall back to createdAt/desc rather than
// erroring. City and category are not unique, so they carry a secondary
// ascending-name key to keep the ordering total and pagination stable.
func ResolveSort(sortBy, sortDirection string) []SortKey {
	descending := true
	if strings.EqualFold(strings.TrimSpace(sortDirection), "asc") {
		descending = false
	}

	switch strings.TrimSpace(sortBy) {
	case "name":
		return []SortKey{{Field: SortByName, Descending: descending}}
	case "city":
		return []SortKey{{Field: SortByCity, Descending: descending}, {Field: SortByName}}
	case "category":
		return []SortKey{{Field: SortByCategory, Descending: descending}, {Field: SortByName}}
	default:
		return []SortKey{{Field: SortByCreatedAt, Descending: descending}}
	}
}

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// Paging is a normalized pagination window. Construct it with NewPaging so
// the bounds always hold.
type Paging struct {
	Page     int
	PageSize int
}

// NewPaging clamps page and pageSize into their valid ranges. It never
// errors: non-positive pages become 1 and pageSize is clamped to [1, 100].
func NewPaging(page, pageSize int) Paging {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return Paging{Page: page, PageSize: pageSize}
}

// Skip returns the offset of the window.
func (p Paging) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// PageMeta describes a page of results.
type PageMeta struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// Meta derives the page metadata for a total count. totalPages is always at
// least 1 so an empty result still renders as a single empty page.
func (p Paging) Meta(total int64) PageMeta {
	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	return PageMeta{Page: p.Page, PageSize: p.PageSize, Total: total, TotalPages: totalPages}
}

// ListResult is one page of services plus its metadata.
type ListResult struct {
	Items []domain.Service
	Meta  PageMeta
}

// ServiceQueryService describes the read use-cases.
// ServiceQueryService はサービス参照ユースケースを提供するリーダーモデル。
type ServiceQueryService interface {
	List(ctx context.Context, filter ServiceFilter, sort []SortKey, paging Paging) (ListResult, error)
	Export(ctx context.Context, filter ServiceFilter, sort []SortKey) ([]domain.Service, error)
	Detail(ctx context.Context, id int64) (*domain.Service, error)
}
