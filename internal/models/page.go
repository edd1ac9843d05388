package models

import (
	"fmt"
	"strings"
)

// SortDirection orders a sort term.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOrder is a single (field, direction) sort term expressed in API field names.
type SortOrder struct {
	Field     string
	Direction SortDirection
}

// String renders the term as "field,direction".
func (o SortOrder) String() string {
	return o.Field + "," + string(o.Direction)
}

// ParseSortOrder parses "field" or "field,asc|desc". The direction defaults to asc.
func ParseSortOrder(token string) (SortOrder, error) {
	parts := strings.Split(token, ",")
	field := strings.TrimSpace(parts[0])
	if field == "" || len(parts) > 2 {
		return SortOrder{}, fmt.Errorf("invalid sort %q", token)
	}
	order := SortOrder{Field: field, Direction: SortAsc}
	if len(parts) == 2 {
		switch SortDirection(strings.ToLower(strings.TrimSpace(parts[1]))) {
		case SortAsc:
		case SortDesc:
			order.Direction = SortDesc
		default:
			return SortOrder{}, fmt.Errorf("invalid sort direction in %q", token)
		}
	}
	return order, nil
}

// PageRequest asks for one zero-based page of a result set.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset is the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// SortTokens renders the sort terms as "field,direction" strings.
func (p PageRequest) SortTokens() []string {
	tokens := make([]string, 0, len(p.Sort))
	for _, order := range p.Sort {
		tokens = append(tokens, order.String())
	}
	return tokens
}

// Page is a bounded slice of an ordered result set plus its position.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
	Sort          []SortOrder
}

// NewPage assembles a page from query results.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{Content: content, Number: req.Page, Size: req.Size, TotalElements: total, Sort: req.Sort}
}

// TotalPages is the number of pages of Size needed for TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// First reports whether this is the first page.
func (p Page[T]) First() bool {
	return p.Number == 0
}

// Last reports whether no page follows this one.
func (p Page[T]) Last() bool {
	return p.Number+1 >= p.TotalPages()
}

// Meta returns the position metadata of the page.
func (p Page[T]) Meta() PageMeta {
	return PageMeta{
		Page:          p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages(),
		First:         p.First(),
		Last:          p.Last(),
		Sort:          PageRequest{Sort: p.Sort}.SortTokens(),
	}
}

// PageMeta is the pagination block of a list response.
type PageMeta struct {
	Page          int      `json:"page"`
	Size          int      `json:"size"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	First         bool     `json:"first"`
	Last          bool     `json:"last"`
	Sort          []string `json:"sort"`
}

// Paging defaults applied when a request leaves them unset.
const (
	DefaultPageSize  = 20
	DefaultSortField = "createdAt"
)

// WithDefaults fills a negative page, a non-positive size and an empty sort with the
// defaults, newest first.
func (p PageRequest) WithDefaults() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if len(p.Sort) == 0 {
		p.Sort = []SortOrder{{Field: DefaultSortField, Direction: SortDesc}}
	}
	return p
}
