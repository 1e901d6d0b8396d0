package domain

// Pagination defaults applied when a caller omits or passes non-positive
// values. No upper bound is enforced on the page size.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is one page of results plus pagination metadata.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NormalizePage clamps page and limit to their defaults. Defaulting is
// idempotent: already-valid values pass through unchanged.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// NewPage assembles a Page from one page of data and the unpaginated total.
// TotalPages is ceil(total/limit), 0 when total is 0.
func NewPage[T any](data []T, total int64, page, limit int) *Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Page[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
