package service

import "math"

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// MaxPage keeps Page*Size within a signed 32-bit offset.
	MaxPage = math.MaxInt32 / maxPageSize
)

// ClampPage normalises listing parameters: negative pages become 0, pages past
// MaxPage are capped and sizes outside (0, 100] fall back to 10.
func ClampPage(page, size int) PageQuery {
	if page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}

	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}

	return PageQuery{Page: page, Size: size}
}

func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

func (q PageQuery) TotalPages(total int64) int {
	if q.Size <= 0 {
		return 0
	}
	return int((total + int64(q.Size) - 1) / int64(q.Size))
}
