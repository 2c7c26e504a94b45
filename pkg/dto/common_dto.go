package dto

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// PageQuery is bound from ?page=&per_page=. Zero values mean "not supplied".
type PageQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

func (q PageQuery) Requested() bool {
	return q.Page > 0 || q.PerPage > 0
}

// Normalize fills defaults and clamps per_page.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	return q
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

type Page[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

type IDResponse struct {
	ID uint `json:"id"`
}
