package response

type PaginatedResponse[T any] struct {
	Meta PageMeta `json:"meta"`
	Data []T      `json:"data"`
}

// PageMeta is derived, never stored. TotalPages is 0 for an empty result
// set, which also forces HasNext false on page 1.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPageMeta(total int64, page, perPage int) PageMeta {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return PageMeta{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Meta: NewPageMeta(total, page, perPage),
		Data: data,
	}
}
