package book

type CreateBookReq struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Category      string `json:"category"`
	PublishedYear int    `json:"published_year" validate:"omitempty,gte=0"`
	ISBN          string `json:"isbn"`
	CoverURL      string `json:"cover_url"`
	Stock         int64  `json:"stock" validate:"gte=0"`
}

type UpdateBookReq struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Category      *string `json:"category"`
	PublishedYear *int    `json:"published_year"`
	ISBN          *string `json:"isbn"`
	CoverURL      *string `json:"cover_url"`
	Stock         *int64  `json:"stock" validate:"omitempty,gte=0"`
	Available     *int64  `json:"available" validate:"omitempty,gte=0"`
}
