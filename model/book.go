package model

// Book is a catalog entry. Available counts currently lendable copies and
// must stay within [0, Stock]; only the borrowing service mutates it.
type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	PublishedYear int    `json:"published_year"`
	ISBN          string `json:"isbn"`
	CoverURL      string `json:"cover_url,omitempty"`
	Stock         int64  `json:"stock"`
	Available     int64  `json:"available"`
}

// BookFilter carries the optional catalog list filters.
type BookFilter struct {
	Title         string
	Author        string
	Category      string
	PublishedYear int
}
