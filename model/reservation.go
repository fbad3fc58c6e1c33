package model

import "time"

type ReservationStatus string

const (
	ReservationWaiting   ReservationStatus = "WAITING"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

// Reservation is a wait-list entry for a book with zero availability.
// A user holds at most one WAITING reservation per book.
type Reservation struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	BookID    int64             `json:"book_id"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// ReservationRow joins the book title for list responses.
type ReservationRow struct {
	Reservation
	BookTitle string `json:"book_title"`
}
