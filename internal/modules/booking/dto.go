package booking

import (
	"localguide/internal/domain"
	"localguide/internal/pkg/money"
)

type CreateBookingRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Seats   int    `json:"seats" binding:"required"`
}

// BookingView is a Booking plus the display form of its total, so clients
// never do money math on their side.
type BookingView struct {
	domain.Booking
	TotalFormatted string `json:"total_formatted"`
}

func view(b *domain.Booking) BookingView {
	return BookingView{
		Booking:        *b,
		TotalFormatted: money.Format(b.TotalCents, b.Currency),
	}
}

func views(bookings []domain.Booking) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		out = append(out, view(&bookings[i]))
	}
	return out
}
