package catalog

import (
	"time"

	"localguide/internal/domain"
)

type CreateEventRequest struct {
	Title           string                 `json:"title" binding:"required,min=3"`
	Description     string                 `json:"description"`
	Category        string                 `json:"category"`
	City            string                 `json:"city" binding:"required"`
	Lat             float64                `json:"lat"`
	Lng             float64                `json:"lng"`
	StartTime       time.Time              `json:"start_time" binding:"required"`
	EndTime         time.Time              `json:"end_time" binding:"required"`
	MinParticipants int                    `json:"min_participants"`
	MaxParticipants int                    `json:"max_participants" binding:"required"`
	PriceCents      int64                  `json:"price_cents"`
	Currency        string                 `json:"currency"`
	Visibility      string                 `json:"visibility"`
	Images          []string               `json:"images"`
	Itinerary       []domain.ItineraryItem `json:"itinerary"`
	Publish         bool                   `json:"publish"`
}

type UpdateEventRequest struct {
	Title           *string                `json:"title,omitempty"`
	Description     *string                `json:"description,omitempty"`
	Category        *string                `json:"category,omitempty"`
	City            *string                `json:"city,omitempty"`
	Lat             *float64               `json:"lat,omitempty"`
	Lng             *float64               `json:"lng,omitempty"`
	StartTime       *time.Time             `json:"start_time,omitempty"`
	EndTime         *time.Time             `json:"end_time,omitempty"`
	MinParticipants *int                   `json:"min_participants,omitempty"`
	MaxParticipants *int                   `json:"max_participants,omitempty"`
	PriceCents      *int64                 `json:"price_cents,omitempty"`
	Visibility      *string                `json:"visibility,omitempty"`
	Images          []string               `json:"images,omitempty"`
	Itinerary       []domain.ItineraryItem `json:"itinerary,omitempty"`
}

type ListQuery struct {
	City     string `form:"city"`
	Category string `form:"category"`
	Query    string `form:"q"`
	PriceMin int64  `form:"price_min"`
	PriceMax int64  `form:"price_max"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
