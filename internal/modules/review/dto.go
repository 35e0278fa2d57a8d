package review

type CreateReviewRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
