package assistant

// Card types surfaced alongside a reply.
const (
	CardEvent               = "event"
	CardItinerarySummary    = "itinerary_summary"
	CardBookingConfirmation = "booking_confirmation"
)

type AICard struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type AIAction struct {
	Type    string `json:"type"` // navigate, open_modal, trigger_booking
	Payload any    `json:"payload"`
}

// AIResponse is the assistant's answer: the text to display, optional
// speech markup for TTS engines that support it, and optional visual
// widgets.
type AIResponse struct {
	ReplyText       string     `json:"reply_text"`
	SSML            string     `json:"ssml,omitempty"`
	Cards           []AICard   `json:"cards,omitempty"`
	Actions         []AIAction `json:"actions,omitempty"`
	ConfidenceScore float64    `json:"confidence_score,omitempty"`
	TraceID         string     `json:"trace_id,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type TripPlanRequest struct {
	Destination string    `json:"destination" binding:"required"`
	Dates       DateRange `json:"dates"`
	Budget      string    `json:"budget"` // budget, moderate, luxury
	Interests   []string  `json:"interests"`
	Travelers   int       `json:"travelers"`
}

type PlanActivity struct {
	Title       string `json:"title"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
}

type PlanDay struct {
	Day        int            `json:"day"`
	Activities []PlanActivity `json:"activities"`
}

type TripPlan struct {
	Destination string    `json:"destination"`
	Itinerary   []PlanDay `json:"itinerary"`
}

type itinerarySummary struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Highlights  []string `json:"highlights"`
}
