package assistant

import (
	"context"
	"time"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"github.com/google/uuid"
)

const fallbackReply = "I can help you find local experiences. Try asking about 'Food tours in Tokyo' or 'Plan a trip'."

const (
	defaultDestination = "Tokyo"
	defaultTripDays    = 3
	maxTripDays        = 7
)

type Service struct {
	router IntentRouter
	events *repository.EventRepository
}

func NewService(router IntentRouter, events *repository.EventRepository) *Service {
	return &Service{router: router, events: events}
}

// Chat answers a free-text message. Routing is deterministic: the same
// message always lands on the same intent, regardless of letter case.
func (s *Service) Chat(ctx context.Context, message string) *AIResponse {
	routed := s.router.Route(message)
	resp := &AIResponse{
		ConfidenceScore: routed.Confidence,
		TraceID:         uuid.NewString(),
	}

	switch routed.Intent {
	case IntentPlanTrip:
		resp.ReplyText = "I've generated a trip plan for you."
		resp.SSML = ItinerarySummarySSML(defaultDestination, defaultTripDays)
		resp.Cards = []AICard{{
			Type: CardItinerarySummary,
			Data: itinerarySummary{
				Destination: defaultDestination,
				Days:        defaultTripDays,
				Highlights:  s.highlights(ctx),
			},
		}}
	case IntentFindEvent:
		resp.ReplyText = "I found a great event matching your request."
		if e := s.firstOpenEvent(ctx, ""); e != nil {
			resp.Cards = []AICard{{Type: CardEvent, Data: e}}
		} else {
			resp.ReplyText = fallbackReply
		}
	default:
		resp.ReplyText = fallbackReply
	}
	return resp
}

// GeneratePlan builds a day-by-day itinerary. Day one is always arrival;
// the following days are filled from open listings in the destination,
// with a generic city tour when nothing matches.
func (s *Service) GeneratePlan(ctx context.Context, req TripPlanRequest) *TripPlan {
	days := tripLength(req.Dates)

	matching, _, err := s.events.List(ctx, repository.EventFilters{
		City:       req.Destination,
		Statuses:   []domain.EventStatus{domain.EventOpen, domain.EventFull},
		PublicOnly: true,
		Limit:      days,
	})
	if err != nil {
		matching = nil
	}

	plan := &TripPlan{
		Destination: req.Destination,
		Itinerary: []PlanDay{
			{Day: 1, Activities: []PlanActivity{{Title: "Arrival", Time: "14:00", Description: "Check-in"}}},
		},
	}
	for day := 2; day <= days; day++ {
		activity := PlanActivity{Title: "City Tour", Time: "10:00", Description: "Guided walk"}
		if idx := day - 2; idx < len(matching) {
			e := matching[idx]
			activity = PlanActivity{
				Title:       e.Title,
				Time:        e.StartTime.Format("15:04"),
				Description: e.Description,
			}
		}
		plan.Itinerary = append(plan.Itinerary, PlanDay{Day: day, Activities: []PlanActivity{activity}})
	}
	return plan
}

func (s *Service) highlights(ctx context.Context) []string {
	events, _, err := s.events.List(ctx, repository.EventFilters{
		Statuses:   []domain.EventStatus{domain.EventOpen},
		PublicOnly: true,
		Limit:      2,
	})
	if err != nil || len(events) == 0 {
		return []string{"Food Tour", "Shrine"}
	}
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func (s *Service) firstOpenEvent(ctx context.Context, city string) *domain.Event {
	events, _, err := s.events.List(ctx, repository.EventFilters{
		City:       city,
		Statuses:   []domain.EventStatus{domain.EventOpen},
		PublicOnly: true,
		Limit:      1,
	})
	if err != nil || len(events) == 0 {
		return nil
	}
	return &events[0]
}

func tripLength(dates DateRange) int {
	from, errFrom := time.Parse("2006-01-02", dates.From)
	to, errTo := time.Parse("2006-01-02", dates.To)
	if errFrom != nil || errTo != nil || to.Before(from) {
		return defaultTripDays
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	if days > maxTripDays {
		return maxTripDays
	}
	return days
}
