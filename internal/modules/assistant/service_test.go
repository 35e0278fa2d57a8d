package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupAssistant(t *testing.T, seedEvents bool) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:assistant_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.Event{}))

	if seedEvents {
		require.NoError(t, db.Create(&domain.Event{
			HostID:          "guide-1",
			Title:           "Hidden Jazz Bars of Tokyo",
			City:            "Tokyo",
			StartTime:       time.Now().Add(48 * time.Hour),
			EndTime:         time.Now().Add(51 * time.Hour),
			MinParticipants: 1,
			MaxParticipants: 6,
			PriceCents:      8500,
			Currency:        "USD",
			Status:          domain.EventOpen,
			Visibility:      domain.VisibilityPublic,
		}).Error)
	}
	return NewService(NewKeywordRouter(), repository.NewEventRepository(db))
}

func TestRouterIsCaseInsensitive(t *testing.T) {
	r := NewKeywordRouter()

	lower := r.Route("plan my trip")
	upper := r.Route("PLAN MY TRIP")
	mixed := r.Route("Plan my trip")

	assert.Equal(t, IntentPlanTrip, lower.Intent)
	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
}

func TestRouterBranches(t *testing.T) {
	r := NewKeywordRouter()

	cases := []struct {
		message    string
		intent     Intent
		confidence float64
	}{
		{"help me plan something", IntentPlanTrip, 0.95},
		{"a weekend trip to Kyoto", IntentPlanTrip, 0.95},
		{"book me a tour", IntentFindEvent, 0.9},
		{"where do I get a ticket", IntentFindEvent, 0.9},
		{"hello there", IntentFallback, 0.8},
		{"", IntentFallback, 0.8},
	}
	for _, tc := range cases {
		got := r.Route(tc.message)
		assert.Equal(t, tc.intent, got.Intent, tc.message)
		assert.InDelta(t, tc.confidence, got.Confidence, 0.0001, tc.message)
	}
}

func TestChatPlanBranchCarriesItineraryCard(t *testing.T) {
	svc := setupAssistant(t, true)

	resp := svc.Chat(context.Background(), "Plan my trip")
	assert.Equal(t, "I've generated a trip plan for you.", resp.ReplyText)
	assert.InDelta(t, 0.95, resp.ConfidenceScore, 0.0001)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, CardItinerarySummary, resp.Cards[0].Type)
	assert.Contains(t, resp.SSML, "3-day trip for Tokyo")

	summary, ok := resp.Cards[0].Data.(itinerarySummary)
	require.True(t, ok)
	assert.Contains(t, summary.Highlights, "Hidden Jazz Bars of Tokyo")
}

func TestChatBookBranchCarriesEventCard(t *testing.T) {
	svc := setupAssistant(t, true)

	resp := svc.Chat(context.Background(), "I want to BOOK a ticket")
	assert.Equal(t, "I found a great event matching your request.", resp.ReplyText)
	assert.InDelta(t, 0.9, resp.ConfidenceScore, 0.0001)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, CardEvent, resp.Cards[0].Type)
}

func TestChatFallback(t *testing.T) {
	svc := setupAssistant(t, false)

	resp := svc.Chat(context.Background(), "what's the weather like")
	assert.True(t, strings.HasPrefix(resp.ReplyText, "I can help you find local experiences."))
	assert.InDelta(t, 0.8, resp.ConfidenceScore, 0.0001)
	assert.Empty(t, resp.Cards)
}

func TestChatSameMessageSameBranch(t *testing.T) {
	svc := setupAssistant(t, true)
	ctx := context.Background()

	first := svc.Chat(ctx, "Plan my trip")
	second := svc.Chat(ctx, "PLAN MY TRIP")

	assert.Equal(t, first.ReplyText, second.ReplyText)
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
	assert.Equal(t, first.Cards[0].Type, second.Cards[0].Type)
}

func TestGeneratePlanUsesDatesAndListings(t *testing.T) {
	svc := setupAssistant(t, true)

	plan := svc.GeneratePlan(context.Background(), TripPlanRequest{
		Destination: "Tokyo",
		Dates:       DateRange{From: "2026-09-10", To: "2026-09-12"},
		Travelers:   2,
	})
	require.Len(t, plan.Itinerary, 3)
	assert.Equal(t, "Arrival", plan.Itinerary[0].Activities[0].Title)
	assert.Equal(t, "Hidden Jazz Bars of Tokyo", plan.Itinerary[1].Activities[0].Title)
	assert.Equal(t, "City Tour", plan.Itinerary[2].Activities[0].Title)
}

func TestGeneratePlanDefaultsOnBadDates(t *testing.T) {
	svc := setupAssistant(t, false)

	plan := svc.GeneratePlan(context.Background(), TripPlanRequest{Destination: "Lima"})
	assert.Len(t, plan.Itinerary, 3)
	for _, day := range plan.Itinerary[1:] {
		assert.Equal(t, "City Tour", day.Activities[0].Title)
	}
}
