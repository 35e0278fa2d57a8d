package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"localguide/internal/config"
	"localguide/internal/database"
	"localguide/internal/domain"
	"localguide/internal/modules/notification"
	"localguide/internal/modules/wallet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}
	if err := wallet.Migrate(db); err != nil {
		log.Fatal("Wallet migrate failed:", err)
	}
	if err := notification.Migrate(db); err != nil {
		log.Fatal("Notification migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM wallet_transactions")
	db.Exec("DELETE FROM wallets")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM chat_threads")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM guide_verifications")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		ID:           "u0",
		Email:        "admin@localguide.ai",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	db.Create(&domain.Profile{UserID: admin.ID, FullName: "Site Admin"})
	log.Println("Admin created: admin@localguide.ai / admin123")

	touristHash, _ := bcrypt.GenerateFromPassword([]byte("tourist123"), bcrypt.DefaultCost)
	tourist := domain.User{
		ID:           "u1",
		Email:        "alex@example.com",
		PasswordHash: string(touristHash),
		Role:         domain.RoleTourist,
	}
	db.Create(&tourist)
	db.Create(&domain.Profile{
		UserID:    tourist.ID,
		FullName:  "Alex Traveler",
		Bio:       "Love exploring hidden gems and local food.",
		Languages: []string{"English"},
		Interests: []string{"Food", "Photography"},
		City:      "New York",
	})

	type guideSeed struct {
		userID      string
		email       string
		fullName    string
		bio         string
		languages   []string
		interests   []string
		city        string
		ratingAvg   float64
		ratingCount int
	}
	guides := []guideSeed{
		{"u2", "kenji@localguide.ai", "Kenji Sato", "Local musician and jazz historian.",
			[]string{"English", "Japanese"}, []string{"Music", "History"}, "Tokyo", 4.9, 124},
		{"u3", "maria@localguide.ai", "Maria Gonzalez", "Born and raised in the historic center.",
			[]string{"English", "Spanish"}, []string{"Food", "Culture"}, "Mexico City", 4.8, 89},
		{"u4", "elena@localguide.ai", "Elena Quispe", "Certified yoga instructor and mountain guide.",
			[]string{"English", "Spanish", "Quechua"}, []string{"Yoga", "Nature"}, "Cusco", 5.0, 42},
		{"u5", "david@localguide.ai", "David Chen", "Former founder, now showing where it all started.",
			[]string{"English", "Mandarin"}, []string{"Tech", "Startups"}, "San Francisco", 4.7, 210},
	}

	guideHash, _ := bcrypt.GenerateFromPassword([]byte("guide123"), bcrypt.DefaultCost)
	now := time.Now()
	for _, g := range guides {
		u := domain.User{
			ID:           g.userID,
			Email:        g.email,
			PasswordHash: string(guideHash),
			Role:         domain.RoleGuide,
		}
		db.Create(&u)
		db.Create(&domain.Profile{
			UserID:      g.userID,
			FullName:    g.fullName,
			Bio:         g.bio,
			Languages:   g.languages,
			Interests:   g.interests,
			City:        g.city,
			RatingAvg:   g.ratingAvg,
			RatingCount: g.ratingCount,
		})
		verifiedAt := now
		db.Create(&domain.GuideVerification{
			UserID:       g.userID,
			DocumentType: "passport",
			DocumentURL:  "/static/kyc/" + g.userID + ".jpg",
			Status:       domain.VerificationVerified,
			SubmittedAt:  now.AddDate(0, -1, 0),
			VerifiedAt:   &verifiedAt,
			ReviewedBy:   &admin.ID,
		})
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")

	events := []domain.Event{
		{
			ID:              "e1",
			HostID:          "u2",
			Title:           "Hidden Jazz Bars of Tokyo",
			Description:     "Experience the vibrant underground jazz scene of Tokyo with a local musician.",
			Category:        "Nightlife",
			City:            "Tokyo",
			StartTime:       time.Date(2026, 9, 15, 19, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2026, 9, 15, 22, 0, 0, 0, time.UTC),
			MaxParticipants: 6,
			PriceCents:      8500,
			Images:          []string{"/static/events/e1.jpg"},
		},
		{
			ID:              "e2",
			HostID:          "u3",
			Title:           "Street Food Walk in Mexico City",
			Description:     "Taste the best tacos, tamales, and churros in the historic center.",
			Category:        "Food & Drink",
			City:            "Mexico City",
			StartTime:       time.Date(2026, 9, 16, 11, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2026, 9, 16, 15, 0, 0, 0, time.UTC),
			MaxParticipants: 10,
			PriceCents:      4500,
			Images:          []string{"/static/events/e2.jpg"},
		},
		{
			ID:              "e3",
			HostID:          "u4",
			Title:           "Sunrise Yoga at Machu Picchu",
			Description:     "A once-in-a-lifetime spiritual experience.",
			Category:        "Wellness",
			City:            "Cusco",
			StartTime:       time.Date(2026, 9, 20, 5, 30, 0, 0, time.UTC),
			EndTime:         time.Date(2026, 9, 20, 7, 30, 0, 0, time.UTC),
			MaxParticipants: 15,
			PriceCents:      12000,
			Images:          []string{"/static/events/e3.jpg"},
		},
		{
			ID:              "e4",
			HostID:          "u5",
			Title:           "Tech Startup Tour: Silicon Valley",
			Description:     "Visit the garages where giants were born.",
			Category:        "Business",
			City:            "San Francisco",
			StartTime:       time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2026, 10, 1, 15, 0, 0, 0, time.UTC),
			MaxParticipants: 20,
			PriceCents:      15000,
			Images:          []string{"/static/events/e4.jpg"},
		},
	}
	for i := range events {
		events[i].MinParticipants = 1
		events[i].Currency = "USD"
		events[i].Status = domain.EventOpen
		events[i].Visibility = domain.VisibilityPublic
		events[i].Itinerary = []domain.ItineraryItem{
			{Order: 1, Time: "Start", Title: "Meet your guide"},
			{Order: 2, Title: events[i].Title},
		}
		db.Create(&events[i])
	}

	// ================== WALLET ==================
	log.Println("Funding tourist wallet...")
	w := wallet.Wallet{UserID: tourist.ID, BalanceCents: 15000, Currency: "USD"}
	db.Create(&w)
	db.Create(&wallet.Transaction{
		WalletID:          w.ID,
		UserID:            tourist.ID,
		Kind:              wallet.KindTopup,
		AmountCents:       15000,
		BalanceAfterCents: 15000,
		Currency:          "USD",
		Reference:         "seed",
	})

	// ================== NOTIFICATIONS ==================
	log.Println("Creating notifications...")
	for _, g := range guides {
		db.Create(&notification.Notification{
			UserID: g.userID,
			Kind:   "kyc_approved",
			Title:  "Verification approved",
			Body:   "Your guide profile is verified. You can publish listings now.",
		})
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin:   admin@localguide.ai / admin123")
	log.Println("Tourist: alex@example.com / tourist123")
	log.Println("Guides:  kenji@ maria@ elena@ david@ localguide.ai / guide123")
}
