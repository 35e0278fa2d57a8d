package dashboard

import "localguide/internal/domain"

type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Layout is what a client composes for the signed-in user: which
// dashboard variant to render, which sections it holds and which
// navigation entries surround it.
type Layout struct {
	Variant  string    `json:"variant"`
	Sections []string  `json:"sections"`
	Nav      []NavItem `json:"nav"`
}

var layouts = map[domain.UserRole]Layout{
	domain.RoleTourist: {
		Variant:  "tourist",
		Sections: []string{"upcoming_bookings", "saved_events", "wallet", "recommendations"},
		Nav: []NavItem{
			{Label: "Explore", Path: "/explore"},
			{Label: "My Bookings", Path: "/bookings"},
			{Label: "Wallet", Path: "/wallet"},
			{Label: "Messages", Path: "/chat"},
			{Label: "Settings", Path: "/settings"},
		},
	},
	domain.RoleGuide: {
		Variant:  "guide",
		Sections: []string{"my_listings", "booking_requests", "earnings", "reviews", "verification"},
		Nav: []NavItem{
			{Label: "My Listings", Path: "/listings"},
			{Label: "Bookings", Path: "/bookings"},
			{Label: "Earnings", Path: "/wallet"},
			{Label: "Messages", Path: "/chat"},
			{Label: "Settings", Path: "/settings"},
		},
	},
	domain.RoleAdmin: {
		Variant:  "admin",
		Sections: []string{"platform_overview", "pending_verifications", "user_management"},
		Nav: []NavItem{
			{Label: "Overview", Path: "/admin"},
			{Label: "Verifications", Path: "/admin/verifications"},
			{Label: "Users", Path: "/admin/users"},
			{Label: "Settings", Path: "/settings"},
		},
	},
}

// LayoutForRole maps a role to its dashboard. Unrecognized roles get the
// tourist variant.
func LayoutForRole(role string) Layout {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return layouts[domain.RoleTourist]
	}
	return layouts[parsed]
}
