package model

// Stats tracks site traffic. Only the visitor counter is persisted; the
// booking count reported to the dashboard is derived from the reservation
// list at read time so the two can never drift apart.
type Stats struct {
	Visitors int64 `json:"visitors"`
}

// DashboardStats is the derived view returned to the admin dashboard.
//
// Fields:
//  Visitors – persisted monotonic visit counter.
//  Bookings – current length of the reservation list.
type DashboardStats struct {
	Visitors int64 `json:"visitors"`
	Bookings int   `json:"bookings"`
}
