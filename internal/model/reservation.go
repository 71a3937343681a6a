package model

// Reservation lifecycle statuses. The public booking flow only ever
// produces PENDING; the remaining values exist for admin-side actions.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
)

// Reservation records a guest's booking request. Entries are immutable
// once stored and the stored sequence is ordered newest first.
//
// Fields:
//  ID        – opaque unique identifier assigned at creation.
//  Name      – guest name.
//  Phone     – guest contact phone.
//  Date      – reservation date as entered (YYYY-MM-DD).
//  Time      – reservation time as entered (HH:MM).
//  Guests    – party size, between 1 and 10.
//  Status    – one of the Reservation* constants.
//  CreatedAt – creation time in Unix milliseconds.
type Reservation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Guests    int    `json:"guests"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
}
