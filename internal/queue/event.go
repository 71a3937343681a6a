// Package queue defines message payloads exchanged over the message broker
// together with the publisher and the background consumer.
package queue

// ReservationCreatedEvent is published when a booking has been stored. It
// carries enough information for downstream consumers to log or notify
// without re-reading the store.
type ReservationCreatedEvent struct {
	ReservationID string `json:"reservation_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Guests        int    `json:"guests"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
