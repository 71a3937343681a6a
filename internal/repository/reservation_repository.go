package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// ReservationRepo persists the reservation list as a single JSON array,
// ordered newest first. Entries are never updated or removed by current
// flows, so the only mutation is prepending a new booking.
type ReservationRepo struct {
	store Store
}

// NewReservationRepo constructs a ReservationRepo over the given gateway.
func NewReservationRepo(store Store) *ReservationRepo {
	return &ReservationRepo{store: store}
}

// List returns all reservations, newest first. An absent record is an
// empty list.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	b, err := r.store.Read(ctx, KeyReservations)
	if errors.Is(err, ErrNotFound) {
		return []model.Reservation{}, nil
	}
	if err != nil {
		return nil, err
	}
	var list []model.Reservation
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}
	return list, nil
}

// Prepend stores res at the head of the list. The full list is re-read and
// replaced; concurrent writers of the same key can race, which mirrors the
// accepted two-tabs limitation of the stored format.
func (r *ReservationRepo) Prepend(ctx context.Context, res model.Reservation) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	next := make([]model.Reservation, 0, len(list)+1)
	next = append(next, res)
	next = append(next, list...)
	b, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}
	return r.store.Write(ctx, KeyReservations, b)
}

// Count returns the current number of stored reservations.
func (r *ReservationRepo) Count(ctx context.Context) (int, error) {
	list, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
