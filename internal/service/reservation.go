package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumina-dev/venue-reserve/internal/model"
	"github.com/lumina-dev/venue-reserve/internal/queue"
	"github.com/lumina-dev/venue-reserve/internal/repository"
)

// Party size bounds offered by the booking form.
const (
	minGuests = 1
	maxGuests = 10
)

// Publisher emits reservation events to the message broker. Implemented by
// queue.Publisher; tests substitute a recording fake.
type Publisher interface {
	PublishReservationCreated(ctx context.Context, ev queue.ReservationCreatedEvent) error
}

// ReservationService validates and records booking requests. Confirmation
// is asynchronous: after the booking is stored, a reservation.created event
// is published for the background consumer. A publish failure is logged and
// otherwise ignored because the booking itself has already been persisted.
type ReservationService struct {
	reservations *repository.ReservationRepo
	publisher    Publisher
}

// NewReservationService constructs a ReservationService. publisher may be
// nil, in which case no events are emitted.
func NewReservationService(reservations *repository.ReservationRepo, publisher Publisher) *ReservationService {
	if reservations == nil {
		panic("nil repository passed to NewReservationService")
	}
	return &ReservationService{reservations: reservations, publisher: publisher}
}

// SubmitInput carries the booking form fields.
type SubmitInput struct {
	Name   string
	Phone  string
	Date   string
	Time   string
	Guests int
}

// Submit validates the booking, assigns identity and PENDING status, and
// prepends it to the stored list, newest first.
func (s *ReservationService) Submit(ctx context.Context, in SubmitInput) (model.Reservation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	switch {
	case in.Name == "":
		return model.Reservation{}, fmt.Errorf("%w: name is required", ErrValidation)
	case in.Phone == "":
		return model.Reservation{}, fmt.Errorf("%w: phone is required", ErrValidation)
	case in.Date == "":
		return model.Reservation{}, fmt.Errorf("%w: date is required", ErrValidation)
	case in.Time == "":
		return model.Reservation{}, fmt.Errorf("%w: time is required", ErrValidation)
	case in.Guests < minGuests || in.Guests > maxGuests:
		return model.Reservation{}, fmt.Errorf("%w: guests must be between %d and %d", ErrValidation, minGuests, maxGuests)
	}

	res := model.Reservation{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Date:      in.Date,
		Time:      in.Time,
		Guests:    in.Guests,
		Status:    model.ReservationPending,
		CreatedAt: time.Now().UTC().UnixMilli(),
	}
	if err := s.reservations.Prepend(ctx, res); err != nil {
		return model.Reservation{}, err
	}

	if s.publisher != nil {
		ev := queue.ReservationCreatedEvent{
			ReservationID: res.ID,
			Name:          res.Name,
			Phone:         res.Phone,
			Date:          res.Date,
			Time:          res.Time,
			Guests:        res.Guests,
			Status:        res.Status,
			CreatedAt:     time.UnixMilli(res.CreatedAt).UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishReservationCreated(ctx, ev); err != nil {
			log.Printf("reservation: publish created event failed: %v", err)
		}
	}
	return res, nil
}

// List returns all stored reservations, newest first.
func (s *ReservationService) List(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.List(ctx)
}
