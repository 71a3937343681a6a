package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-dev/venue-reserve/internal/model"
	"github.com/lumina-dev/venue-reserve/internal/queue"
	"github.com/lumina-dev/venue-reserve/internal/repository"
)

// recordingPublisher captures published events.
type recordingPublisher struct {
	events []queue.ReservationCreatedEvent
}

func (p *recordingPublisher) PublishReservationCreated(_ context.Context, ev queue.ReservationCreatedEvent) error {
	p.events = append(p.events, ev)
	return nil
}

func validInput() SubmitInput {
	return SubmitInput{Name: "John", Phone: "555", Date: "2025-01-01", Time: "19:00", Guests: 4}
}

func TestReservationService_Submit(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewReservationRepo(repository.NewMemStore())
	pub := &recordingPublisher{}
	svc := NewReservationService(repo, pub)

	res, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, model.ReservationPending, res.Status)
	assert.Equal(t, 4, res.Guests)
	assert.NotZero(t, res.CreatedAt)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res, list[0])

	require.Len(t, pub.events, 1)
	assert.Equal(t, res.ID, pub.events[0].ReservationID)
	assert.Equal(t, model.ReservationPending, pub.events[0].Status)
}

func TestReservationService_SubmitOrderingAndIdentity(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(repository.NewReservationRepo(repository.NewMemStore()), nil)

	first, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)
	in := validInput()
	in.Name = "Mary"
	second, err := svc.Submit(ctx, in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "identities must be unique")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "latest submission must be at the head")
}

func TestReservationService_SubmitValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(repository.NewReservationRepo(repository.NewMemStore()), nil)

	tests := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"missing_name", func(in *SubmitInput) { in.Name = "" }},
		{"blank_name", func(in *SubmitInput) { in.Name = "   " }},
		{"missing_phone", func(in *SubmitInput) { in.Phone = "" }},
		{"missing_date", func(in *SubmitInput) { in.Date = "" }},
		{"missing_time", func(in *SubmitInput) { in.Time = "" }},
		{"zero_guests", func(in *SubmitInput) { in.Guests = 0 }},
		{"too_many_guests", func(in *SubmitInput) { in.Guests = 11 }},
		{"negative_guests", func(in *SubmitInput) { in.Guests = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Submit(ctx, in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Rejected submissions never reach the store.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
