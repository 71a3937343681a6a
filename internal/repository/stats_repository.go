package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// StatsRepo persists the visit counter record.
type StatsRepo struct {
	store Store
}

// NewStatsRepo constructs a StatsRepo over the given gateway.
func NewStatsRepo(store Store) *StatsRepo {
	return &StatsRepo{store: store}
}

// Get returns the stored stats, zero-initialized when absent.
func (r *StatsRepo) Get(ctx context.Context) (model.Stats, error) {
	b, err := r.store.Read(ctx, KeyStats)
	if errors.Is(err, ErrNotFound) {
		return model.Stats{}, nil
	}
	if err != nil {
		return model.Stats{}, err
	}
	var stats model.Stats
	if err := json.Unmarshal(b, &stats); err != nil {
		return model.Stats{}, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}

// IncrementVisitors adds one to the visitor counter and returns the new
// total. The counter only ever grows.
func (r *StatsRepo) IncrementVisitors(ctx context.Context) (int64, error) {
	stats, err := r.Get(ctx)
	if err != nil {
		return 0, err
	}
	stats.Visitors++
	b, err := json.Marshal(stats)
	if err != nil {
		return 0, fmt.Errorf("encode stats: %w", err)
	}
	if err := r.store.Write(ctx, KeyStats, b); err != nil {
		return 0, err
	}
	return stats.Visitors, nil
}
