package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// ConfigRepo persists the singleton site configuration record.
type ConfigRepo struct {
	store Store
}

// NewConfigRepo constructs a ConfigRepo over the given gateway.
func NewConfigRepo(store Store) *ConfigRepo {
	return &ConfigRepo{store: store}
}

// Get returns the stored configuration, or the hard-coded default when
// nothing has been saved yet. The default is not written back; the record
// is only created by an explicit Save.
func (r *ConfigRepo) Get(ctx context.Context) (model.SiteConfig, error) {
	b, err := r.store.Read(ctx, KeyConfig)
	if errors.Is(err, ErrNotFound) {
		return model.DefaultSiteConfig(), nil
	}
	if err != nil {
		return model.SiteConfig{}, err
	}
	var cfg model.SiteConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return model.SiteConfig{}, fmt.Errorf("decode site config: %w", err)
	}
	return cfg, nil
}

// Save replaces the configuration record wholesale.
func (r *ConfigRepo) Save(ctx context.Context, cfg model.SiteConfig) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode site config: %w", err)
	}
	return r.store.Write(ctx, KeyConfig, b)
}
