package store

import (
	"context"

	log "github.com/sirupsen/logrus"
)

var _ Store = (*FallbackStore)(nil)

// FallbackStore tries the primary backend and falls back to the secondary
// when the primary fails. When both fail, the secondary's error is
// returned. Reads served by the secondary are not written back to the
// primary - the two backends are independent last-write-wins stores.
type FallbackStore struct {
	primary   Store
	secondary Store
}

func NewFallbackStore(primary, secondary Store) *FallbackStore {
	return &FallbackStore{
		primary:   primary,
		secondary: secondary,
	}
}

func (s *FallbackStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	value, err := s.primary.Get(ctx, userID, key)
	if err == nil {
		return value, nil
	}
	log.Warnf("store get [%s]: primary failed, falling back: %s", key, err)
	return s.secondary.Get(ctx, userID, key)
}

func (s *FallbackStore) Set(ctx context.Context, userID, key string, value []byte) error {
	if err := s.primary.Set(ctx, userID, key, value); err != nil {
		log.Warnf("store set [%s]: primary failed, falling back: %s", key, err)
		return s.secondary.Set(ctx, userID, key, value)
	}
	return nil
}

func (s *FallbackStore) Delete(ctx context.Context, userID, key string) error {
	if err := s.primary.Delete(ctx, userID, key); err != nil {
		log.Warnf("store delete [%s]: primary failed, falling back: %s", key, err)
		return s.secondary.Delete(ctx, userID, key)
	}
	return nil
}

func (s *FallbackStore) Clear(ctx context.Context, userID string) error {
	if err := s.primary.Clear(ctx, userID); err != nil {
		log.Warnf("store clear: primary failed, falling back: %s", err)
		return s.secondary.Clear(ctx, userID)
	}
	return nil
}
