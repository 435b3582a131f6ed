package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodgedesk/config"
	"lodgedesk/internal/domains/session/model"
	"lodgedesk/shared"
	"lodgedesk/shared/cache"
	"lodgedesk/shared/failure"
)

const (
	cacheKeySession = "session"
)

// Session stores dashboard session state for the lifetime of one staff
// session. State expires with the session TTL; there is no persistence
// beyond that.
type Session interface {
	Get(ctx context.Context, id string) (*model.State, error)
	Save(ctx context.Context, state *model.State) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	ttl   int
}

func New(cache cache.RedisCache, cfg *config.Config) Session {
	return &repositoryImpl{
		cache: cache,
		ttl:   cfg.Session.TTLSeconds,
	}
}

// Get implements Session.
func (repo *repositoryImpl) Get(ctx context.Context, id string) (*model.State, error) {
	state := &model.State{}

	err := repo.cache.Get(ctx, shared.BuildCacheKey(cacheKeySession, id), state)
	if err != nil {
		return nil, failure.NotFound(fmt.Sprintf("session %s not found", id)) //nolint:wrapcheck
	}

	return state, nil
}

// Save implements Session.
func (repo *repositoryImpl) Save(ctx context.Context, state *model.State) error {
	if err := repo.cache.Save(ctx, shared.BuildCacheKey(cacheKeySession, state.ID), state, repo.ttl); err != nil {
		log.Error().Err(err).Str("session", state.ID).Msg("failed to save session state")

		return fmt.Errorf("saving session state: %w", err)
	}

	return nil
}

// Delete implements Session.
func (repo *repositoryImpl) Delete(ctx context.Context, id string) error {
	if err := repo.cache.Delete(ctx, shared.BuildCacheKey(cacheKeySession, id)); err != nil {
		return fmt.Errorf("deleting session state: %w", err)
	}

	return nil
}
