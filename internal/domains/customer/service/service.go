package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodgedesk/config"
	"lodgedesk/infras/otel"
	"lodgedesk/internal/domains/customer/model"
	"lodgedesk/internal/domains/customer/model/dto"
	"lodgedesk/internal/domains/customer/repository"
	"lodgedesk/shared"
	"lodgedesk/shared/cache"
	"lodgedesk/shared/constant"
	"lodgedesk/shared/failure"
	"lodgedesk/shared/validator"
)

const (
	cacheKeyCustomer     = "customer"
	cacheGetAllCustomers = cacheKeyCustomer + ":all"
)

type Customer interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, term, status string) ([]model.Customer, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) error
	UpdateStatus(ctx context.Context, ids []string, status string) (int, error)
	Remove(ctx context.Context, ids []string) (int, error)
	Conversation(ctx context.Context, id string) ([]model.ConversationTurn, error)
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll returns every customer record, reusing a cached scan result for up
// to the configured TTL.
func (s *serviceImpl) GetAll(ctx context.Context) (customers []model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllCustomers, &customers)
	if err == nil {
		log.Debug().Str("cacheKey", cacheGetAllCustomers).Msg("cache hit for customers")

		return customers, nil
	}

	customers, err = s.repo.FetchAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch customers")

		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	// Saved synchronously so a write that follows this read cannot be undone
	// by a late cache fill.
	if err := s.cache.Save(ctx, cacheGetAllCustomers, customers, s.cfg.Cache.CustomerTTL); err != nil {
		log.Error().Err(err).Msg("failed to save customers to cache")
	}

	return customers, nil
}

// Search returns the customer records matching a case-insensitive name/id
// substring and a booking status filter, in store order.
func (s *serviceImpl) Search(ctx context.Context, term, status string) (customers []model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	customers, err = s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return Filter(customers, term, status), nil
}

// Create validates and inserts a new customer record with Pending status.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	customer, err := req.ToModel()
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, customer); err != nil {
		if failure.IsConflict(err) {
			return err
		}

		log.Error().Err(err).Msg("failed to create customer")

		return fmt.Errorf("failed to create customer: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// UpdateStatus applies a booking status to every selected id, best effort.
// Records deleted by another session in the meantime are skipped; the count
// of records actually updated is returned.
func (s *serviceImpl) UpdateStatus(ctx context.Context, ids []string, status string) (updated int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if status != model.StatusBooked && status != model.StatusNotBooked {
		return 0, failure.BadRequestFromString(fmt.Sprintf("cannot set booking status to %q", status)) //nolint:wrapcheck
	}

	var errs []error

	for _, id := range ids {
		updateErr := s.repo.UpdateStatus(ctx, id, status)
		if updateErr == nil {
			updated++

			continue
		}

		if failure.IsNotFound(updateErr) {
			log.Warn().Str("id", id).Msg("skipping status update for missing customer")

			continue
		}

		log.Error().Err(updateErr).Str("id", id).Msg("failed to update booking status")
		errs = append(errs, updateErr)
	}

	if updated > 0 || len(ids) > 0 {
		s.invalidate(ctx)
	}

	return updated, errors.Join(errs...)
}

// Remove deletes every selected id, best effort. Deletion is idempotent, so
// ids already gone count as removed.
func (s *serviceImpl) Remove(ctx context.Context, ids []string) (removed int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	var errs []error

	for _, id := range ids {
		deleteErr := s.repo.Delete(ctx, id)
		if deleteErr == nil {
			removed++

			continue
		}

		if failure.IsNotFound(deleteErr) {
			log.Warn().Str("id", id).Msg("customer already removed")
			removed++

			continue
		}

		log.Error().Err(deleteErr).Str("id", id).Msg("failed to remove customer")
		errs = append(errs, deleteErr)
	}

	if len(ids) > 0 {
		s.invalidate(ctx)
	}

	return removed, errors.Join(errs...)
}

// Conversation returns the transcript of one customer record.
func (s *serviceImpl) Conversation(ctx context.Context, id string) (turns []model.ConversationTurn, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Conversation")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelAttributeCustomerID, id)

	turns, err = s.repo.FetchConversation(ctx, id)
	if err != nil {
		if failure.IsNotFound(err) {
			return nil, err
		}

		log.Error().Err(err).Str("id", id).Msg("failed to fetch conversation")

		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	return turns, nil
}

// invalidate drops every cached customer read so the next render reflects
// the write. Done synchronously: the dashboard re-renders immediately after
// every mutation.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheKeyCustomer)
}
