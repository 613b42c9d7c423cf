package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medcore/hospital-admin/internal/core/ports"
)

// EntityService sits between an entity handler and its table gateway. It
// implements ports.Gateway itself so handlers do not care which they get.
type EntityService[T, C, U any] struct {
	entity       string
	gw           ports.Gateway[T, C, U]
	log          zerolog.Logger
	beforeCreate func(*C) error
	beforeUpdate func(*U) error
}

func NewEntityService[T, C, U any](entity string, gw ports.Gateway[T, C, U], log zerolog.Logger) *EntityService[T, C, U] {
	return &EntityService[T, C, U]{
		entity: entity,
		gw:     gw,
		log:    log.With().Str("entity", entity).Logger(),
	}
}

func (s *EntityService[T, C, U]) List(ctx context.Context, page ports.Page) ([]T, int, error) {
	return s.gw.List(ctx, page)
}

func (s *EntityService[T, C, U]) GetByID(ctx context.Context, id int64) (*T, error) {
	return s.gw.GetByID(ctx, id)
}

func (s *EntityService[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	if s.beforeCreate != nil {
		if err := s.beforeCreate(&in); err != nil {
			return nil, fmt.Errorf("create %s: %w", s.entity, err)
		}
	}
	created, err := s.gw.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Msg("created")
	return created, nil
}

func (s *EntityService[T, C, U]) Update(ctx context.Context, id int64, in U) (*T, error) {
	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(&in); err != nil {
			return nil, fmt.Errorf("update %s: %w", s.entity, err)
		}
	}
	updated, err := s.gw.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", id).Msg("updated")
	return updated, nil
}

func (s *EntityService[T, C, U]) SoftDelete(ctx context.Context, id int64) (*T, error) {
	deleted, err := s.gw.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", id).Msg("soft deleted")
	return deleted, nil
}
