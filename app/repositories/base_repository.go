package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Base is a small generic data-access helper over a GORM connection.
// Per-entity services compose it instead of inheriting from a shared
// base: each service layers its own eager-loading, ordering and
// business rules on top of the raw query.
type Base[E any] struct {
	db *gorm.DB
}

func NewBase[E any](db *gorm.DB) *Base[E] {
	return &Base[E]{db: db}
}

// Query returns the entity's table as a query builder. Callers chain
// Preload/Order/Where onto it; results are detached snapshots unless
// saved back explicitly.
func (b *Base[E]) Query(ctx context.Context) *gorm.DB {
	var entity E
	return b.db.WithContext(ctx).Model(&entity)
}

// DB exposes the underlying connection for queries spanning more than
// one entity set.
func (b *Base[E]) DB(ctx context.Context) *gorm.DB {
	return b.db.WithContext(ctx)
}

// Find loads a single entity matched by the condition, nil when no row
// exists.
func (b *Base[E]) Find(ctx context.Context, query *gorm.DB, conds ...interface{}) (*E, error) {
	var entity E
	err := query.First(&entity, conds...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// All loads every entity the query matches.
func (b *Base[E]) All(ctx context.Context, query *gorm.DB) ([]E, error) {
	var entities []E
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Exists reports whether the query matches at least one row.
func (b *Base[E]) Exists(ctx context.Context, query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (b *Base[E]) Create(ctx context.Context, entity *E) error {
	return b.db.WithContext(ctx).Create(entity).Error
}

func (b *Base[E]) Save(ctx context.Context, entity *E) error {
	return b.db.WithContext(ctx).Save(entity).Error
}

func (b *Base[E]) Delete(ctx context.Context, entity *E) error {
	return b.db.WithContext(ctx).Delete(entity).Error
}
