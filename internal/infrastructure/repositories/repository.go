// Package repositories reads and writes the domain models. Reference data is
// served through the data proxy cache and invalidated by key prefix on writes.
package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/juju/errors"
	"gorm.io/gorm"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/cache"
)

// Cache key prefixes.
const (
	PrefixLetterheads = "common:letterheads"
	PrefixAddressBook = "addressbook:"
	PrefixFinance     = "finance:groups"
	PrefixFoodWaste   = "foodwaste:"
)

// Repository carries what every repository needs.
type Repository struct {
	DB    *gorm.DB
	Cache cache.Store
	TTL   time.Duration
}

// NewRepository creates the shared repository base. A nil store disables caching.
func NewRepository(db *gorm.DB, store cache.Store, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return Repository{DB: db, Cache: store, TTL: ttl}
}

func (r Repository) db(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

func (r Repository) invalidate(ctx context.Context, prefixes ...string) {
	cache.Invalidate(ctx, r.Cache, prefixes...)
}

// cached reads key through the cache.
func cached[T any](ctx context.Context, r Repository, key string, load func(context.Context) (T, error)) (T, error) {
	return cache.GetOrLoad(ctx, r.Cache, key, r.TTL, load)
}

// dbError maps a GORM error. A missing record becomes a juju NotFound error
// the services translate into their own codes; anything else is a repository
// error.
func dbError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFound(err, what)
	}
	return intranet.NewRepositoryError(code.ErrDatabase, errors.Annotate(err, what))
}

// IsNotFound reports whether err is a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, errors.NotFound)
}

func exists(db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
