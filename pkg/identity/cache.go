package identity

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/goto/remark/domain"
)

// CachedResolver remembers successful resolutions for a while. Rejections are
// never cached.
type CachedResolver struct {
	next  Resolver
	cache *cache.Cache
}

func NewCachedResolver(next Resolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *CachedResolver) ResolveCaller(ctx context.Context, token string) (*domain.Caller, error) {
	if v, found := r.cache.Get(token); found {
		c := v.(domain.Caller)
		return &c, nil
	}

	c, err := r.next.ResolveCaller(ctx, token)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(token, *c)
	return c, nil
}
