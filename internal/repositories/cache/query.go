package cache

import (
	"context"
	"strconv"
	"time"

	keys "storeadmin/internal/utils/cache"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// LoadTimeout bounds a shared load. It no longer follows any one caller's
// context, since the callers waiting on it may outlive the one that started it.
const LoadTimeout = 30 * time.Second

var loads singleflight.Group

// Fetch reads key through the cache. On a miss it calls load once, even when several
// callers ask for the same key at the same time, and stores the result for ttl.
// Load errors are returned to every waiting caller and never cached. A result is not
// stored when key's op was invalidated while it was loading. Cache read or write
// failures only cost a trip to the store.
func Fetch[T any](ctx context.Context, store Store, key keys.Key, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	k := key.String()
	var zero T

	var cached T
	found, err := store.Get(ctx, k, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", k).Msg("[cache] read failed, loading from store")
	}
	if found {
		return cached, nil
	}

	gen, err := store.Generation(ctx, key.Op)
	if err != nil {
		log.Warn().Err(err).Str("key", k).Msg("[cache] generation unavailable, loading uncached")
		return load(ctx)
	}

	// Loads started before and after an invalidation must not be shared.
	flight := k + "@" + strconv.FormatInt(gen, 10)
	ch := loads.DoChan(flight, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()

		result, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		stored, err := store.SetIfCurrent(loadCtx, k, result, ttl, gen)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("key", k).Msg("[cache] write failed")
		case !stored:
			log.Debug().Str("key", k).Msg("[cache] invalidated during load, result not stored")
		}
		return result, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			log.Debug().Str("key", k).Msg("[cache] shared in-flight load")
		}
		v, _ := res.Val.(T)
		return v, nil
	}
}
