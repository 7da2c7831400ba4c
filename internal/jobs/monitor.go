package jobs

import (
	"storeadmin/internal/repositories"
	"storeadmin/internal/repositories/cache"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PoolMonitor logs database pool, Redis pool and query cache statistics.
func PoolMonitor(db *gorm.DB, store *cache.CacheService) func() {
	return func() {
		repositories.LogPoolStats(db)

		pool := store.PoolStats()
		total := store.Stats().Snapshot()["total"]
		log.Info().
			Uint32("redis_total_conns", pool.TotalConns).
			Uint32("redis_idle_conns", pool.IdleConns).
			Uint32("redis_timeouts", pool.Timeouts).
			Int64("cache_hits", total.Hits).
			Int64("cache_misses", total.Misses).
			Float64("cache_hit_ratio", total.Ratio).
			Msg("[jobs] cache stats")
	}
}
