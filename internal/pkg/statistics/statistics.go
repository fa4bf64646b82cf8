package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/sahanperera/lankatrails/app/models"
	"github.com/sahanperera/lankatrails/internal/pkg/cache"
	"github.com/sahanperera/lankatrails/internal/pkg/database"
)

const (
	CacheKeyUsersTotal        = "statistics:users:total"
	CacheKeyUsersToday        = "statistics:users:today"
	CacheKeyLocationsTotal    = "statistics:locations:total"
	CacheKeyCombinationsTotal = "statistics:combinations:total"
	CacheExpiration           = 30 * time.Minute
)

// Data holds the aggregate numbers shown on the admin dashboard.
type Data struct {
	TotalUsers        int64 `json:"total_users"`
	TodayUsers        int64 `json:"today_users"`
	TotalLocations    int64 `json:"total_locations"`
	TotalCombinations int64 `json:"total_combinations"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached statistics at most once per
// update interval.
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}
	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("statistics: cache update failed: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recomputes all statistics and stores them in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	todayStart := time.Now().Truncate(24 * time.Hour)
	var todayUsers int64
	if err := db.Model(&models.User{}).Where("created_at >= ?", todayStart).Count(&todayUsers).Error; err != nil {
		return err
	}

	var totalLocations int64
	if err := db.Model(&models.Location{}).Count(&totalLocations).Error; err != nil {
		return err
	}

	var totalCombinations int64
	if err := db.Model(&models.TravelCombination{}).Count(&totalCombinations).Error; err != nil {
		return err
	}

	for key, value := range map[string]int64{
		CacheKeyUsersTotal:        totalUsers,
		CacheKeyUsersToday:        todayUsers,
		CacheKeyLocationsTotal:    totalLocations,
		CacheKeyCombinationsTotal: totalCombinations,
	} {
		if err := cache.Set(key, strconv.FormatInt(value, 10), CacheExpiration); err != nil {
			return err
		}
	}

	return nil
}

// GetStatistics returns the dashboard numbers, served from the cache when
// fresh enough.
func GetStatistics() Data {
	UpdateCacheIfNeeded()

	return Data{
		TotalUsers:        cachedCount(CacheKeyUsersTotal),
		TodayUsers:        cachedCount(CacheKeyUsersToday),
		TotalLocations:    cachedCount(CacheKeyLocationsTotal),
		TotalCombinations: cachedCount(CacheKeyCombinationsTotal),
	}
}

func cachedCount(key string) int64 {
	val, err := cache.Get(key)
	if err != nil {
		return 0
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return count
}
